package service

import (
	"github.com/google/uuid"

	"github.com/christainc3213/Intex-II-V3/internal/models"
	"github.com/christainc3213/Intex-II-V3/internal/repository"
)

// InteractionService records anonymous browsing events.
type InteractionService struct {
	repo *repository.InteractionRepository
}

// NewInteractionService creates a new InteractionService.
func NewInteractionService(repo *repository.InteractionRepository) *InteractionService {
	return &InteractionService{repo: repo}
}

// Record stores one event under the given interaction id, minting a
// fresh id when the caller has none yet. The (possibly new) id is on
// the returned record so the handler can set the cookie. The second
// return value is how many events the session has logged so far,
// including this one.
func (s *InteractionService) Record(interactionID string, req *models.InteractionRequest) (*models.Interaction, int, error) {
	if interactionID == "" {
		interactionID = uuid.NewString()
	}
	interaction, err := s.repo.Insert(interactionID, req.EventType, req.MovieID)
	if err != nil {
		return nil, 0, err
	}
	count, err := s.repo.CountByInteractionID(interactionID)
	if err != nil {
		return nil, 0, err
	}
	return interaction, count, nil
}
