package service

import (
	"github.com/christainc3213/Intex-II-V3/internal/models"
	"github.com/christainc3213/Intex-II-V3/internal/repository"
)

// RatingService implements rating reads and the upsert.
type RatingService struct {
	repo *repository.RatingRepository
}

// NewRatingService creates a new RatingService.
func NewRatingService(repo *repository.RatingRepository) *RatingService {
	return &RatingService{repo: repo}
}

// Get returns the rating one user gave one title.
func (s *RatingService) Get(userID int, showID string) (*models.Rating, error) {
	return s.repo.Get(userID, showID)
}

// Upsert stores a rating, replacing any earlier value for the pair.
// No history is kept.
func (s *RatingService) Upsert(req *models.RatingRequest) (*models.Rating, error) {
	rating := &models.Rating{
		UserID: req.UserID,
		ShowID: req.ShowID,
		Rating: req.Rating,
	}
	if err := s.repo.Upsert(rating); err != nil {
		return nil, err
	}
	return rating, nil
}
