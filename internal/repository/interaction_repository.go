package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/christainc3213/Intex-II-V3/internal/models"
)

// InteractionRepository persists browsing events.
type InteractionRepository struct {
	db *sql.DB
}

// NewInteractionRepository creates a new InteractionRepository.
func NewInteractionRepository(db *sql.DB) *InteractionRepository {
	return &InteractionRepository{db: db}
}

// Insert stores one interaction event and returns the stored record.
func (r *InteractionRepository) Insert(interactionID, eventType, movieID string) (*models.Interaction, error) {
	now := time.Now().UTC()
	res, err := r.db.Exec(`
		INSERT INTO interactions (interaction_id, event_type, movie_id, created_at)
		VALUES (?, ?, ?, ?)
	`, interactionID, eventType, movieID, now.Format(time.RFC3339Nano))
	if err != nil {
		return nil, fmt.Errorf("insert interaction: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &models.Interaction{
		ID:            int(id),
		InteractionID: interactionID,
		EventType:     eventType,
		MovieID:       movieID,
		CreatedAt:     now,
	}, nil
}

// CountByInteractionID returns how many events one anonymous session
// has logged.
func (r *InteractionRepository) CountByInteractionID(interactionID string) (int, error) {
	var count int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM interactions WHERE interaction_id = ?
	`, interactionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count interactions: %w", err)
	}
	return count, nil
}
