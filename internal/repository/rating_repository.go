package repository

import (
	"database/sql"
	"fmt"

	"github.com/christainc3213/Intex-II-V3/internal/models"
)

// RatingRepository handles database operations for user ratings.
type RatingRepository struct {
	db *sql.DB
}

// NewRatingRepository creates a new RatingRepository.
func NewRatingRepository(db *sql.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// Get returns the rating one user gave one title.
func (r *RatingRepository) Get(userID int, showID string) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.QueryRow(`
		SELECT user_id, show_id, rating
		FROM movies_ratings
		WHERE user_id = ? AND show_id = ?
	`, userID, showID).Scan(&rating.UserID, &rating.ShowID, &rating.Rating)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get rating: %w", err)
	}
	return &rating, nil
}

// Upsert stores a rating, overwriting any previous value for the same
// (user_id, show_id) pair. There is never more than one row per pair.
func (r *RatingRepository) Upsert(rating *models.Rating) error {
	_, err := r.db.Exec(`
		INSERT INTO movies_ratings (user_id, show_id, rating)
		VALUES (?, ?, ?)
		ON CONFLICT (user_id, show_id)
		DO UPDATE SET rating = excluded.rating
	`, rating.UserID, rating.ShowID, rating.Rating)
	if err != nil {
		return fmt.Errorf("upsert rating: %w", err)
	}
	return nil
}
