package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/christainc3213/Intex-II-V3/internal/models"
)

// RecommendationRepository reads the precomputed recommendation
// tables. Every table has ten nullable slot columns; an offline batch
// job writes them and this server only reads. Table names are never
// taken from request input — they come from the closed dispatch maps
// in models, which is why interpolating them here is safe.
type RecommendationRepository struct {
	db *sql.DB
}

// NewRecommendationRepository creates a new RecommendationRepository.
func NewRecommendationRepository(db *sql.DB) *RecommendationRepository {
	return &RecommendationRepository{db: db}
}

var slotColumns = func() string {
	cols := make([]string, models.RecommendationSlots)
	for i := range cols {
		cols[i] = fmt.Sprintf("rec_%d", i+1)
	}
	return strings.Join(cols, ", ")
}()

// BrowseByUser reads the row for one user from a browse table and
// returns its non-NULL slots in column order. ErrNotFound means the
// table has no row for that user.
func (r *RecommendationRepository) BrowseByUser(table string, userID int) ([]string, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE user_id = ?", slotColumns, table)
	return r.readSlots(query, userID)
}

// DetailByShow reads the row for one title from a detail table.
func (r *RecommendationRepository) DetailByShow(table, showID string) ([]string, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE show_id = ?", slotColumns, table)
	return r.readSlots(query, showID)
}

func (r *RecommendationRepository) readSlots(query string, key interface{}) ([]string, error) {
	slots := make([]sql.NullString, models.RecommendationSlots)
	dest := make([]interface{}, models.RecommendationSlots)
	for i := range slots {
		dest[i] = &slots[i]
	}

	if err := r.db.QueryRow(query, key).Scan(dest...); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read recommendation row: %w", err)
	}

	// Drop NULL slots, keep column order. The producer left-packs
	// slots, but nothing here depends on that.
	recs := make([]string, 0, models.RecommendationSlots)
	for _, s := range slots {
		if s.Valid && s.String != "" {
			recs = append(recs, s.String)
		}
	}
	return recs, nil
}
