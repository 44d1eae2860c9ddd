package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/christainc3213/Intex-II-V3/internal/models"
	"github.com/christainc3213/Intex-II-V3/internal/repository"
)

const recCacheTTL = 10 * time.Minute

// RecommendationService serves the precomputed recommendation
// lookups. Results are cached in Redis when a client is configured;
// without one every call hits SQLite, which is fine at this scale.
type RecommendationService struct {
	repo *repository.RecommendationRepository
	rdb  *redis.Client
}

// NewRecommendationService creates a new RecommendationService.
func NewRecommendationService(repo *repository.RecommendationRepository, rdb *redis.Client) *RecommendationService {
	return &RecommendationService{repo: repo, rdb: rdb}
}

// BrowseByGenre returns the genre-specific recommendations for a
// user. An unknown genre key is an error; a supported genre with no
// row for the user is an empty list.
func (s *RecommendationService) BrowseByGenre(ctx context.Context, genreKey string, userID int) ([]string, error) {
	table, ok := models.BrowseGenreTable(models.BrowseGenre(genreKey))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedGenre, genreKey)
	}

	cacheKey := fmt.Sprintf("rec:genre:%s:%d", genreKey, userID)
	if recs, ok := s.getFromCache(ctx, cacheKey); ok {
		return recs, nil
	}

	recs, err := s.repo.BrowseByUser(table, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return make([]string, 0), nil
	}
	if err != nil {
		return nil, err
	}

	s.setCache(ctx, cacheKey, recs)
	return recs, nil
}

// Browse returns the general collaborative recommendations for a
// user. Unlike the genre lookups, a missing row here is ErrNotFound.
func (s *RecommendationService) Browse(ctx context.Context, userID int) ([]string, error) {
	cacheKey := fmt.Sprintf("rec:browse:%d", userID)
	if recs, ok := s.getFromCache(ctx, cacheKey); ok {
		return recs, nil
	}

	recs, err := s.repo.BrowseByUser(models.GeneralBrowseTable, userID)
	if err != nil {
		return nil, err
	}

	s.setCache(ctx, cacheKey, recs)
	return recs, nil
}

// Detail returns the per-title recommendations for one category. An
// unknown category is an error; a title with no row is an empty list.
func (s *RecommendationService) Detail(ctx context.Context, category, showID string) ([]string, error) {
	table, ok := models.DetailCategoryTable(models.DetailCategory(category))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCategory, category)
	}

	cacheKey := fmt.Sprintf("rec:detail:%s:%s", category, showID)
	if recs, ok := s.getFromCache(ctx, cacheKey); ok {
		return recs, nil
	}

	recs, err := s.repo.DetailByShow(table, showID)
	if errors.Is(err, repository.ErrNotFound) {
		return make([]string, 0), nil
	}
	if err != nil {
		return nil, err
	}

	s.setCache(ctx, cacheKey, recs)
	return recs, nil
}

// Redis helpers

func (s *RecommendationService) getFromCache(ctx context.Context, key string) ([]string, bool) {
	if s.rdb == nil {
		return nil, false
	}
	cached, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}
	var recs []string
	if json.Unmarshal([]byte(cached), &recs) != nil {
		return nil, false
	}
	return recs, true
}

func (s *RecommendationService) setCache(ctx context.Context, key string, recs []string) {
	if s.rdb == nil {
		return
	}
	data, err := json.Marshal(recs)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, data, recCacheTTL).Err(); err != nil {
		slog.Error("failed to set cache", "key", key, "error", err)
	}
}
