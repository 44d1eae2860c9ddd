package service

import (
	"fmt"

	"github.com/christainc3213/Intex-II-V3/internal/models"
	"github.com/christainc3213/Intex-II-V3/internal/repository"
)

const (
	// DefaultPageSize applies when the caller omits pageSize.
	DefaultPageSize = 10
	// MaxPageSize caps a single catalog page.
	MaxPageSize = 100
)

// CatalogService implements catalog queries and mutations.
type CatalogService struct {
	repo *repository.TitleRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo *repository.TitleRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// List returns one page of the catalog. Out-of-range paging inputs
// are clamped rather than rejected; a page past the end is an empty
// slice, not an error.
func (s *CatalogService) List(params models.TitleListParams) (*models.TitleListResponse, error) {
	if params.PageSize < 1 {
		params.PageSize = DefaultPageSize
	}
	if params.PageSize > MaxPageSize {
		params.PageSize = MaxPageSize
	}
	if params.PageNumber < 1 {
		params.PageNumber = 1
	}

	titles, total, err := s.repo.List(params)
	if err != nil {
		return nil, err
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + params.PageSize - 1) / params.PageSize
	}

	return &models.TitleListResponse{
		Page:         params.PageNumber,
		PageSize:     params.PageSize,
		TotalPages:   totalPages,
		TotalResults: total,
		Data:         titles,
	}, nil
}

// Get returns one title by show_id.
func (s *CatalogService) Get(showID string) (*models.Title, error) {
	return s.repo.GetByID(showID)
}

// Create stores a new title under a server-assigned show_id.
func (s *CatalogService) Create(req *models.TitleRequest) (*models.Title, error) {
	if err := validateGenres(req.Genres); err != nil {
		return nil, err
	}
	return s.repo.Insert(req)
}

// Update fully replaces an existing title.
func (s *CatalogService) Update(showID string, req *models.TitleRequest) (*models.Title, error) {
	if err := validateGenres(req.Genres); err != nil {
		return nil, err
	}
	return s.repo.Update(showID, req)
}

// Delete removes a title.
func (s *CatalogService) Delete(showID string) error {
	return s.repo.Delete(showID)
}

func validateGenres(genres []string) error {
	for _, g := range genres {
		if !models.ValidGenres[g] {
			return fmt.Errorf("%w: %q", ErrInvalidGenre, g)
		}
	}
	return nil
}
