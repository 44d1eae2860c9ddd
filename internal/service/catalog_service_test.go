package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/christainc3213/Intex-II-V3/internal/models"
	"github.com/christainc3213/Intex-II-V3/internal/repository"
)

func newCatalogService(t *testing.T) *CatalogService {
	t.Helper()
	return NewCatalogService(repository.NewTitleRepository(newTestDB(t)))
}

func seedTitles(t *testing.T, svc *CatalogService, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		_, err := svc.Create(&models.TitleRequest{
			Type:   "Movie",
			Title:  fmt.Sprintf("Title %02d", i),
			Genres: []string{"action"},
		})
		if err != nil {
			t.Fatalf("seed title %d: %v", i, err)
		}
	}
}

func TestListClampsPagingInputs(t *testing.T) {
	svc := newCatalogService(t)
	seedTitles(t, svc, 3)

	// Omitted inputs fall back to page 1, size 10.
	resp, err := svc.List(models.TitleListParams{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if resp.Page != 1 || resp.PageSize != DefaultPageSize {
		t.Errorf("defaults: got page=%d size=%d", resp.Page, resp.PageSize)
	}

	// Oversized pageSize is capped, not rejected.
	resp, err = svc.List(models.TitleListParams{PageSize: 1000, PageNumber: 1})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if resp.PageSize != MaxPageSize {
		t.Errorf("PageSize: got %d, want %d", resp.PageSize, MaxPageSize)
	}

	resp, err = svc.List(models.TitleListParams{PageSize: 10, PageNumber: -5})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if resp.Page != 1 {
		t.Errorf("Page: got %d, want 1", resp.Page)
	}
}

func TestListTotalPages(t *testing.T) {
	svc := newCatalogService(t)
	seedTitles(t, svc, 23)

	resp, err := svc.List(models.TitleListParams{PageSize: 10, PageNumber: 1})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if resp.TotalResults != 23 {
		t.Errorf("TotalResults: got %d, want 23", resp.TotalResults)
	}
	if resp.TotalPages != 3 {
		t.Errorf("TotalPages: got %d, want 3", resp.TotalPages)
	}
}

func TestListEmptyCatalog(t *testing.T) {
	svc := newCatalogService(t)

	resp, err := svc.List(models.TitleListParams{PageSize: 10, PageNumber: 1})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if resp.TotalPages != 0 || resp.TotalResults != 0 {
		t.Errorf("got pages=%d results=%d, want 0/0", resp.TotalPages, resp.TotalResults)
	}
	if resp.Data == nil {
		t.Error("Data must serialize as [], not null")
	}
}

func TestCreateRejectsUnknownGenre(t *testing.T) {
	svc := newCatalogService(t)

	_, err := svc.Create(&models.TitleRequest{
		Type:   "Movie",
		Title:  "Bad Genre",
		Genres: []string{"action", "westerns"},
	})
	if !errors.Is(err, ErrInvalidGenre) {
		t.Errorf("expected ErrInvalidGenre, got %v", err)
	}
}

func TestUpdateRejectsUnknownGenre(t *testing.T) {
	svc := newCatalogService(t)
	seedTitles(t, svc, 1)

	_, err := svc.Update("s1", &models.TitleRequest{
		Type:   "Movie",
		Title:  "Bad Genre",
		Genres: []string{"nope"},
	})
	if !errors.Is(err, ErrInvalidGenre) {
		t.Errorf("expected ErrInvalidGenre, got %v", err)
	}
}
