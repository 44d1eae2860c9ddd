package repository

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/christainc3213/Intex-II-V3/internal/models"
)

func makeTitleRequest(name string) *models.TitleRequest {
	return &models.TitleRequest{
		Type:        "Movie",
		Title:       name,
		Director:    "Someone",
		Cast:        "A, B",
		Country:     "United States",
		ReleaseYear: 2020,
		Rating:      "PG-13",
		Duration:    "90 min",
		Description: "A test title.",
		Genres:      []string{"action", "comedies"},
	}
}

func TestInsertAssignsSequentialIDs(t *testing.T) {
	repo := NewTitleRepository(newTestDB(t))

	first, err := repo.Insert(makeTitleRequest("First"))
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if first.ShowID != "s1" {
		t.Errorf("ShowID: got %q, want s1", first.ShowID)
	}

	second, err := repo.Insert(makeTitleRequest("Second"))
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if second.ShowID != "s2" {
		t.Errorf("ShowID: got %q, want s2", second.ShowID)
	}
}

func TestInsertContinuesFromMaxSuffix(t *testing.T) {
	db := newTestDB(t)
	repo := NewTitleRepository(db)

	// Seed out-of-order ids; only the maximum matters.
	for _, id := range []string{"s7", "s3"} {
		if _, err := db.Exec(
			`INSERT INTO movies_titles (show_id, title) VALUES (?, ?)`, id, "Seeded "+id,
		); err != nil {
			t.Fatalf("seed %s: %v", id, err)
		}
	}

	got, err := repo.Insert(makeTitleRequest("Next"))
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if got.ShowID != "s8" {
		t.Errorf("ShowID: got %q, want s8", got.ShowID)
	}
}

func TestInsertTreatsNonNumericSuffixAsZero(t *testing.T) {
	db := newTestDB(t)
	repo := NewTitleRepository(db)

	if _, err := db.Exec(
		`INSERT INTO movies_titles (show_id, title) VALUES (?, ?)`, "slegacy", "Legacy",
	); err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := repo.Insert(makeTitleRequest("Next"))
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if got.ShowID != "s1" {
		t.Errorf("ShowID: got %q, want s1", got.ShowID)
	}
}

func TestInsertConcurrentAssignsUniqueIDs(t *testing.T) {
	repo := NewTitleRepository(newTestDB(t))

	// Id assignment reads the current max suffix and writes the next
	// id in one immediate transaction; concurrent inserts serialize on
	// the write lock instead of minting the same id.
	const n = 16
	var wg sync.WaitGroup
	ids := make(chan string, n)
	errs := make(chan error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			title, err := repo.Insert(makeTitleRequest(fmt.Sprintf("Concurrent %02d", i)))
			if err != nil {
				errs <- err
				return
			}
			ids <- title.ShowID
		}(i)
	}
	wg.Wait()
	close(ids)
	close(errs)

	for err := range errs {
		t.Errorf("Insert: %v", err)
	}

	seen := make(map[string]bool, n)
	for id := range ids {
		if seen[id] {
			t.Errorf("duplicate show_id %q", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Fatalf("unique ids: got %d, want %d", len(seen), n)
	}
	if !seen["s1"] || !seen[fmt.Sprintf("s%d", n)] {
		t.Errorf("ids must cover s1..s%d, got %v", n, seen)
	}
}

func TestListPagination(t *testing.T) {
	repo := NewTitleRepository(newTestDB(t))

	for i := 1; i <= 23; i++ {
		if _, err := repo.Insert(makeTitleRequest(fmt.Sprintf("Title %02d", i))); err != nil {
			t.Fatalf("Insert %d: %v", i, err)
		}
	}

	titles, total, err := repo.List(models.TitleListParams{PageSize: 10, PageNumber: 3})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 23 {
		t.Errorf("total: got %d, want 23", total)
	}
	if len(titles) != 3 {
		t.Fatalf("page 3 length: got %d, want 3", len(titles))
	}
	// Numeric show_id order keeps paging stable: s21..s23 on page 3.
	if titles[0].ShowID != "s21" || titles[2].ShowID != "s23" {
		t.Errorf("page 3 ids: got %q..%q, want s21..s23", titles[0].ShowID, titles[2].ShowID)
	}
}

func TestListPageBeyondEndIsEmpty(t *testing.T) {
	repo := NewTitleRepository(newTestDB(t))

	if _, err := repo.Insert(makeTitleRequest("Only")); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	titles, total, err := repo.List(models.TitleListParams{PageSize: 10, PageNumber: 99})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 {
		t.Errorf("total: got %d, want 1", total)
	}
	if len(titles) != 0 {
		t.Errorf("expected empty page, got %d titles", len(titles))
	}
}

func TestListSearchIsCaseInsensitiveSubstring(t *testing.T) {
	repo := NewTitleRepository(newTestDB(t))

	for _, name := range []string{"Batman Begins", "The Dark Knight", "Combat Zone"} {
		if _, err := repo.Insert(makeTitleRequest(name)); err != nil {
			t.Fatalf("Insert %q: %v", name, err)
		}
	}

	titles, total, err := repo.List(models.TitleListParams{PageSize: 10, PageNumber: 1, Search: "BAT"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 2 {
		t.Errorf("total: got %d, want 2", total)
	}
	got := map[string]bool{}
	for _, title := range titles {
		got[title.Title] = true
	}
	if !got["Batman Begins"] || !got["Combat Zone"] {
		t.Errorf("search matched wrong set: %v", got)
	}

	// Whitespace-only search means no filter.
	_, total, err = repo.List(models.TitleListParams{PageSize: 10, PageNumber: 1, Search: "   "})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 3 {
		t.Errorf("unfiltered total: got %d, want 3", total)
	}
}

func TestGetByID(t *testing.T) {
	repo := NewTitleRepository(newTestDB(t))

	inserted, err := repo.Insert(makeTitleRequest("Findable"))
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}

	got, err := repo.GetByID(inserted.ShowID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != "Findable" {
		t.Errorf("Title: got %q, want Findable", got.Title)
	}
	if got.ReleaseYear != 2020 {
		t.Errorf("ReleaseYear: got %d, want 2020", got.ReleaseYear)
	}
	if len(got.Genres) != 2 || got.Genres[0] != "action" || got.Genres[1] != "comedies" {
		t.Errorf("Genres: got %v, want [action comedies]", got.Genres)
	}

	if _, err := repo.GetByID("s999"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateReplacesAllFields(t *testing.T) {
	repo := NewTitleRepository(newTestDB(t))

	inserted, err := repo.Insert(makeTitleRequest("Before"))
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}

	req := makeTitleRequest("After")
	req.Type = "TV Show"
	req.Genres = []string{"dramas"}
	if _, err := repo.Update(inserted.ShowID, req); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.GetByID(inserted.ShowID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != "After" || got.Type != "TV Show" {
		t.Errorf("got %q/%q, want After/TV Show", got.Title, got.Type)
	}
	if len(got.Genres) != 1 || got.Genres[0] != "dramas" {
		t.Errorf("Genres: got %v, want [dramas]", got.Genres)
	}

	if _, err := repo.Update("s999", req); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteRemovesTitleAndGenres(t *testing.T) {
	db := newTestDB(t)
	repo := NewTitleRepository(db)

	inserted, err := repo.Insert(makeTitleRequest("Doomed"))
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}

	if err := repo.Delete(inserted.ShowID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := repo.GetByID(inserted.ShowID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	var genreRows int
	if err := db.QueryRow(
		`SELECT COUNT(*) FROM movies_genres WHERE show_id = ?`, inserted.ShowID,
	).Scan(&genreRows); err != nil {
		t.Fatalf("count genres: %v", err)
	}
	if genreRows != 0 {
		t.Errorf("genre rows after delete: got %d, want 0", genreRows)
	}

	if err := repo.Delete(inserted.ShowID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}
