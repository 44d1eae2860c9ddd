package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/christainc3213/Intex-II-V3/internal/models"
)

// TitleRepository handles database operations for catalog titles.
type TitleRepository struct {
	db *sql.DB
}

// NewTitleRepository creates a new TitleRepository.
func NewTitleRepository(db *sql.DB) *TitleRepository {
	return &TitleRepository{db: db}
}

const titleColumns = `show_id, COALESCE(type, ''), COALESCE(title, ''), COALESCE(director, ''),
	COALESCE("cast", ''), COALESCE(country, ''), COALESCE(release_year, 0),
	COALESCE(rating, ''), COALESCE(duration, ''), COALESCE(description, '')`

// List returns one page of titles matching the optional search term,
// plus the total match count. Pages are ordered by the numeric part of
// show_id so paging stays stable across calls.
func (r *TitleRepository) List(params models.TitleListParams) ([]models.Title, int, error) {
	where := ""
	args := []interface{}{}
	if s := strings.TrimSpace(params.Search); s != "" {
		where = "WHERE instr(lower(title), lower(?)) > 0"
		args = append(args, s)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM movies_titles %s", where)
	var total int
	if err := r.db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count query failed: %w", err)
	}

	offset := (params.PageNumber - 1) * params.PageSize
	listQuery := fmt.Sprintf(`
		SELECT %s
		FROM movies_titles
		%s
		ORDER BY CAST(substr(show_id, 2) AS INTEGER), show_id
		LIMIT ? OFFSET ?
	`, titleColumns, where)
	args = append(args, params.PageSize, offset)

	rows, err := r.db.Query(listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list query failed: %w", err)
	}
	defer rows.Close()

	titles := make([]models.Title, 0)
	for rows.Next() {
		t, err := scanTitle(rows)
		if err != nil {
			return nil, 0, err
		}
		titles = append(titles, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := r.attachGenres(titles); err != nil {
		return nil, 0, err
	}
	return titles, total, nil
}

// GetByID returns a single title with its genre set.
func (r *TitleRepository) GetByID(showID string) (*models.Title, error) {
	query := fmt.Sprintf("SELECT %s FROM movies_titles WHERE show_id = ?", titleColumns)
	row := r.db.QueryRow(query, showID)

	t, err := scanTitle(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}

	genres, err := r.genresFor(showID)
	if err != nil {
		return nil, err
	}
	t.Genres = genres
	return &t, nil
}

// Insert assigns the next show_id and stores the title. The id is the
// highest numeric suffix across existing ids plus one ("s1" on an
// empty table); non-numeric suffixes count as zero. The read and the
// write share one immediate transaction, so two concurrent inserts
// cannot mint the same id.
func (r *TitleRepository) Insert(req *models.TitleRequest) (*models.Title, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var maxSuffix int64
	err = tx.QueryRow(`
		SELECT COALESCE(MAX(CAST(substr(show_id, 2) AS INTEGER)), 0)
		FROM movies_titles
	`).Scan(&maxSuffix)
	if err != nil {
		return nil, fmt.Errorf("next show_id: %w", err)
	}
	showID := fmt.Sprintf("s%d", maxSuffix+1)

	_, err = tx.Exec(`
		INSERT INTO movies_titles
			(show_id, type, title, director, "cast", country, release_year, rating, duration, description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, showID, req.Type, req.Title, req.Director, req.Cast, req.Country,
		req.ReleaseYear, req.Rating, req.Duration, req.Description)
	if err != nil {
		return nil, fmt.Errorf("insert title: %w", err)
	}

	if err := insertGenres(tx, showID, req.Genres); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return titleFromRequest(showID, req), nil
}

// Update fully replaces the descriptive fields and genre set of an
// existing title. The show_id itself is immutable.
func (r *TitleRepository) Update(showID string, req *models.TitleRequest) (*models.Title, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		UPDATE movies_titles SET
			type = ?, title = ?, director = ?, "cast" = ?, country = ?,
			release_year = ?, rating = ?, duration = ?, description = ?
		WHERE show_id = ?
	`, req.Type, req.Title, req.Director, req.Cast, req.Country,
		req.ReleaseYear, req.Rating, req.Duration, req.Description, showID)
	if err != nil {
		return nil, fmt.Errorf("update title: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	if _, err := tx.Exec(`DELETE FROM movies_genres WHERE show_id = ?`, showID); err != nil {
		return nil, fmt.Errorf("clear genres: %w", err)
	}
	if err := insertGenres(tx, showID, req.Genres); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return titleFromRequest(showID, req), nil
}

// Delete removes a title; genre rows cascade.
func (r *TitleRepository) Delete(showID string) error {
	res, err := r.db.Exec(`DELETE FROM movies_titles WHERE show_id = ?`, showID)
	if err != nil {
		return fmt.Errorf("delete title: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func insertGenres(tx *sql.Tx, showID string, genres []string) error {
	for _, g := range genres {
		if _, err := tx.Exec(`
			INSERT INTO movies_genres (show_id, genre)
			VALUES (?, ?)
			ON CONFLICT DO NOTHING
		`, showID, g); err != nil {
			return fmt.Errorf("insert genre %q: %w", g, err)
		}
	}
	return nil
}

func (r *TitleRepository) genresFor(showID string) ([]string, error) {
	rows, err := r.db.Query(`
		SELECT genre FROM movies_genres
		WHERE show_id = ?
		ORDER BY genre
	`, showID)
	if err != nil {
		return nil, fmt.Errorf("genres query failed: %w", err)
	}
	defer rows.Close()

	genres := make([]string, 0)
	for rows.Next() {
		var g string
		if err := rows.Scan(&g); err != nil {
			return nil, err
		}
		genres = append(genres, g)
	}
	return genres, rows.Err()
}

// attachGenres loads the genre sets for one page of titles in a single
// query.
func (r *TitleRepository) attachGenres(titles []models.Title) error {
	if len(titles) == 0 {
		return nil
	}

	placeholders := make([]string, len(titles))
	args := make([]interface{}, len(titles))
	index := make(map[string]int, len(titles))
	for i := range titles {
		placeholders[i] = "?"
		args[i] = titles[i].ShowID
		index[titles[i].ShowID] = i
		titles[i].Genres = make([]string, 0)
	}

	query := fmt.Sprintf(`
		SELECT show_id, genre FROM movies_genres
		WHERE show_id IN (%s)
		ORDER BY show_id, genre
	`, strings.Join(placeholders, ", "))

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return fmt.Errorf("genres query failed: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var showID, genre string
		if err := rows.Scan(&showID, &genre); err != nil {
			return err
		}
		if i, ok := index[showID]; ok {
			titles[i].Genres = append(titles[i].Genres, genre)
		}
	}
	return rows.Err()
}

func scanTitle(row interface{ Scan(...interface{}) error }) (models.Title, error) {
	var t models.Title
	err := row.Scan(
		&t.ShowID, &t.Type, &t.Title, &t.Director, &t.Cast,
		&t.Country, &t.ReleaseYear, &t.Rating, &t.Duration, &t.Description,
	)
	return t, err
}

func titleFromRequest(showID string, req *models.TitleRequest) *models.Title {
	genres := req.Genres
	if genres == nil {
		genres = make([]string, 0)
	}
	return &models.Title{
		ShowID:      showID,
		Type:        req.Type,
		Title:       req.Title,
		Director:    req.Director,
		Cast:        req.Cast,
		Country:     req.Country,
		ReleaseYear: req.ReleaseYear,
		Rating:      req.Rating,
		Duration:    req.Duration,
		Description: req.Description,
		Genres:      genres,
	}
}
