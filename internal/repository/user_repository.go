package repository

import (
	"database/sql"
	"fmt"

	"github.com/christainc3213/Intex-II-V3/internal/models"
)

// UserRepository handles read-only access to viewer profiles. Profile
// rows are loaded by an external import; there are no write paths.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `user_id, COALESCE(name, ''), COALESCE(phone, ''), COALESCE(email, ''),
	COALESCE(age, 0), COALESCE(gender, ''), COALESCE(city, ''), COALESCE(state, ''), COALESCE(zip, 0)`

// List returns all viewer profiles with their subscription sets.
func (r *UserRepository) List() ([]models.User, error) {
	rows, err := r.db.Query(fmt.Sprintf(`
		SELECT %s FROM movies_users ORDER BY user_id
	`, userColumns))
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	index := make(map[int]int)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		index[u.UserID] = len(users)
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	subRows, err := r.db.Query(`
		SELECT user_id, service FROM user_subscriptions ORDER BY user_id, service
	`)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	defer subRows.Close()

	for subRows.Next() {
		var userID int
		var service string
		if err := subRows.Scan(&userID, &service); err != nil {
			return nil, err
		}
		if i, ok := index[userID]; ok {
			users[i].Subscriptions = append(users[i].Subscriptions, service)
		}
	}
	return users, subRows.Err()
}

// Get returns one viewer profile by id.
func (r *UserRepository) Get(userID int) (*models.User, error) {
	row := r.db.QueryRow(fmt.Sprintf(`
		SELECT %s FROM movies_users WHERE user_id = ?
	`, userColumns), userID)

	u, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	subRows, err := r.db.Query(`
		SELECT service FROM user_subscriptions WHERE user_id = ? ORDER BY service
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("get subscriptions: %w", err)
	}
	defer subRows.Close()

	for subRows.Next() {
		var service string
		if err := subRows.Scan(&service); err != nil {
			return nil, err
		}
		u.Subscriptions = append(u.Subscriptions, service)
	}
	if err := subRows.Err(); err != nil {
		return nil, err
	}
	return &u, nil
}

func scanUser(row interface{ Scan(...interface{}) error }) (models.User, error) {
	u := models.User{Subscriptions: make([]string, 0)}
	err := row.Scan(
		&u.UserID, &u.Name, &u.Phone, &u.Email, &u.Age,
		&u.Gender, &u.City, &u.State, &u.Zip,
	)
	return u, err
}
