package handler

import (
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"

	"github.com/christainc3213/Intex-II-V3/internal/models"
)

func TestUserListAndGet(t *testing.T) {
	app, db := newTestApp(t)

	_, err := db.Exec(`
		INSERT INTO movies_users (user_id, name, email, age, city, state)
		VALUES (1, 'Alice', 'alice@example.com', 28, 'Provo', 'UT')
	`)
	require.NoError(t, err)
	_, err = db.Exec(`
		INSERT INTO user_subscriptions (user_id, service) VALUES (1, 'Netflix'), (1, 'Hulu')
	`)
	require.NoError(t, err)

	resp := doJSON(t, app, fiber.MethodGet, "/users", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var users []models.User
	decodeBody(t, resp, &users)
	require.Len(t, users, 1)
	require.Equal(t, "Alice", users[0].Name)
	require.Equal(t, []string{"Hulu", "Netflix"}, users[0].Subscriptions)

	resp = doJSON(t, app, fiber.MethodGet, "/users/1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var user models.User
	decodeBody(t, resp, &user)
	require.Equal(t, 1, user.UserID)

	resp = doJSON(t, app, fiber.MethodGet, "/users/404", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
