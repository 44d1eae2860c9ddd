package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/christainc3213/Intex-II-V3/internal/repository"
	"github.com/christainc3213/Intex-II-V3/internal/service"
)

// UserHandler serves read-only viewer profiles.
type UserHandler struct {
	svc *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// List godoc
// GET /users
func (h *UserHandler) List(c fiber.Ctx) error {
	users, err := h.svc.List()
	if err != nil {
		slog.Error("failed to list users", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to retrieve users",
		})
	}
	return c.JSON(users)
}

// Get godoc
// GET /users/:id
func (h *UserHandler) Get(c fiber.Ctx) error {
	userID := fiber.Params[int](c, "id")
	if userID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid user ID",
		})
	}

	user, err := h.svc.Get(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error: "user not found",
			})
		}
		slog.Error("failed to get user", "user_id", userID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to retrieve user",
		})
	}

	return c.JSON(user)
}
