package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/christainc3213/Intex-II-V3/internal/models"
	"github.com/christainc3213/Intex-II-V3/internal/repository"
	"github.com/christainc3213/Intex-II-V3/internal/service"
)

// RatingHandler handles HTTP requests for user ratings.
type RatingHandler struct {
	svc *service.RatingService
}

// NewRatingHandler creates a new RatingHandler.
func NewRatingHandler(svc *service.RatingService) *RatingHandler {
	return &RatingHandler{svc: svc}
}

// Get godoc
// GET /ratings/:userId/:showId
func (h *RatingHandler) Get(c fiber.Ctx) error {
	userID := fiber.Params[int](c, "userId")
	if userID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid user ID",
		})
	}
	showID := c.Params("showId")

	rating, err := h.svc.Get(userID, showID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error: "rating not found",
			})
		}
		slog.Error("failed to get rating", "user_id", userID, "show_id", showID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to retrieve rating",
		})
	}

	return c.JSON(rating)
}

// Upsert godoc
// POST /ratings
func (h *RatingHandler) Upsert(c fiber.Ctx) error {
	var req models.RatingRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid rating payload: " + err.Error(),
		})
	}

	rating, err := h.svc.Upsert(&req)
	if err != nil {
		slog.Error("failed to upsert rating", "user_id", req.UserID, "show_id", req.ShowID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to save rating",
		})
	}

	return c.JSON(rating)
}
