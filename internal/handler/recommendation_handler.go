package handler

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/christainc3213/Intex-II-V3/internal/repository"
	"github.com/christainc3213/Intex-II-V3/internal/service"
)

// RecommendationHandler serves the precomputed recommendation
// lookups. Responses are plain JSON arrays of title names; an empty
// array is a valid outcome, distinct from the 404 cases.
type RecommendationHandler struct {
	svc *service.RecommendationService
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(svc *service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{svc: svc}
}

// BrowseByGenre godoc
// GET /recommendations/genre/:genre/:userId
func (h *RecommendationHandler) BrowseByGenre(c fiber.Ctx) error {
	genre := c.Params("genre")
	userID := fiber.Params[int](c, "userId")
	if userID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid user ID",
		})
	}

	recs, err := h.svc.BrowseByGenre(c.Context(), genre, userID)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedGenre) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error: fmt.Sprintf("genre %q is not supported", genre),
			})
		}
		slog.Error("failed to browse genre recommendations", "genre", genre, "user_id", userID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to retrieve recommendations",
		})
	}

	return c.JSON(recs)
}

// Browse godoc
// GET /recommendations/:userId
func (h *RecommendationHandler) Browse(c fiber.Ctx) error {
	userID := fiber.Params[int](c, "userId")
	if userID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid user ID",
		})
	}

	recs, err := h.svc.Browse(c.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error: fmt.Sprintf("no recommendations found for user %d", userID),
			})
		}
		slog.Error("failed to browse recommendations", "user_id", userID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to retrieve recommendations",
		})
	}

	return c.JSON(recs)
}

// Detail godoc
// GET /recommendations/detail/:category/:showId
func (h *RecommendationHandler) Detail(c fiber.Ctx) error {
	category := c.Params("category")
	showID := c.Params("showId")

	recs, err := h.svc.Detail(c.Context(), category, showID)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedCategory) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error: fmt.Sprintf("category %q is not supported", category),
			})
		}
		slog.Error("failed to get detail recommendations", "category", category, "show_id", showID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to retrieve recommendations",
		})
	}

	return c.JSON(recs)
}
