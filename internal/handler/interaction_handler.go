package handler

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/christainc3213/Intex-II-V3/internal/models"
	"github.com/christainc3213/Intex-II-V3/internal/service"
)

// interactionCookie names the anonymous session cookie tying browsing
// events together.
const interactionCookie = "interactionId"

// InteractionHandler logs anonymous browsing events.
type InteractionHandler struct {
	svc *service.InteractionService
}

// NewInteractionHandler creates a new InteractionHandler.
func NewInteractionHandler(svc *service.InteractionService) *InteractionHandler {
	return &InteractionHandler{svc: svc}
}

// Log godoc
// POST /interactions
func (h *InteractionHandler) Log(c fiber.Ctx) error {
	var req models.InteractionRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid interaction payload: " + err.Error(),
		})
	}

	cookieID := c.Cookies(interactionCookie)
	interaction, eventCount, err := h.svc.Record(cookieID, &req)
	if err != nil {
		slog.Error("failed to log interaction", "event_type", req.EventType, "movie_id", req.MovieID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to log interaction",
		})
	}

	if cookieID == "" {
		c.Cookie(&fiber.Cookie{
			Name:     interactionCookie,
			Value:    interaction.InteractionID,
			Path:     "/",
			Expires:  time.Now().Add(365 * 24 * time.Hour),
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}

	return c.JSON(fiber.Map{
		"message":        "interaction logged",
		"interaction_id": interaction.InteractionID,
		"event_count":    eventCount,
	})
}
