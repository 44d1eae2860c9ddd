package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/christainc3213/Intex-II-V3/internal/models"
	"github.com/christainc3213/Intex-II-V3/internal/repository"
	"github.com/christainc3213/Intex-II-V3/internal/service"
)

// CatalogHandler handles HTTP requests for catalog titles.
type CatalogHandler struct {
	svc *service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(svc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error string `json:"error"`
}

// List returns a paginated catalog page.
// @Summary List catalog titles
// @Tags catalog
// @Produce json
// @Param pageSize query int false "Items per page" default(10)
// @Param pageNumber query int false "Page number" default(1)
// @Param search query string false "Case-insensitive title substring"
// @Success 200 {object} models.TitleListResponse
// @Failure 500 {object} ErrorResponse
// @Router /catalog [get]
func (h *CatalogHandler) List(c fiber.Ctx) error {
	params := models.TitleListParams{
		PageSize:   fiber.Query(c, "pageSize", 0),
		PageNumber: fiber.Query(c, "pageNumber", 1),
		Search:     c.Query("search"),
	}

	result, err := h.svc.List(params)
	if err != nil {
		slog.Error("failed to list titles", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to retrieve titles",
		})
	}

	return c.JSON(result)
}

// Get returns a single title by show_id.
// @Summary Get a title
// @Tags catalog
// @Produce json
// @Param id path string true "Show ID"
// @Success 200 {object} models.Title
// @Failure 404 {object} ErrorResponse
// @Router /catalog/{id} [get]
func (h *CatalogHandler) Get(c fiber.Ctx) error {
	showID := c.Params("id")

	title, err := h.svc.Get(showID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error: "title not found",
			})
		}
		slog.Error("failed to get title", "show_id", showID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to retrieve title",
		})
	}

	return c.JSON(title)
}

// Create inserts a title under a server-assigned show_id.
// @Summary Create a title
// @Tags catalog
// @Accept json
// @Produce json
// @Param title body models.TitleRequest true "Title payload"
// @Success 201 {object} models.Title
// @Failure 400 {object} ErrorResponse
// @Router /catalog [post]
func (h *CatalogHandler) Create(c fiber.Ctx) error {
	var req models.TitleRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid title payload: " + err.Error(),
		})
	}

	title, err := h.svc.Create(&req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidGenre) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: err.Error(),
			})
		}
		slog.Error("failed to create title", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to create title",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(title)
}

// Update fully replaces a title.
// @Summary Update a title
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "Show ID"
// @Param title body models.TitleRequest true "Replacement payload"
// @Success 200 {object} models.Title
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /catalog/{id} [put]
func (h *CatalogHandler) Update(c fiber.Ctx) error {
	showID := c.Params("id")

	var req models.TitleRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid title payload: " + err.Error(),
		})
	}

	title, err := h.svc.Update(showID, &req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error: "title not found",
			})
		case errors.Is(err, service.ErrInvalidGenre):
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: err.Error(),
			})
		}
		slog.Error("failed to update title", "show_id", showID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to update title",
		})
	}

	return c.JSON(title)
}

// Delete removes a title.
// @Summary Delete a title
// @Tags catalog
// @Produce json
// @Param id path string true "Show ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Router /catalog/{id} [delete]
func (h *CatalogHandler) Delete(c fiber.Ctx) error {
	showID := c.Params("id")

	if err := h.svc.Delete(showID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error: "title not found",
			})
		}
		slog.Error("failed to delete title", "show_id", showID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to delete title",
		})
	}

	return c.JSON(fiber.Map{
		"message": "title deleted",
		"show_id": showID,
	})
}
