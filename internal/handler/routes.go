package handler

import (
	"github.com/gofiber/fiber/v3"
)

// Handlers bundles the route handlers for registration.
type Handlers struct {
	Catalog         *CatalogHandler
	Ratings         *RatingHandler
	Users           *UserHandler
	Recommendations *RecommendationHandler
	Interactions    *InteractionHandler
}

// Register wires every route onto the app. Static segments win over
// the :userId parameter, so /recommendations/genre and
// /recommendations/detail never collide with it.
func Register(app *fiber.App, h Handlers) {
	app.Get("/health", Health)

	app.Get("/catalog", h.Catalog.List)
	app.Post("/catalog", h.Catalog.Create)
	app.Get("/catalog/:id", h.Catalog.Get)
	app.Put("/catalog/:id", h.Catalog.Update)
	app.Delete("/catalog/:id", h.Catalog.Delete)

	app.Get("/ratings/:userId/:showId", h.Ratings.Get)
	app.Post("/ratings", h.Ratings.Upsert)

	app.Get("/recommendations/genre/:genre/:userId", h.Recommendations.BrowseByGenre)
	app.Get("/recommendations/detail/:category/:showId", h.Recommendations.Detail)
	app.Get("/recommendations/:userId", h.Recommendations.Browse)

	app.Get("/users", h.Users.List)
	app.Get("/users/:id", h.Users.Get)

	app.Post("/interactions", h.Interactions.Log)
}

// Health returns service health status.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "catalog-api",
	})
}
