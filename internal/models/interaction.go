package models

import "time"

// Interaction records one browsing event (a click, a play, a detail
// view) tied to an anonymous cookie-scoped interaction id.
type Interaction struct {
	ID            int       `json:"id"`
	InteractionID string    `json:"interaction_id"`
	EventType     string    `json:"event_type"`
	MovieID       string    `json:"movie_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// InteractionRequest is the request body for logging an interaction.
type InteractionRequest struct {
	EventType string `json:"event_type" validate:"required"`
	MovieID   string `json:"movie_id" validate:"required"`
}
