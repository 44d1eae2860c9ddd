package models

// Rating is one user's rating of one title. There is at most one row
// per (user_id, show_id) pair; submitting again overwrites the value.
type Rating struct {
	UserID int    `json:"user_id"`
	ShowID string `json:"show_id"`
	Rating int    `json:"rating"`
}

// RatingRequest is the request body for the rating upsert. Values
// outside 1..5 are rejected before they reach storage.
type RatingRequest struct {
	UserID int    `json:"user_id" validate:"required,gte=1"`
	ShowID string `json:"show_id" validate:"required"`
	Rating int    `json:"rating" validate:"required,gte=1,lte=5"`
}
