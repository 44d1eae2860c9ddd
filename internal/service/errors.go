package service

import "errors"

var (
	// ErrUnsupportedGenre means the browse genre key is outside the
	// closed set. Distinct from a supported genre with no row, which
	// is an empty result.
	ErrUnsupportedGenre = errors.New("unsupported genre")

	// ErrUnsupportedCategory means the detail category key is outside
	// the closed set.
	ErrUnsupportedCategory = errors.New("unsupported category")

	// ErrInvalidGenre means a title payload names a genre outside the
	// catalog vocabulary.
	ErrInvalidGenre = errors.New("invalid genre")
)
