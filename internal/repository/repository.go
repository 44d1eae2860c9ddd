package repository

import "errors"

// ErrNotFound is returned when a requested row does not exist.
// Handlers translate it to a 404; everything else is a store failure.
var ErrNotFound = errors.New("not found")
