package domain

import "errors"

var (
	// ErrDuplicateLink is returned when a story creation targets a link that
	// already has a story. Callers should treat it as "already handled".
	ErrDuplicateLink = errors.New("story already exists for link")

	// ErrNotFound is returned when an operation targets a record that does
	// not exist.
	ErrNotFound = errors.New("not found")
)
