package analysis

import "errors"

var (
	// ErrNotFound indicates the id does not resolve to a stored record.
	ErrNotFound = errors.New("analysis not found")
	// ErrEmptyText indicates the input text is empty after trimming.
	ErrEmptyText = errors.New("text must not be empty")
	// ErrMissingID indicates a required record id was not supplied.
	ErrMissingID = errors.New("id is required")
)
