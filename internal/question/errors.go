package question

import "errors"

var (
	// ErrNotFound covers empty pages, unknown categories and missing delete targets.
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidPayload is returned when a create request lacks question or answer text.
	ErrInvalidPayload = errors.New("question and answer are required")
	// ErrUnprocessable wraps store mutation failures.
	ErrUnprocessable = errors.New("unprocessable")
)
