package backend

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized reports a bearer token the backend rejected.
	ErrUnauthorized = errors.New("backend: unauthorized")

	// ErrLetterheadMissing reports a record whose branch has no letterhead
	// configured. The document cannot render without it, so the fetch is
	// treated as failed even though the HTTP call succeeded.
	ErrLetterheadMissing = errors.New("backend: letter head data is missing")
)

// APIError is an application-level failure: a non-2xx status, or a 2xx
// response whose envelope code is not 200.
type APIError struct {
	Status int
	Code   int
	Msg    string
}

func (e *APIError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("backend: %s (status %d, code %d)", e.Msg, e.Status, e.Code)
	}
	return fmt.Sprintf("backend: request failed (status %d, code %d)", e.Status, e.Code)
}
