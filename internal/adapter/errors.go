package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized means the access token was rejected (HTTP 401).
	ErrUnauthorized = errors.New("budget api: unauthorized")

	// ErrRateLimited means the server refused the request because the request
	// budget is exhausted (HTTP 429). Retryable with backoff.
	ErrRateLimited = errors.New("budget api: rate limited")

	// ErrCursorConflict means the server no longer accepts the supplied
	// server-knowledge cursor (HTTP 409). Recoverable by a full refresh.
	ErrCursorConflict = errors.New("budget api: server knowledge conflict")
)

// APIError is any other non-2xx response from the budget API. The sync layer
// treats it as a generic transport fault: one full-refresh fallback, then
// fatal.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("budget api: http %d", e.Status)
	}
	return fmt.Sprintf("budget api: http %d: %s", e.Status, e.Detail)
}
