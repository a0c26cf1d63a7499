package backend

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthorized is matched by APIError values with status 401.
	ErrUnauthorized = errors.New("backend: unauthorized")
	// ErrForbidden is matched by APIError values with status 403.
	ErrForbidden = errors.New("backend: forbidden")
	// ErrNotFound is matched by APIError values with status 404.
	ErrNotFound = errors.New("backend: not found")
	// ErrInvalidResponse is returned when a 2xx body is not a valid envelope.
	ErrInvalidResponse = errors.New("backend: invalid response")
)

// APIError is a non-2xx answer from the backend. Message is the backend's
// own error text and is meant to be shown to the user verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
}

// Is lets callers use errors.Is with the status sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrForbidden:
		return e.Status == http.StatusForbidden
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	}
	return false
}

// AsAPIError unwraps err into an APIError if it carries one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
