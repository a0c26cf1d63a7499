package notice

import (
	"context"
	"errors"
	"net/http"

	"cargo-portal/internal/core/backend"
)

// Kind classifies a user-facing notification.
type Kind string

const (
	// KindBackend is an error reported by the backend's error envelope.
	KindBackend Kind = "BACKEND"
	// KindNetwork means the backend could not be reached or timed out.
	KindNetwork Kind = "NETWORK"
	// KindValidation is a client-side pre-submit validation failure.
	KindValidation Kind = "VALIDATION"
	// KindAuth is an authentication or role mismatch.
	KindAuth Kind = "AUTH"
	// KindSuccess confirms a completed action.
	KindSuccess Kind = "SUCCESS"
)

// Notice is a transient toast shown to the user. It never blocks further interaction.
type Notice struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// ValidationError is a client-side validation failure keyed by field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	for field, msg := range e.Fields {
		return field + ": " + msg
	}
	return "validation failed"
}

// Success returns a confirmation notice.
func Success(message string) *Notice {
	return &Notice{Kind: KindSuccess, Message: message}
}

// FromError classifies err for display. Backend messages are passed through verbatim.
func FromError(err error) *Notice {
	if err == nil {
		return nil
	}

	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return &Notice{Kind: KindValidation, Message: vErr.Error()}
	}

	if apiErr, ok := backend.AsAPIError(err); ok {
		kind := KindBackend
		if apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden {
			kind = KindAuth
		}
		return &Notice{Kind: kind, Message: apiErr.Message}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &Notice{Kind: KindNetwork, Message: "The server took too long to respond"}
	}

	return &Notice{Kind: KindNetwork, Message: "Could not reach the server"}
}

// HTTPStatus picks the status code a handler should answer with for err.
func HTTPStatus(err error) int {
	var vErr *ValidationError
	switch {
	case errors.As(err, &vErr):
		return http.StatusBadRequest
	case errors.Is(err, backend.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, backend.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, backend.ErrNotFound):
		return http.StatusNotFound
	}
	if apiErr, ok := backend.AsAPIError(err); ok && apiErr.Status >= 400 && apiErr.Status < 500 {
		return apiErr.Status
	}
	return http.StatusBadGateway
}
