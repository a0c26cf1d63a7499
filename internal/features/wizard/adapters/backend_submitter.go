package adapters

import (
	"context"
	"fmt"
	"net/http"

	"cargo-portal/internal/core/backend"
	"cargo-portal/internal/features/wizard/ports"
)

// BackendSubmitter posts wizard payloads to the cargo backend.
type BackendSubmitter struct {
	client *backend.Client
}

// NewBackendSubmitter creates a new BackendSubmitter.
func NewBackendSubmitter(client *backend.Client) *BackendSubmitter {
	return &BackendSubmitter{client: client}
}

// Submit posts payload to path and returns the created entity's id.
func (s *BackendSubmitter) Submit(ctx context.Context, token, path string, payload interface{}) (*ports.Submission, error) {
	var created struct {
		ID string `json:"id"`
	}
	msg, err := s.client.Do(ctx, backend.Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   payload,
		Token:  token,
	}, &created)
	if err != nil {
		return nil, fmt.Errorf("submit %s: %w", path, err)
	}
	return &ports.Submission{ID: created.ID, Message: msg}, nil
}
