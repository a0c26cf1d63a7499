package ports

import (
	"context"
	"io"

	"cargo-portal/internal/features/wizard/domain"
)

// Store keeps in-progress wizards.
type Store interface {
	Save(w *domain.Wizard)
	// Get returns domain.ErrNotFound unless id exists and belongs to sessionID.
	Get(sessionID, id string) (*domain.Wizard, error)
	Delete(id string)
	CloseSession(sessionID string)
}

// Uploader sends a file to the backend and returns its URL.
type Uploader interface {
	Upload(ctx context.Context, token, filename string, content io.Reader) (string, error)
}

// Submission is the backend's answer to a submitted wizard.
type Submission struct {
	ID      string `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
}

// Submitter posts a wizard's combined payload.
type Submitter interface {
	Submit(ctx context.Context, token, path string, payload interface{}) (*Submission, error)
}
