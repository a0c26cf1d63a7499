package adapters

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"cargo-portal/internal/core/backend"
	"cargo-portal/internal/core/listview"
	"cargo-portal/internal/features/verifications/domain"
)

// BackendVerificationRepository implements ports.VerificationRepository against /verification.
type BackendVerificationRepository struct {
	client *backend.Client
}

// NewBackendVerificationRepository creates a new BackendVerificationRepository.
func NewBackendVerificationRepository(client *backend.Client) *BackendVerificationRepository {
	return &BackendVerificationRepository{client: client}
}

// List fetches one page of verification requests.
func (r *BackendVerificationRepository) List(ctx context.Context, token string, f listview.Filters) (backend.Page[domain.Verification], error) {
	var page backend.Page[domain.Verification]
	if _, err := r.client.Do(ctx, backend.Request{
		Method: http.MethodGet,
		Path:   "/verification",
		Query:  f.Query(),
		Token:  token,
	}, &page); err != nil {
		return backend.Page[domain.Verification]{}, fmt.Errorf("list verifications: %w", err)
	}
	return page, nil
}

// Review patches the decision.
func (r *BackendVerificationRepository) Review(ctx context.Context, token, id string, rev domain.Review) error {
	if _, err := r.client.Do(ctx, backend.Request{
		Method: http.MethodPatch,
		Path:   "/verification/" + url.PathEscape(id) + "/review",
		Body:   rev,
		Token:  token,
	}, nil); err != nil {
		return fmt.Errorf("review verification %s: %w", id, err)
	}
	return nil
}
