package adapters

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"cargo-portal/internal/core/backend"
	"cargo-portal/internal/core/listview"
	"cargo-portal/internal/features/batches/domain"
	packagesdomain "cargo-portal/internal/features/packages/domain"
)

// BackendBatchRepository implements ports.BatchRepository against /batches and /packages.
type BackendBatchRepository struct {
	client *backend.Client
}

// NewBackendBatchRepository creates a new BackendBatchRepository.
func NewBackendBatchRepository(client *backend.Client) *BackendBatchRepository {
	return &BackendBatchRepository{client: client}
}

// List fetches one page of batches.
func (r *BackendBatchRepository) List(ctx context.Context, token string, f listview.Filters) (backend.Page[domain.Batch], error) {
	var page backend.Page[domain.Batch]
	if _, err := r.client.Do(ctx, backend.Request{
		Method: http.MethodGet,
		Path:   "/batches",
		Query:  f.Query(),
		Token:  token,
	}, &page); err != nil {
		return backend.Page[domain.Batch]{}, fmt.Errorf("list batches: %w", err)
	}
	return page, nil
}

// Get fetches one batch with its packages.
func (r *BackendBatchRepository) Get(ctx context.Context, token, id string) (*domain.Batch, error) {
	var b domain.Batch
	if _, err := r.client.Do(ctx, backend.Request{
		Method: http.MethodGet,
		Path:   "/batches/" + url.PathEscape(id),
		Token:  token,
	}, &b); err != nil {
		return nil, fmt.Errorf("get batch %s: %w", id, err)
	}
	return &b, nil
}

// Create posts a new batch.
func (r *BackendBatchRepository) Create(ctx context.Context, token string, nb domain.NewBatch) (*domain.Batch, error) {
	var b domain.Batch
	if _, err := r.client.Do(ctx, backend.Request{
		Method: http.MethodPost,
		Path:   "/batches",
		Body:   nb,
		Token:  token,
	}, &b); err != nil {
		return nil, fmt.Errorf("create batch: %w", err)
	}
	return &b, nil
}

// Transition patches the batch status.
func (r *BackendBatchRepository) Transition(ctx context.Context, token, id string, action domain.Action) error {
	if _, err := r.client.Do(ctx, backend.Request{
		Method: http.MethodPatch,
		Path:   "/batches/" + url.PathEscape(id) + "/" + string(action),
		Token:  token,
	}, nil); err != nil {
		return fmt.Errorf("%s batch %s: %w", action, id, err)
	}
	return nil
}

// Packages fetches one page of packages.
func (r *BackendBatchRepository) Packages(ctx context.Context, token string, f listview.Filters) (backend.Page[packagesdomain.Package], error) {
	var page backend.Page[packagesdomain.Package]
	if _, err := r.client.Do(ctx, backend.Request{
		Method: http.MethodGet,
		Path:   "/packages",
		Query:  f.Query(),
		Token:  token,
	}, &page); err != nil {
		return backend.Page[packagesdomain.Package]{}, fmt.Errorf("list packages: %w", err)
	}
	return page, nil
}
