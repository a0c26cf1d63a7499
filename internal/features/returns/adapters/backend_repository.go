package adapters

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"cargo-portal/internal/core/backend"
	"cargo-portal/internal/core/listview"
	"cargo-portal/internal/features/returns/domain"
)

// BackendReturnRepository implements ports.ReturnRepository against /returns.
type BackendReturnRepository struct {
	client *backend.Client
}

// NewBackendReturnRepository creates a new BackendReturnRepository.
func NewBackendReturnRepository(client *backend.Client) *BackendReturnRepository {
	return &BackendReturnRepository{client: client}
}

// List fetches one page of return requests.
func (r *BackendReturnRepository) List(ctx context.Context, token string, f listview.Filters) (backend.Page[domain.Return], error) {
	var page backend.Page[domain.Return]
	if _, err := r.client.Do(ctx, backend.Request{
		Method: http.MethodGet,
		Path:   "/returns",
		Query:  f.Query(),
		Token:  token,
	}, &page); err != nil {
		return backend.Page[domain.Return]{}, fmt.Errorf("list returns: %w", err)
	}
	return page, nil
}

// Create posts a return request.
func (r *BackendReturnRepository) Create(ctx context.Context, token string, nr domain.NewReturn) (*domain.Return, error) {
	var out domain.Return
	if _, err := r.client.Do(ctx, backend.Request{
		Method: http.MethodPost,
		Path:   "/returns",
		Body:   nr,
		Token:  token,
	}, &out); err != nil {
		return nil, fmt.Errorf("create return: %w", err)
	}
	return &out, nil
}

// Review posts an admin decision.
func (r *BackendReturnRepository) Review(ctx context.Context, token, id string, rev domain.Review) error {
	if _, err := r.client.Do(ctx, backend.Request{
		Method: http.MethodPost,
		Path:   "/returns/" + url.PathEscape(id) + "/review",
		Body:   rev,
		Token:  token,
	}, nil); err != nil {
		return fmt.Errorf("review return %s: %w", id, err)
	}
	return nil
}
