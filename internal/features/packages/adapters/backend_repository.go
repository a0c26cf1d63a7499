package adapters

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"cargo-portal/internal/core/backend"
	"cargo-portal/internal/core/listview"
	"cargo-portal/internal/features/packages/domain"
)

// BackendPackageRepository implements ports.PackageRepository against /packages.
type BackendPackageRepository struct {
	client *backend.Client
}

// NewBackendPackageRepository creates a new BackendPackageRepository.
func NewBackendPackageRepository(client *backend.Client) *BackendPackageRepository {
	return &BackendPackageRepository{client: client}
}

// List fetches one page of packages.
func (r *BackendPackageRepository) List(ctx context.Context, token string, f listview.Filters) (backend.Page[domain.Package], error) {
	var page backend.Page[domain.Package]
	_, err := r.client.Do(ctx, backend.Request{
		Method: http.MethodGet,
		Path:   "/packages",
		Query:  f.Query(),
		Token:  token,
	}, &page)
	if err != nil {
		return backend.Page[domain.Package]{}, fmt.Errorf("list packages: %w", err)
	}
	return page, nil
}

// Get fetches one package with its history.
func (r *BackendPackageRepository) Get(ctx context.Context, token, id string) (*domain.Package, error) {
	var p domain.Package
	_, err := r.client.Do(ctx, backend.Request{
		Method: http.MethodGet,
		Path:   "/packages/" + url.PathEscape(id),
		Token:  token,
	}, &p)
	if err != nil {
		return nil, fmt.Errorf("get package %s: %w", id, err)
	}
	return &p, nil
}

// Measure patches weight, dimensions and shelf location.
func (r *BackendPackageRepository) Measure(ctx context.Context, token, id string, m domain.Measurement) error {
	_, err := r.client.Do(ctx, backend.Request{
		Method: http.MethodPatch,
		Path:   "/packages/" + url.PathEscape(id) + "/measure",
		Body:   m,
		Token:  token,
	}, nil)
	if err != nil {
		return fmt.Errorf("measure package %s: %w", id, err)
	}
	return nil
}
