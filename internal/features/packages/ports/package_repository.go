package ports

import (
	"context"

	"cargo-portal/internal/core/backend"
	"cargo-portal/internal/core/listview"
	"cargo-portal/internal/features/packages/domain"
)

// PackageRepository is the backend's package surface.
type PackageRepository interface {
	List(ctx context.Context, token string, f listview.Filters) (backend.Page[domain.Package], error)
	Get(ctx context.Context, token, id string) (*domain.Package, error)
	Measure(ctx context.Context, token, id string, m domain.Measurement) error
}
