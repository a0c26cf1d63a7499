package ports

import (
	"context"

	"cargo-portal/internal/core/backend"
	"cargo-portal/internal/core/listview"
	"cargo-portal/internal/features/returns/domain"
)

// ReturnRepository is the backend's return request surface.
type ReturnRepository interface {
	List(ctx context.Context, token string, f listview.Filters) (backend.Page[domain.Return], error)
	Create(ctx context.Context, token string, nr domain.NewReturn) (*domain.Return, error)
	Review(ctx context.Context, token, id string, r domain.Review) error
}
