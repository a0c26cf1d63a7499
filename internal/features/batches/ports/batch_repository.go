package ports

import (
	"context"

	"cargo-portal/internal/core/backend"
	"cargo-portal/internal/core/listview"
	"cargo-portal/internal/features/batches/domain"
	packagesdomain "cargo-portal/internal/features/packages/domain"
)

// BatchRepository is the backend's batch surface.
type BatchRepository interface {
	List(ctx context.Context, token string, f listview.Filters) (backend.Page[domain.Batch], error)
	Get(ctx context.Context, token, id string) (*domain.Batch, error)
	Create(ctx context.Context, token string, nb domain.NewBatch) (*domain.Batch, error)
	// Transition patches /batches/:id/<action>.
	Transition(ctx context.Context, token, id string, action domain.Action) error
	// Packages lists packages that could be put on a batch.
	Packages(ctx context.Context, token string, f listview.Filters) (backend.Page[packagesdomain.Package], error)
}
