package ports

import (
	"context"

	"cargo-portal/internal/core/backend"
	"cargo-portal/internal/core/listview"
	"cargo-portal/internal/features/orders/domain"
)

// OrderRepository is the backend's order surface.
// This is a Secondary Port (Driven Port).
type OrderRepository interface {
	List(ctx context.Context, token string, f listview.Filters) (backend.Page[domain.Order], error)
	Get(ctx context.Context, token, id string) (*domain.Order, error)
	// SetHold stops or resumes an order.
	SetHold(ctx context.Context, token, id string, hold bool) error
	// RequestQC asks for a quality-control inspection.
	RequestQC(ctx context.Context, token, id, notes string) error
	// PayQC issues the payment request for a requested inspection.
	PayQC(ctx context.Context, token, id string) (*domain.QCPayment, error)
}
