package ports

import (
	"context"

	"cargo-portal/internal/core/backend"
	"cargo-portal/internal/core/listview"
	"cargo-portal/internal/features/verifications/domain"
)

// VerificationRepository is the backend's verification surface.
type VerificationRepository interface {
	List(ctx context.Context, token string, f listview.Filters) (backend.Page[domain.Verification], error)
	Review(ctx context.Context, token, id string, r domain.Review) error
}
