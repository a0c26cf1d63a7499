package ports

import (
	"context"

	"cargo-portal/internal/core/backend"
	"cargo-portal/internal/core/listview"
	"cargo-portal/internal/features/catalog/domain"
)

// UserRepository is the backend's user administration surface.
type UserRepository interface {
	ListUsers(ctx context.Context, token string, f listview.Filters) (backend.Page[domain.Member], error)
	SetActive(ctx context.Context, token, id string, active bool) error
}

// InvoiceRepository is the backend's billing surface.
type InvoiceRepository interface {
	ListInvoices(ctx context.Context, token string, f listview.Filters) (backend.Page[domain.Invoice], error)
	PayInvoice(ctx context.Context, token, id string) (*domain.Payment, error)
}

// MarketplaceRepository is the backend's listing board.
type MarketplaceRepository interface {
	ListListings(ctx context.Context, token string, f listview.Filters) (backend.Page[domain.Listing], error)
	CreateListing(ctx context.Context, token string, l domain.NewListing) (*domain.Listing, error)
}

// KeyRepository manages integration API keys.
type KeyRepository interface {
	ListKeys(ctx context.Context, token string, f listview.Filters) (backend.Page[domain.APIKey], error)
	CreateKey(ctx context.Context, token string, k domain.NewAPIKey) (*domain.APIKey, error)
	RevokeKey(ctx context.Context, token, id string) error
}

// CompanyRepository covers company membership.
type CompanyRepository interface {
	JoinCompany(ctx context.Context, token, id string) (string, error)
}

// ReferenceRepository serves slow-changing lookup data.
type ReferenceRepository interface {
	PaymentAccounts(ctx context.Context, token string) ([]domain.PaymentAccount, error)
	DeliveryPoints(ctx context.Context, token string) ([]domain.DeliveryPoint, error)
	PublicSettings(ctx context.Context) (*domain.PublicSettings, error)
}

// Repository is everything the catalog reads and writes.
type Repository interface {
	UserRepository
	InvoiceRepository
	MarketplaceRepository
	KeyRepository
	CompanyRepository
	ReferenceRepository
}
