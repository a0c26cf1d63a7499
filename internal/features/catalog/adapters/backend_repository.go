package adapters

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"cargo-portal/internal/core/backend"
	"cargo-portal/internal/core/listview"
	"cargo-portal/internal/features/catalog/domain"
)

// BackendRepository implements ports.Repository against the cargo backend.
type BackendRepository struct {
	client *backend.Client
}

// NewBackendRepository creates a new BackendRepository.
func NewBackendRepository(client *backend.Client) *BackendRepository {
	return &BackendRepository{client: client}
}

func list[T any](ctx context.Context, c *backend.Client, token, path string, f listview.Filters) (backend.Page[T], error) {
	var page backend.Page[T]
	if _, err := c.Do(ctx, backend.Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  f.Query(),
		Token:  token,
	}, &page); err != nil {
		return backend.Page[T]{}, fmt.Errorf("list %s: %w", path, err)
	}
	return page, nil
}

// ListUsers fetches one page of users.
func (r *BackendRepository) ListUsers(ctx context.Context, token string, f listview.Filters) (backend.Page[domain.Member], error) {
	return list[domain.Member](ctx, r.client, token, "/users", f)
}

// SetActive enables or disables an account.
func (r *BackendRepository) SetActive(ctx context.Context, token, id string, active bool) error {
	if _, err := r.client.Do(ctx, backend.Request{
		Method: http.MethodPatch,
		Path:   "/users/" + url.PathEscape(id) + "/active",
		Body:   map[string]bool{"isActive": active},
		Token:  token,
	}, nil); err != nil {
		return fmt.Errorf("set user %s active: %w", id, err)
	}
	return nil
}

// ListInvoices fetches one page of invoices.
func (r *BackendRepository) ListInvoices(ctx context.Context, token string, f listview.Filters) (backend.Page[domain.Invoice], error) {
	return list[domain.Invoice](ctx, r.client, token, "/invoices", f)
}

// PayInvoice creates a QPay invoice for the bill.
func (r *BackendRepository) PayInvoice(ctx context.Context, token, id string) (*domain.Payment, error) {
	var p domain.Payment
	if _, err := r.client.Do(ctx, backend.Request{
		Method: http.MethodPost,
		Path:   "/invoices/" + url.PathEscape(id) + "/pay",
		Token:  token,
	}, &p); err != nil {
		return nil, fmt.Errorf("pay invoice %s: %w", id, err)
	}
	return &p, nil
}

// ListListings fetches one page of marketplace listings.
func (r *BackendRepository) ListListings(ctx context.Context, token string, f listview.Filters) (backend.Page[domain.Listing], error) {
	return list[domain.Listing](ctx, r.client, token, "/marketplace", f)
}

// CreateListing posts a new listing.
func (r *BackendRepository) CreateListing(ctx context.Context, token string, l domain.NewListing) (*domain.Listing, error) {
	var created domain.Listing
	if _, err := r.client.Do(ctx, backend.Request{
		Method: http.MethodPost,
		Path:   "/marketplace",
		Body:   l,
		Token:  token,
	}, &created); err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}
	return &created, nil
}

// ListKeys fetches the company's integration keys.
func (r *BackendRepository) ListKeys(ctx context.Context, token string, f listview.Filters) (backend.Page[domain.APIKey], error) {
	return list[domain.APIKey](ctx, r.client, token, "/integration/keys", f)
}

// CreateKey issues a new integration key. The returned key carries its secret.
func (r *BackendRepository) CreateKey(ctx context.Context, token string, k domain.NewAPIKey) (*domain.APIKey, error) {
	var created domain.APIKey
	if _, err := r.client.Do(ctx, backend.Request{
		Method: http.MethodPost,
		Path:   "/integration/keys",
		Body:   k,
		Token:  token,
	}, &created); err != nil {
		return nil, fmt.Errorf("create integration key: %w", err)
	}
	return &created, nil
}

// RevokeKey deletes an integration key.
func (r *BackendRepository) RevokeKey(ctx context.Context, token, id string) error {
	if _, err := r.client.Do(ctx, backend.Request{
		Method: http.MethodDelete,
		Path:   "/integration/keys/" + url.PathEscape(id),
		Token:  token,
	}, nil); err != nil {
		return fmt.Errorf("revoke integration key %s: %w", id, err)
	}
	return nil
}

// JoinCompany asks to join a company and returns the backend's message.
func (r *BackendRepository) JoinCompany(ctx context.Context, token, id string) (string, error) {
	msg, err := r.client.Do(ctx, backend.Request{
		Method: http.MethodPost,
		Path:   "/companies/" + url.PathEscape(id) + "/join",
		Token:  token,
	}, nil)
	if err != nil {
		return "", fmt.Errorf("join company %s: %w", id, err)
	}
	return msg, nil
}

// PaymentAccounts lists the bank accounts customers pay into.
func (r *BackendRepository) PaymentAccounts(ctx context.Context, token string) ([]domain.PaymentAccount, error) {
	var accounts []domain.PaymentAccount
	if _, err := r.client.Do(ctx, backend.Request{
		Method: http.MethodGet,
		Path:   "/payment-accounts",
		Token:  token,
	}, &accounts); err != nil {
		return nil, fmt.Errorf("list payment accounts: %w", err)
	}
	return accounts, nil
}

// DeliveryPoints lists the pickup locations.
func (r *BackendRepository) DeliveryPoints(ctx context.Context, token string) ([]domain.DeliveryPoint, error) {
	var points []domain.DeliveryPoint
	if _, err := r.client.Do(ctx, backend.Request{
		Method: http.MethodGet,
		Path:   "/delivery-points",
		Token:  token,
	}, &points); err != nil {
		return nil, fmt.Errorf("list delivery points: %w", err)
	}
	return points, nil
}

// PublicSettings fetches the public tariffs. No token is needed.
func (r *BackendRepository) PublicSettings(ctx context.Context) (*domain.PublicSettings, error) {
	var s domain.PublicSettings
	if _, err := r.client.Do(ctx, backend.Request{
		Method: http.MethodGet,
		Path:   "/settings/public",
	}, &s); err != nil {
		return nil, fmt.Errorf("get public settings: %w", err)
	}
	return &s, nil
}
