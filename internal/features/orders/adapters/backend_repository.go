package adapters

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"cargo-portal/internal/core/backend"
	"cargo-portal/internal/core/listview"
	"cargo-portal/internal/features/orders/domain"
)

// BackendOrderRepository implements ports.OrderRepository against /orders.
type BackendOrderRepository struct {
	client *backend.Client
}

// NewBackendOrderRepository creates a new BackendOrderRepository.
func NewBackendOrderRepository(client *backend.Client) *BackendOrderRepository {
	return &BackendOrderRepository{client: client}
}

func orderPath(id, action string) string {
	p := "/orders/" + url.PathEscape(id)
	if action != "" {
		p += "/" + action
	}
	return p
}

// List fetches one page of orders.
func (r *BackendOrderRepository) List(ctx context.Context, token string, f listview.Filters) (backend.Page[domain.Order], error) {
	var page backend.Page[domain.Order]
	_, err := r.client.Do(ctx, backend.Request{
		Method: http.MethodGet,
		Path:   "/orders",
		Query:  f.Query(),
		Token:  token,
	}, &page)
	if err != nil {
		return backend.Page[domain.Order]{}, fmt.Errorf("list orders: %w", err)
	}
	return page, nil
}

// Get fetches one order.
func (r *BackendOrderRepository) Get(ctx context.Context, token, id string) (*domain.Order, error) {
	var o domain.Order
	_, err := r.client.Do(ctx, backend.Request{
		Method: http.MethodGet,
		Path:   orderPath(id, ""),
		Token:  token,
	}, &o)
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	return &o, nil
}

// SetHold patches the hold flag.
func (r *BackendOrderRepository) SetHold(ctx context.Context, token, id string, hold bool) error {
	_, err := r.client.Do(ctx, backend.Request{
		Method: http.MethodPatch,
		Path:   orderPath(id, "hold"),
		Body:   map[string]bool{"isOnHold": hold},
		Token:  token,
	}, nil)
	if err != nil {
		return fmt.Errorf("hold order %s: %w", id, err)
	}
	return nil
}

// RequestQC patches the QC request.
func (r *BackendOrderRepository) RequestQC(ctx context.Context, token, id, notes string) error {
	_, err := r.client.Do(ctx, backend.Request{
		Method: http.MethodPatch,
		Path:   orderPath(id, "qc-request"),
		Body:   map[string]string{"notes": notes},
		Token:  token,
	}, nil)
	if err != nil {
		return fmt.Errorf("request qc for order %s: %w", id, err)
	}
	return nil
}

// PayQC posts the QC payment request.
func (r *BackendOrderRepository) PayQC(ctx context.Context, token, id string) (*domain.QCPayment, error) {
	var p domain.QCPayment
	_, err := r.client.Do(ctx, backend.Request{
		Method: http.MethodPost,
		Path:   orderPath(id, "qc-pay"),
		Token:  token,
	}, &p)
	if err != nil {
		return nil, fmt.Errorf("pay qc for order %s: %w", id, err)
	}
	return &p, nil
}
