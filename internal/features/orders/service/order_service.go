package service

import (
	"context"

	"cargo-portal/internal/core/backend"
	"cargo-portal/internal/core/listview"
	"cargo-portal/internal/core/notice"
	"cargo-portal/internal/core/validation"
	"cargo-portal/internal/features/orders/domain"
	"cargo-portal/internal/features/orders/ports"
	sessiondomain "cargo-portal/internal/features/session/domain"
)

const viewName = "orders"

var emptyOrders = listview.Empty{Message: "No orders yet", Action: "create_order"}

// QCRequest is the customer's inspection request.
type QCRequest struct {
	Notes string `json:"notes" validate:"max=500"`
}

// OrderService serves the order screens.
type OrderService struct {
	repo  ports.OrderRepository
	views *listview.Registry
}

// NewOrderService creates a new instance of OrderService.
func NewOrderService(repo ports.OrderRepository, views *listview.Registry) *OrderService {
	return &OrderService{
		repo:  repo,
		views: views,
	}
}

func (s *OrderService) view(sc *sessiondomain.Context) *listview.View[domain.Order] {
	return listview.Open(s.views, sc.ID, viewName, func() *listview.View[domain.Order] {
		return listview.New(viewName, func(ctx context.Context, f listview.Filters) (backend.Page[domain.Order], error) {
			page, err := s.repo.List(ctx, sc.Token, f)
			for i := range page.Items {
				page.Items[i] = page.Items[i].Decorate()
			}
			return page, err
		}, emptyOrders)
	})
}

// List loads the session's order list with f.
func (s *OrderService) List(ctx context.Context, sc *sessiondomain.Context, f listview.Filters) (listview.State[domain.Order], error) {
	return s.view(sc).Load(ctx, f)
}

// Get returns one order with its timeline.
func (s *OrderService) Get(ctx context.Context, sc *sessiondomain.Context, id string) (*domain.Detail, error) {
	o, err := s.repo.Get(ctx, sc.Token, id)
	if err != nil {
		return nil, err
	}
	d := domain.NewDetail(*o)
	return &d, nil
}

// SetHold stops or resumes an order and refreshes the list.
func (s *OrderService) SetHold(ctx context.Context, sc *sessiondomain.Context, id string, hold bool) (listview.State[domain.Order], error) {
	msg := "Order released"
	if hold {
		msg = "Order put on hold"
	}
	return s.view(sc).Mutate(ctx, func(ctx context.Context) error {
		return s.repo.SetHold(ctx, sc.Token, id, hold)
	}, msg)
}

// RequestQC asks for an inspection and refreshes the list.
func (s *OrderService) RequestQC(ctx context.Context, sc *sessiondomain.Context, id string, req QCRequest) (listview.State[domain.Order], error) {
	v := s.view(sc)
	if err := validation.Struct(req); err != nil {
		return v.Snapshot(notice.FromError(err)), err
	}
	return v.Mutate(ctx, func(ctx context.Context) error {
		return s.repo.RequestQC(ctx, sc.Token, id, req.Notes)
	}, "Inspection requested")
}

// PayQC issues the inspection payment and refreshes the list.
func (s *OrderService) PayQC(ctx context.Context, sc *sessiondomain.Context, id string) (*domain.QCPayment, listview.State[domain.Order], error) {
	var payment *domain.QCPayment
	state, err := s.view(sc).Mutate(ctx, func(ctx context.Context) error {
		var err error
		payment, err = s.repo.PayQC(ctx, sc.Token, id)
		return err
	}, "Payment created")
	return payment, state, err
}
