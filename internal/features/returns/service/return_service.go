package service

import (
	"context"

	"cargo-portal/internal/core/backend"
	"cargo-portal/internal/core/listview"
	"cargo-portal/internal/core/notice"
	"cargo-portal/internal/core/validation"
	"cargo-portal/internal/features/returns/domain"
	"cargo-portal/internal/features/returns/ports"
	sessiondomain "cargo-portal/internal/features/session/domain"
)

const viewName = "returns"

var emptyReturns = listview.Empty{Message: "No return requests", Action: "create_return"}

// ReturnService serves the return request screens.
type ReturnService struct {
	repo  ports.ReturnRepository
	views *listview.Registry
}

// NewReturnService creates a new ReturnService.
func NewReturnService(repo ports.ReturnRepository, views *listview.Registry) *ReturnService {
	return &ReturnService{repo: repo, views: views}
}

func (s *ReturnService) view(sc *sessiondomain.Context) *listview.View[domain.Return] {
	return listview.Open(s.views, sc.ID, viewName, func() *listview.View[domain.Return] {
		return listview.New(viewName, func(ctx context.Context, f listview.Filters) (backend.Page[domain.Return], error) {
			page, err := s.repo.List(ctx, sc.Token, f)
			for i := range page.Items {
				page.Items[i] = page.Items[i].Decorate()
			}
			return page, err
		}, emptyReturns)
	})
}

// List loads the session's return list with f.
func (s *ReturnService) List(ctx context.Context, sc *sessiondomain.Context, f listview.Filters) (listview.State[domain.Return], error) {
	return s.view(sc).Load(ctx, f)
}

// Create files a return request and refreshes the list.
func (s *ReturnService) Create(ctx context.Context, sc *sessiondomain.Context, nr domain.NewReturn) (listview.State[domain.Return], error) {
	v := s.view(sc)
	if err := validation.Struct(nr); err != nil {
		return v.Snapshot(notice.FromError(err)), err
	}
	return v.Mutate(ctx, func(ctx context.Context) error {
		_, err := s.repo.Create(ctx, sc.Token, nr)
		return err
	}, "Return request sent")
}

// Review approves or rejects a return and refreshes the list.
func (s *ReturnService) Review(ctx context.Context, sc *sessiondomain.Context, id string, r domain.Review) (listview.State[domain.Return], error) {
	v := s.view(sc)
	if err := r.Validate(); err != nil {
		return v.Snapshot(notice.FromError(err)), err
	}

	msg := "Return rejected"
	if r.Decision == domain.DecisionApprove {
		msg = "Return approved"
	}
	return v.Mutate(ctx, func(ctx context.Context) error {
		return s.repo.Review(ctx, sc.Token, id, r)
	}, msg)
}
