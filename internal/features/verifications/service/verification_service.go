package service

import (
	"context"

	"cargo-portal/internal/core/backend"
	"cargo-portal/internal/core/listview"
	"cargo-portal/internal/core/notice"
	sessiondomain "cargo-portal/internal/features/session/domain"
	statusdomain "cargo-portal/internal/features/status/domain"
	"cargo-portal/internal/features/verifications/domain"
	"cargo-portal/internal/features/verifications/ports"
)

const viewName = "verifications"

var emptyVerifications = listview.Empty{Message: "Nothing waiting for review"}

// VerificationService serves the verification review screens.
type VerificationService struct {
	repo  ports.VerificationRepository
	views *listview.Registry
}

// NewVerificationService creates a new VerificationService.
func NewVerificationService(repo ports.VerificationRepository, views *listview.Registry) *VerificationService {
	return &VerificationService{repo: repo, views: views}
}

func (s *VerificationService) view(sc *sessiondomain.Context) *listview.View[domain.Verification] {
	return listview.Open(s.views, sc.ID, viewName, func() *listview.View[domain.Verification] {
		return listview.New(viewName, func(ctx context.Context, f listview.Filters) (backend.Page[domain.Verification], error) {
			page, err := s.repo.List(ctx, sc.Token, f)
			for i := range page.Items {
				page.Items[i] = page.Items[i].Decorate()
			}
			return page, err
		}, emptyVerifications)
	})
}

// List loads the session's verification list with f.
func (s *VerificationService) List(ctx context.Context, sc *sessiondomain.Context, f listview.Filters) (listview.State[domain.Verification], error) {
	return s.view(sc).Load(ctx, f)
}

// Review approves or rejects a request and refreshes the list.
func (s *VerificationService) Review(ctx context.Context, sc *sessiondomain.Context, id string, r domain.Review) (listview.State[domain.Verification], error) {
	v := s.view(sc)
	if err := r.Validate(); err != nil {
		return v.Snapshot(notice.FromError(err)), err
	}

	msg := "Verification rejected"
	if r.Status == statusdomain.VerificationApproved {
		msg = "Verification approved"
	}
	return v.Mutate(ctx, func(ctx context.Context) error {
		return s.repo.Review(ctx, sc.Token, id, r)
	}, msg)
}
