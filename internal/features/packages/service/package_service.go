package service

import (
	"context"

	"cargo-portal/internal/core/backend"
	"cargo-portal/internal/core/listview"
	"cargo-portal/internal/core/notice"
	"cargo-portal/internal/features/packages/domain"
	"cargo-portal/internal/features/packages/ports"
	sessiondomain "cargo-portal/internal/features/session/domain"
	statusdomain "cargo-portal/internal/features/status/domain"
)

const viewName = "packages"

var emptyPackages = listview.Empty{Message: "No packages match these filters", Action: "clear_filters"}

// Timeline is a package's progress with its scan history.
type Timeline struct {
	statusdomain.Progress
	History []domain.Event `json:"history"`
}

// PackageService serves the package screens.
type PackageService struct {
	repo  ports.PackageRepository
	views *listview.Registry
}

// NewPackageService creates a new PackageService.
func NewPackageService(repo ports.PackageRepository, views *listview.Registry) *PackageService {
	return &PackageService{repo: repo, views: views}
}

func (s *PackageService) view(sc *sessiondomain.Context) *listview.View[domain.Package] {
	return listview.Open(s.views, sc.ID, viewName, func() *listview.View[domain.Package] {
		return listview.New(viewName, func(ctx context.Context, f listview.Filters) (backend.Page[domain.Package], error) {
			page, err := s.repo.List(ctx, sc.Token, f)
			for i := range page.Items {
				page.Items[i] = page.Items[i].Decorate()
			}
			return page, err
		}, emptyPackages)
	})
}

// List loads the session's package list with f.
func (s *PackageService) List(ctx context.Context, sc *sessiondomain.Context, f listview.Filters) (listview.State[domain.Package], error) {
	return s.view(sc).Load(ctx, f)
}

// Get returns one package with its timeline.
func (s *PackageService) Get(ctx context.Context, sc *sessiondomain.Context, id string) (*domain.Detail, error) {
	p, err := s.repo.Get(ctx, sc.Token, id)
	if err != nil {
		return nil, err
	}
	d := domain.NewDetail(*p)
	return &d, nil
}

// Timeline returns the milestones of a package and its scan history.
func (s *PackageService) Timeline(ctx context.Context, sc *sessiondomain.Context, id string) (*Timeline, error) {
	p, err := s.repo.Get(ctx, sc.Token, id)
	if err != nil {
		return nil, err
	}
	decorated := p.Decorate()
	history := decorated.History
	if history == nil {
		history = []domain.Event{}
	}
	return &Timeline{Progress: statusdomain.Track(p.Status), History: history}, nil
}

// Measure records weight and dimensions and refreshes the list.
func (s *PackageService) Measure(ctx context.Context, sc *sessiondomain.Context, id string, m domain.Measurement) (listview.State[domain.Package], error) {
	v := s.view(sc)
	if err := m.Validate(); err != nil {
		return v.Snapshot(notice.FromError(err)), err
	}
	return v.Mutate(ctx, func(ctx context.Context) error {
		return s.repo.Measure(ctx, sc.Token, id, m)
	}, "Package measured")
}
