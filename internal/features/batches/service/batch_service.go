package service

import (
	"context"
	"fmt"

	"cargo-portal/internal/core/backend"
	"cargo-portal/internal/core/listview"
	"cargo-portal/internal/core/notice"
	"cargo-portal/internal/core/validation"
	"cargo-portal/internal/features/batches/domain"
	"cargo-portal/internal/features/batches/ports"
	packagesdomain "cargo-portal/internal/features/packages/domain"
	sessiondomain "cargo-portal/internal/features/session/domain"
	statusdomain "cargo-portal/internal/features/status/domain"
)

const viewName = "batches"

var emptyBatches = listview.Empty{Message: "No batches yet", Action: "create_batch"}

var transitionMessages = map[domain.Action]string{
	domain.ActionClose:  "Batch closed",
	domain.ActionDepart: "Batch departed",
	domain.ActionArrive: "Batch arrived",
}

// AvailablePackages are packages that can still be put on a batch.
type AvailablePackages struct {
	Items []packagesdomain.Package `json:"items"`
	// Hidden counts packages of the page left out because they are already batched.
	Hidden int `json:"hidden"`
	Page   int `json:"page"`
}

// BatchService serves the batch screens.
type BatchService struct {
	repo  ports.BatchRepository
	views *listview.Registry
}

// NewBatchService creates a new BatchService.
func NewBatchService(repo ports.BatchRepository, views *listview.Registry) *BatchService {
	return &BatchService{repo: repo, views: views}
}

func (s *BatchService) view(sc *sessiondomain.Context) *listview.View[domain.Batch] {
	return listview.Open(s.views, sc.ID, viewName, func() *listview.View[domain.Batch] {
		return listview.New(viewName, func(ctx context.Context, f listview.Filters) (backend.Page[domain.Batch], error) {
			page, err := s.repo.List(ctx, sc.Token, f)
			for i := range page.Items {
				page.Items[i] = page.Items[i].Decorate()
			}
			return page, err
		}, emptyBatches)
	})
}

// List loads the session's batch list with f.
func (s *BatchService) List(ctx context.Context, sc *sessiondomain.Context, f listview.Filters) (listview.State[domain.Batch], error) {
	return s.view(sc).Load(ctx, f)
}

// Get returns one batch with its packages and next action.
func (s *BatchService) Get(ctx context.Context, sc *sessiondomain.Context, id string) (*domain.Detail, error) {
	b, err := s.repo.Get(ctx, sc.Token, id)
	if err != nil {
		return nil, err
	}
	d := domain.NewDetail(*b)
	return &d, nil
}

// Create opens a batch with the given packages and refreshes the list.
func (s *BatchService) Create(ctx context.Context, sc *sessiondomain.Context, nb domain.NewBatch) (*domain.Batch, listview.State[domain.Batch], error) {
	v := s.view(sc)
	if err := validation.Struct(nb); err != nil {
		return nil, v.Snapshot(notice.FromError(err)), err
	}

	var created *domain.Batch
	state, err := v.Mutate(ctx, func(ctx context.Context) error {
		b, err := s.repo.Create(ctx, sc.Token, nb)
		if err != nil {
			return err
		}
		decorated := b.Decorate()
		created = &decorated
		return nil
	}, "Batch created")
	return created, state, err
}

// Transition closes, departs or arrives a batch and refreshes the list.
func (s *BatchService) Transition(ctx context.Context, sc *sessiondomain.Context, id string, action domain.Action) (listview.State[domain.Batch], error) {
	msg, ok := transitionMessages[action]
	if !ok {
		return listview.State[domain.Batch]{}, fmt.Errorf("service: unknown batch action %q", action)
	}
	return s.view(sc).Mutate(ctx, func(ctx context.Context) error {
		return s.repo.Transition(ctx, sc.Token, id, action)
	}, msg)
}

// AvailablePackages lists packages without a batch. Without a status
// filter it looks at packages shelved in China.
func (s *BatchService) AvailablePackages(ctx context.Context, sc *sessiondomain.Context, f listview.Filters) (*AvailablePackages, error) {
	f = f.Normalize()
	if f.Status == "" {
		f.Status = string(statusdomain.PackageShelvedChina)
	}

	page, err := s.repo.Packages(ctx, sc.Token, f)
	if err != nil {
		return nil, err
	}

	items := domain.Unbatched(page.Items)
	return &AvailablePackages{
		Items:  items,
		Hidden: len(page.Items) - len(items),
		Page:   f.Page,
	}, nil
}
