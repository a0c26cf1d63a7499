package listview

import (
	"context"
	"errors"
	"sync"

	"cargo-portal/internal/core/backend"
	"cargo-portal/internal/core/metrics"
	"cargo-portal/internal/core/notice"
)

var (
	// ErrStale is returned by Load when a newer Load was issued before this one finished.
	ErrStale = errors.New("listview: response superseded by a newer fetch")
	// ErrClosed is returned once the view has been torn down.
	ErrClosed = errors.New("listview: view closed")
)

// Fetcher loads one page of items for the given filters.
type Fetcher[T any] func(ctx context.Context, f Filters) (backend.Page[T], error)

// Empty is the explicit empty-state shown instead of a blank list.
type Empty struct {
	Message string `json:"message"`
	// Action is the call-to-action id the browser renders, e.g. "create_order".
	Action string `json:"action,omitempty"`
}

// State is what a list screen renders.
type State[T any] struct {
	Items   []T            `json:"items"`
	Total   int            `json:"total"`
	Loading bool           `json:"loading"`
	Page    int            `json:"page"`
	Filters Filters        `json:"filters"`
	Empty   *Empty         `json:"empty,omitempty"`
	Notice  *notice.Notice `json:"notice,omitempty"`
}

// View owns the state of one list screen. Every Load replaces the items
// wholesale; a newer Load cancels the older one and the older result is
// dropped. Mutations never patch items locally: they refetch.
type View[T any] struct {
	name  string
	fetch Fetcher[T]
	empty Empty

	mu     sync.Mutex
	state  State[T]
	gen    uint64
	cancel context.CancelFunc
	closed bool
}

// New creates a list view. name labels metrics.
func New[T any](name string, fetch Fetcher[T], empty Empty) *View[T] {
	return &View[T]{
		name:  name,
		fetch: fetch,
		empty: empty,
		state: State[T]{Items: []T{}, Page: 1, Filters: Filters{Page: 1}},
	}
}

// Load issues exactly one fetch for f and, on success, replaces the items.
// On failure the previous items and filters are kept and a notice is returned.
func (v *View[T]) Load(ctx context.Context, f Filters) (State[T], error) {
	f = f.Normalize()

	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return State[T]{}, ErrClosed
	}
	if v.cancel != nil {
		v.cancel()
	}
	v.gen++
	gen := v.gen
	fetchCtx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	v.state.Loading = true
	v.mu.Unlock()

	page, err := v.fetch(fetchCtx, f)
	cancel()

	v.mu.Lock()
	defer v.mu.Unlock()

	if gen != v.gen || v.closed {
		metrics.StaleResponsesTotal.WithLabelValues(v.name).Inc()
		return v.snapshotLocked(nil), ErrStale
	}

	v.cancel = nil
	v.state.Loading = false

	if err != nil {
		return v.snapshotLocked(notice.FromError(err)), err
	}

	items := page.Items
	if items == nil {
		items = []T{}
	}
	v.state.Items = items
	v.state.Total = page.Total
	v.state.Page = f.Page
	v.state.Filters = f
	v.state.Empty = nil
	if len(items) == 0 {
		empty := v.empty
		v.state.Empty = &empty
	}

	return v.snapshotLocked(nil), nil
}

// Mutate runs action and then refetches with the current filters. A failed
// action leaves the displayed items exactly as they were.
func (v *View[T]) Mutate(ctx context.Context, action func(ctx context.Context) error, success string) (State[T], error) {
	if err := action(ctx); err != nil {
		metrics.MutationsTotal.WithLabelValues(v.name, "failed").Inc()
		return v.Snapshot(notice.FromError(err)), err
	}
	metrics.MutationsTotal.WithLabelValues(v.name, "ok").Inc()

	state, err := v.Load(ctx, v.Filters())
	switch {
	case errors.Is(err, ErrStale):
		state = v.Snapshot(nil)
	case err != nil:
		// the action went through; only the refresh failed
		return state, nil
	}

	if success != "" {
		state.Notice = notice.Success(success)
	}
	return state, nil
}

// Filters returns the filters of the last successful load.
func (v *View[T]) Filters() Filters {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state.Filters
}

// Snapshot returns a copy of the current state with n attached.
func (v *View[T]) Snapshot(n *notice.Notice) State[T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshotLocked(n)
}

// Close cancels any in-flight fetch. Later loads return ErrClosed.
func (v *View[T]) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	v.closed = true
}

func (v *View[T]) snapshotLocked(n *notice.Notice) State[T] {
	s := v.state
	s.Items = append([]T(nil), v.state.Items...)
	if s.Items == nil {
		s.Items = []T{}
	}
	s.Notice = n
	return s
}
