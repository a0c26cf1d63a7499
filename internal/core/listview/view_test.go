package listview

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"cargo-portal/internal/core/backend"
	"cargo-portal/internal/core/notice"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID     string
	Status string
}

func TestFilters_Query(t *testing.T) {
	t.Run("ExactlyStatusSearchPage", func(t *testing.T) {
		q := Filters{Status: "PENDING", Search: "MN-1", Page: 3}.Query()
		assert.Len(t, q, 3)
		assert.Equal(t, "PENDING", q.Get("status"))
		assert.Equal(t, "MN-1", q.Get("search"))
		assert.Equal(t, "3", q.Get("page"))
	})

	t.Run("AllFields", func(t *testing.T) {
		q := Filters{Status: "OPEN", Search: "x", Type: "USER", CompanyID: "c1", Page: 1, Limit: 500}.Query()
		assert.Equal(t, "100", q.Get("limit"))
		assert.Equal(t, "USER", q.Get("type"))
		assert.Equal(t, "c1", q.Get("companyId"))
	})

	t.Run("PageDefaultsToOne", func(t *testing.T) {
		q := Filters{}.Query()
		assert.Len(t, q, 1)
		assert.Equal(t, "1", q.Get("page"))
	})
}

func TestView_Load_ReplacesItems(t *testing.T) {
	var seen []Filters
	pages := map[int][]row{
		1: {{ID: "a"}, {ID: "b"}},
		2: {{ID: "c"}},
	}
	v := New("orders", func(ctx context.Context, f Filters) (backend.Page[row], error) {
		seen = append(seen, f)
		return backend.Page[row]{Items: pages[f.Page], Total: 3}, nil
	}, Empty{Message: "No orders yet", Action: "create_order"})

	state, err := v.Load(context.Background(), Filters{Status: "PENDING", Page: 1})
	require.NoError(t, err)
	assert.Len(t, state.Items, 2)

	state, err = v.Load(context.Background(), Filters{Status: "PENDING", Page: 2})
	require.NoError(t, err)
	assert.Equal(t, []row{{ID: "c"}}, state.Items)
	assert.Equal(t, 2, state.Page)
	assert.False(t, state.Loading)
	assert.Nil(t, state.Empty)

	// same data twice renders the same state
	again, err := v.Load(context.Background(), Filters{Status: "PENDING", Page: 2})
	require.NoError(t, err)
	assert.Equal(t, state, again)

	require.Len(t, seen, 3)
	assert.Equal(t, Filters{Status: "PENDING", Page: 1}, seen[0])
}

func TestView_Load_EmptyState(t *testing.T) {
	v := New("returns", func(ctx context.Context, f Filters) (backend.Page[row], error) {
		return backend.Page[row]{}, nil
	}, Empty{Message: "No returns", Action: "create_return"})

	state, err := v.Load(context.Background(), Filters{})
	require.NoError(t, err)
	assert.NotNil(t, state.Items)
	require.NotNil(t, state.Empty)
	assert.Equal(t, "create_return", state.Empty.Action)
}

func TestView_Load_FailureKeepsPreviousState(t *testing.T) {
	fail := false
	v := New("orders", func(ctx context.Context, f Filters) (backend.Page[row], error) {
		if fail {
			return backend.Page[row]{}, &backend.APIError{Status: http.StatusInternalServerError, Message: "db down"}
		}
		return backend.Page[row]{Items: []row{{ID: "a", Status: "PENDING"}}, Total: 1}, nil
	}, Empty{})

	_, err := v.Load(context.Background(), Filters{Status: "PENDING"})
	require.NoError(t, err)

	fail = true
	state, err := v.Load(context.Background(), Filters{Status: "DELIVERED"})
	require.Error(t, err)
	assert.Equal(t, []row{{ID: "a", Status: "PENDING"}}, state.Items)
	assert.Equal(t, "PENDING", state.Filters.Status)
	require.NotNil(t, state.Notice)
	assert.Equal(t, "db down", state.Notice.Message)

	// the notice is transient
	assert.Nil(t, v.Snapshot(nil).Notice)
}

func TestView_Load_DiscardsStaleResponse(t *testing.T) {
	started := make(chan struct{})
	v := New("orders", func(ctx context.Context, f Filters) (backend.Page[row], error) {
		if f.Search == "slow" {
			close(started)
			<-ctx.Done()
			return backend.Page[row]{Items: []row{{ID: "stale"}}}, ctx.Err()
		}
		return backend.Page[row]{Items: []row{{ID: "fresh"}}}, nil
	}, Empty{})

	var wg sync.WaitGroup
	var slowErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, slowErr = v.Load(context.Background(), Filters{Search: "slow"})
	}()

	<-started
	state, err := v.Load(context.Background(), Filters{Search: "fast"})
	require.NoError(t, err)
	wg.Wait()

	assert.ErrorIs(t, slowErr, ErrStale)
	assert.Equal(t, []row{{ID: "fresh"}}, state.Items)
	assert.Equal(t, []row{{ID: "fresh"}}, v.Snapshot(nil).Items)
	assert.Equal(t, "fast", v.Filters().Search)
}

func TestView_Mutate(t *testing.T) {
	status := "UNDER_REVIEW"
	fetches := 0
	newView := func() *View[row] {
		return New("returns", func(ctx context.Context, f Filters) (backend.Page[row], error) {
			fetches++
			return backend.Page[row]{Items: []row{{ID: "r1", Status: status}}, Total: 1}, nil
		}, Empty{})
	}

	t.Run("SuccessRefetches", func(t *testing.T) {
		fetches = 0
		status = "UNDER_REVIEW"
		v := newView()
		_, err := v.Load(context.Background(), Filters{Status: "UNDER_REVIEW", Page: 1})
		require.NoError(t, err)

		state, err := v.Mutate(context.Background(), func(ctx context.Context) error {
			status = "APPROVED"
			return nil
		}, "Approved")

		require.NoError(t, err)
		assert.Equal(t, 2, fetches)
		assert.Equal(t, "APPROVED", state.Items[0].Status)
		assert.Equal(t, "UNDER_REVIEW", state.Filters.Status)
		require.NotNil(t, state.Notice)
		assert.Equal(t, notice.KindSuccess, state.Notice.Kind)
	})

	t.Run("FailureLeavesItems", func(t *testing.T) {
		fetches = 0
		status = "UNDER_REVIEW"
		v := newView()
		_, err := v.Load(context.Background(), Filters{})
		require.NoError(t, err)

		state, err := v.Mutate(context.Background(), func(ctx context.Context) error {
			return &backend.APIError{Status: http.StatusConflict, Message: "Already reviewed"}
		}, "Approved")

		require.Error(t, err)
		assert.Equal(t, 1, fetches)
		assert.Equal(t, "UNDER_REVIEW", state.Items[0].Status)
		require.NotNil(t, state.Notice)
		assert.Equal(t, "Already reviewed", state.Notice.Message)
	})
}

func TestView_Close_CancelsInFlight(t *testing.T) {
	started := make(chan struct{})
	v := New("batches", func(ctx context.Context, f Filters) (backend.Page[row], error) {
		close(started)
		select {
		case <-ctx.Done():
			return backend.Page[row]{}, ctx.Err()
		case <-time.After(2 * time.Second):
			return backend.Page[row]{}, errors.New("not cancelled")
		}
	}, Empty{})

	errCh := make(chan error, 1)
	go func() {
		_, err := v.Load(context.Background(), Filters{})
		errCh <- err
	}()

	<-started
	v.Close()

	assert.ErrorIs(t, <-errCh, ErrStale)

	_, err := v.Load(context.Background(), Filters{})
	assert.ErrorIs(t, err, ErrClosed)
}
