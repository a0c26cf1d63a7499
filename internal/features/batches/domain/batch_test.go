package domain

import (
	"encoding/json"
	"testing"

	packagesdomain "cargo-portal/internal/features/packages/domain"
	statusdomain "cargo-portal/internal/features/status/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatch_NextAction(t *testing.T) {
	cases := map[statusdomain.BatchStatus]Action{
		statusdomain.BatchOpen:     ActionClose,
		statusdomain.BatchClosed:   ActionDepart,
		statusdomain.BatchDeparted: ActionArrive,
	}
	for status, expected := range cases {
		a, ok := Batch{Status: status}.NextAction()
		assert.True(t, ok, status)
		assert.Equal(t, expected, a, status)
	}

	for _, status := range []statusdomain.BatchStatus{statusdomain.BatchArrived, statusdomain.BatchUnloaded, "SUNK"} {
		_, ok := Batch{Status: status}.NextAction()
		assert.False(t, ok, status)
	}
}

func TestNewDetail(t *testing.T) {
	var b Batch
	require.NoError(t, json.Unmarshal([]byte(`{"id":"b1","status":"CLOSED","packageCount":2,"totalWeight":"18.4",
		"packages":[{"id":"p1","status":"BATCHED"},{"id":"p2","status":"BATCHED"}]}`), &b))

	d := NewDetail(b)
	assert.Equal(t, []Action{ActionDepart}, d.Actions)
	assert.True(t, d.Badge.Known)
	assert.True(t, d.Packages[1].Badge.Known)

	d = NewDetail(Batch{Status: statusdomain.BatchUnloaded})
	assert.Empty(t, d.Actions)
	assert.NotNil(t, d.Actions)
}

func TestUnbatched(t *testing.T) {
	out := Unbatched([]packagesdomain.Package{
		{ID: "p1"},
		{ID: "p2", BatchID: "b1"},
		{ID: "p3"},
	})
	require.Len(t, out, 2)
	assert.Equal(t, "p1", out[0].ID)
	assert.Equal(t, "p3", out[1].ID)

	assert.NotNil(t, Unbatched(nil))
}
