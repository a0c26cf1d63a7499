package adapters

import (
	"testing"
	"time"

	"cargo-portal/internal/features/wizard/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetChecksSession(t *testing.T) {
	s := NewMemoryStore()
	s.Save(domain.New("w1", "s1", domain.OrderDefinition()))

	w, err := s.Get("s1", "w1")
	require.NoError(t, err)
	assert.Equal(t, "w1", w.ID())

	_, err = s.Get("s2", "w1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = s.Get("s1", "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemoryStore_CloseSession(t *testing.T) {
	s := NewMemoryStore()
	s.Save(domain.New("w1", "s1", domain.OrderDefinition()))
	s.Save(domain.New("w2", "s1", domain.VehicleDefinition()))
	s.Save(domain.New("w3", "s2", domain.OrderDefinition()))

	s.CloseSession("s1")
	assert.Equal(t, 1, s.Len())

	s.Delete("w3")
	s.Delete("w3")
	assert.Equal(t, 0, s.Len())
}

func TestMemoryStore_Sweep(t *testing.T) {
	s := NewMemoryStore()
	s.Save(domain.New("w1", "s1", domain.OrderDefinition()))

	assert.Equal(t, 0, s.Sweep(time.Hour))
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, 1, s.Sweep(time.Millisecond))
	assert.Equal(t, 0, s.Len())
}
