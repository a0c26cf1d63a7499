package adapters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cargo-portal/internal/core/backend"
	"cargo-portal/internal/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackendSubmitter_Submit(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/vehicles", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "1234УБА", body["plateNumber"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data":{"id":"veh-1"},"message":"Vehicle registered"}`))
	}))
	t.Cleanup(ts.Close)

	s := NewBackendSubmitter(backend.NewClient(config.BackendConfig{URL: ts.URL, TimeoutSeconds: 2}))
	sub, err := s.Submit(context.Background(), "tok", "/vehicles", map[string]string{"plateNumber": "1234УБА"})
	require.NoError(t, err)
	assert.Equal(t, "veh-1", sub.ID)
	assert.Equal(t, "Vehicle registered", sub.Message)
}

func TestBackendSubmitter_Rejected(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"Plate number already registered"}`))
	}))
	t.Cleanup(ts.Close)

	s := NewBackendSubmitter(backend.NewClient(config.BackendConfig{URL: ts.URL, TimeoutSeconds: 2}))
	_, err := s.Submit(context.Background(), "tok", "/vehicles", map[string]string{})

	apiErr, ok := backend.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "Plate number already registered", apiErr.Message)
}
