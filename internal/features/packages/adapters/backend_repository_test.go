package adapters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cargo-portal/internal/core/backend"
	"cargo-portal/internal/core/config"
	"cargo-portal/internal/core/listview"
	"cargo-portal/internal/features/packages/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, handler http.HandlerFunc) *BackendPackageRepository {
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewBackendPackageRepository(backend.NewClient(config.BackendConfig{URL: ts.URL, TimeoutSeconds: 2}))
}

func TestBackendPackageRepository_List(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/packages", r.URL.Path)
		assert.Equal(t, "SHELVED_CHINA", r.URL.Query().Get("status"))
		assert.Equal(t, "c1", r.URL.Query().Get("companyId"))
		w.Write([]byte(`{"data":{"items":[{"id":"p1"},{"id":"p2","batchId":"b1"}],"total":2,"page":1}}`))
	})

	page, err := repo.List(context.Background(), "tok", listview.Filters{Status: "SHELVED_CHINA", CompanyID: "c1"})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.True(t, page.Items[1].Batched())
}

func TestBackendPackageRepository_Measure(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/packages/p%201/measure", r.URL.EscapedPath())

		var m domain.Measurement
		require.NoError(t, json.NewDecoder(r.Body).Decode(&m))
		assert.True(t, m.Weight.Equal(decimal.RequireFromString("3.2")))
		assert.Equal(t, "A-12", m.ShelfLocation)
		w.Write([]byte(`{"data":null}`))
	})

	err := repo.Measure(context.Background(), "tok", "p 1", domain.Measurement{
		Weight:        decimal.RequireFromString("3.2"),
		ShelfLocation: "A-12",
	})
	require.NoError(t, err)
}

func TestBackendPackageRepository_Get_Forbidden(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":"Хандах эрхгүй"}`))
	})

	_, err := repo.Get(context.Background(), "tok", "p1")
	assert.ErrorIs(t, err, backend.ErrForbidden)
}
