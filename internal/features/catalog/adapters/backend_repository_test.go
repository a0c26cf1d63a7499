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
	"cargo-portal/internal/features/catalog/domain"
	sessiondomain "cargo-portal/internal/features/session/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, handler http.HandlerFunc) *BackendRepository {
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewBackendRepository(backend.NewClient(config.BackendConfig{URL: ts.URL, TimeoutSeconds: 2}))
}

func TestBackendRepository_ListUsers(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users", r.URL.Path)
		assert.Equal(t, "c1", r.URL.Query().Get("companyId"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Write([]byte(`{"data":{"items":[{"id":"u1","role":"STAFF_CHINA","isActive":false}],"total":1,"page":1}}`))
	})

	page, err := repo.ListUsers(context.Background(), "tok", listview.Filters{CompanyID: "c1"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, sessiondomain.RoleStaffChina, page.Items[0].Role)
	assert.False(t, page.Items[0].Active)
}

func TestBackendRepository_SetActive(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/users/u1/active", r.URL.Path)

		var body map[string]bool
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]bool{"isActive": false}, body)
		w.Write([]byte(`{"data":null,"message":"updated"}`))
	})

	require.NoError(t, repo.SetActive(context.Background(), "tok", "u1", false))
}

func TestBackendRepository_PayInvoice(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/invoices/inv-7/pay", r.URL.Path)
		w.Write([]byte(`{"data":{"invoiceId":"q1","amount":"45000","qrText":"000201","urls":[{"name":"Khan bank","link":"khanbank://q?qPay_QRcode=000201"}]}}`))
	})

	p, err := repo.PayInvoice(context.Background(), "tok", "inv-7")
	require.NoError(t, err)
	assert.True(t, p.Amount.Equal(decimal.NewFromInt(45000)))
	require.Len(t, p.Links, 1)
	assert.Equal(t, "Khan bank", p.Links[0].Name)
}

func TestBackendRepository_CreateListing(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "1500000", body["price"])
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data":{"id":"l1","status":"ACTIVE","price":"1500000"}}`))
	})

	l, err := repo.CreateListing(context.Background(), "tok", domain.NewListing{Title: "Truck", Price: decimal.NewFromInt(1500000)})
	require.NoError(t, err)
	assert.Equal(t, "l1", l.ID)
}

func TestBackendRepository_Keys(t *testing.T) {
	var calls []string
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		switch r.Method {
		case http.MethodPost:
			w.Write([]byte(`{"data":{"id":"k1","name":"erp","prefix":"ck_","secret":"ck_live_123","status":"ACTIVE"}}`))
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	})

	k, err := repo.CreateKey(context.Background(), "tok", domain.NewAPIKey{Name: "erp"})
	require.NoError(t, err)
	assert.Equal(t, "ck_live_123", k.Secret)

	require.NoError(t, repo.RevokeKey(context.Background(), "tok", "k1"))
	assert.Equal(t, []string{"POST /integration/keys", "DELETE /integration/keys/k1"}, calls)
}

func TestBackendRepository_JoinCompany(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/companies/c9/join", r.URL.Path)
		w.Write([]byte(`{"data":null,"message":"Request sent to company admin"}`))
	})

	msg, err := repo.JoinCompany(context.Background(), "tok", "c9")
	require.NoError(t, err)
	assert.Equal(t, "Request sent to company admin", msg)
}

func TestBackendRepository_PublicSettings(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{"data":{"pricePerKg":3000,"pricePerCbm":"450000","supportPhone":"77001234"}}`))
	})

	s, err := repo.PublicSettings(context.Background())
	require.NoError(t, err)
	assert.True(t, s.PricePerKg.Equal(decimal.NewFromInt(3000)))
	assert.True(t, s.PricePerCbm.Equal(decimal.NewFromInt(450000)))
	assert.Equal(t, "77001234", s.SupportPhone)
}

func TestBackendRepository_DeliveryPoints(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":"d1","name":"Bayanzurkh"},{"id":"d2","name":"Khan-Uul"}]}`))
	})

	points, err := repo.DeliveryPoints(context.Background(), "tok")
	require.NoError(t, err)
	assert.Len(t, points, 2)
}
