package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cargo-portal/internal/core/backend"
	"cargo-portal/internal/core/config"
	"cargo-portal/internal/core/listview"
	"cargo-portal/internal/core/web"
	"cargo-portal/internal/features/catalog/adapters"
	"cargo-portal/internal/features/catalog/domain"
	"cargo-portal/internal/features/catalog/service"
	sessiondomain "cargo-portal/internal/features/session/domain"
	"cargo-portal/internal/features/session/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(t *testing.T, backendHandler http.HandlerFunc) *fiber.App {
	ts := httptest.NewServer(backendHandler)
	t.Cleanup(ts.Close)

	client := backend.NewClient(config.BackendConfig{URL: ts.URL, TimeoutSeconds: 2})
	h := NewCatalogHandler(service.NewCatalogService(adapters.NewBackendRepository(client), listview.NewRegistry()))

	app := fiber.New()
	app.Get("/api/settings/public", h.PublicSettings)
	app.Get("/api/settings/quote", h.Quote)

	api := app.Group("/api", func(c *fiber.Ctx) error {
		middleware.Set(c, &sessiondomain.Context{ID: "s1", Token: "tok", User: &sessiondomain.User{Role: sessiondomain.RoleCargoAdmin}})
		return c.Next()
	})
	api.Get("/users", h.ListUsers)
	api.Patch("/users/:id/active", h.SetActive)
	api.Post("/invoices/:id/pay", h.PayInvoice)
	api.Post("/marketplace", h.CreateListing)
	api.Post("/integration/keys", h.CreateKey)
	api.Post("/companies/:id/join", h.JoinCompany)
	api.Get("/delivery-points", h.DeliveryPoints)
	return app
}

func TestCatalogHandler_ListUsers(t *testing.T) {
	app := setupApp(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DRIVER", r.URL.Query().Get("type"))
		w.Write([]byte(`{"data":{"items":[{"id":"u1","name":"Bat","role":"DRIVER","verificationStatus":"PENDING","isActive":true}],"total":1,"page":1}}`))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/users?type=DRIVER", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var state listview.State[domain.Member]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&state))
	require.Len(t, state.Items, 1)
	assert.Equal(t, "Bat", state.Items[0].Name)
	assert.Equal(t, "PENDING", state.Items[0].Badge.Raw)
}

func TestCatalogHandler_SetActive_MissingFlag(t *testing.T) {
	app := setupApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("backend must not be called, got %s %s", r.Method, r.URL.Path)
	})

	req := httptest.NewRequest(http.MethodPatch, "/api/users/u1/active", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCatalogHandler_PayInvoice(t *testing.T) {
	app := setupApp(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.Write([]byte(`{"data":{"invoiceId":"q1","amount":"45000","qrText":"000201","urls":[]}}`))
			return
		}
		w.Write([]byte(`{"data":{"items":[{"id":"inv-1","status":"PAID","amount":"45000"}],"total":1,"page":1}}`))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/invoices/inv-1/pay", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body PayInvoiceResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "000201", body.Payment.QRText)
	assert.False(t, body.List.Items[0].Payable)
}

func TestCatalogHandler_CreateListing_Invalid(t *testing.T) {
	app := setupApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("backend must not be called, got %s %s", r.Method, r.URL.Path)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/marketplace", strings.NewReader(`{"title":"Truck","price":"0"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var state listview.State[domain.Listing]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&state))
	require.NotNil(t, state.Notice)
}

func TestCatalogHandler_CreateKey(t *testing.T) {
	app := setupApp(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.Write([]byte(`{"data":{"id":"k1","name":"erp","secret":"ck_live_123","status":"ACTIVE"}}`))
			return
		}
		w.Write([]byte(`{"data":{"items":[{"id":"k1","name":"erp","secret":"ck_live_123","status":"ACTIVE"}],"total":1,"page":1}}`))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/integration/keys", strings.NewReader(`{"name":"erp"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body CreateKeyResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ck_live_123", body.Key.Secret)
	assert.Empty(t, body.List.Items[0].Secret)
}

func TestCatalogHandler_JoinCompany_Conflict(t *testing.T) {
	app := setupApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"Already a member"}`))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/companies/c1/join", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var body web.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Already a member", body.Message)
}

func TestCatalogHandler_DeliveryPoints_Empty(t *testing.T) {
	app := setupApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":null}`))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/delivery-points", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var points []domain.DeliveryPoint
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&points))
	assert.NotNil(t, points)
	assert.Empty(t, points)
}

func TestCatalogHandler_Quote(t *testing.T) {
	app := setupApp(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/settings/public", r.URL.Path)
		w.Write([]byte(`{"data":{"pricePerKg":"3000","pricePerCbm":"450000","fastSurcharge":"10000"}}`))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/settings/quote?weight=12&volume=0.05", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body QuoteResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "36000", body.Cost.String())

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/settings/quote?weight=abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
