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
	"cargo-portal/internal/features/returns/adapters"
	"cargo-portal/internal/features/returns/domain"
	"cargo-portal/internal/features/returns/service"
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
	h := NewReturnHandler(service.NewReturnService(adapters.NewBackendReturnRepository(client), listview.NewRegistry()))

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		middleware.Set(c, &sessiondomain.Context{ID: "s1", Token: "tok", User: &sessiondomain.User{Role: sessiondomain.RoleCargoAdmin}})
		return c.Next()
	})
	app.Get("/api/returns", h.ListReturns)
	app.Post("/api/returns", h.CreateReturn)
	app.Post("/api/returns/:id/review", h.ReviewReturn)
	return app
}

func TestReturnHandler_ListReturns_Empty(t *testing.T) {
	app := setupApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"items":[],"total":0,"page":1}}`))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/returns?status=OPENED", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var state listview.State[domain.Return]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&state))
	require.NotNil(t, state.Empty)
	assert.Equal(t, "create_return", state.Empty.Action)
}

func TestReturnHandler_ReviewReturn_Invalid(t *testing.T) {
	app := setupApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("backend must not be called, got %s %s", r.Method, r.URL.Path)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/returns/r1/review", strings.NewReader(`{"decision":"APPROVED"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestReturnHandler_CreateReturn_BadBody(t *testing.T) {
	app := setupApp(t, func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodPost, "/api/returns", strings.NewReader(`[`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body web.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Invalid request body", body.Message)
}
