package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"cargo-portal/internal/features/dashboard/domain"
	"cargo-portal/internal/features/dashboard/service"
	sessiondomain "cargo-portal/internal/features/session/domain"
	"cargo-portal/internal/features/session/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticCounter int

func (n staticCounter) Count(context.Context, string, string, url.Values) (int, error) {
	return int(n), nil
}

func setupApp(role sessiondomain.Role) *fiber.App {
	app := fiber.New()
	h := NewDashboardHandler(service.NewDashboardService(staticCounter(5)))
	app.Get("/api/dashboard", func(c *fiber.Ctx) error {
		if role != "" {
			middleware.Set(c, &sessiondomain.Context{ID: "s", Token: "t", User: &sessiondomain.User{Role: role}})
		}
		return c.Next()
	}, h.GetDashboard)
	return app
}

func TestDashboardHandler_GetDashboard(t *testing.T) {
	t.Run("Customer", func(t *testing.T) {
		resp, err := setupApp(sessiondomain.RoleCustomer).Test(httptest.NewRequest(http.MethodGet, "/api/dashboard?lang=en", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var d service.Dashboard
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&d))
		assert.Equal(t, domain.ViewCustomer, d.View)
		require.NotEmpty(t, d.Widgets)
		assert.Equal(t, 5, *d.Widgets[0].Count)
	})

	t.Run("UnknownRole", func(t *testing.T) {
		resp, err := setupApp("UNKNOWN_ROLE").Test(httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var d service.Dashboard
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&d))
		assert.Equal(t, domain.ViewNoDashboard, d.View)
		assert.Contains(t, d.Actions, "sign_out")
	})

	t.Run("Anonymous", func(t *testing.T) {
		resp, err := setupApp("").Test(httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}
