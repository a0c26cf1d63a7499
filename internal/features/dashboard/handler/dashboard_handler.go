package handler

import (
	"cargo-portal/internal/core/web"
	"cargo-portal/internal/features/dashboard/service"
	"cargo-portal/internal/features/session/middleware"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler serves the role-routed dashboard.
type DashboardHandler struct {
	service *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(service *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetDashboard handles GET /api/dashboard.
// @Summary Dashboard for the signed-in user
// @Description Picks the dashboard for the user's role and fills in its counters. Roles without a dashboard get the no_dashboard view with a sign_out action.
// @Tags dashboard
// @Produce json
// @Param lang query string false "Label language (mn, en)"
// @Success 200 {object} service.Dashboard
// @Failure 401 {object} web.ErrorResponse
// @Router /api/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	sc := middleware.FromCtx(c)
	if sc == nil {
		return web.Error(c, fiber.StatusUnauthorized, "Please sign in")
	}
	return c.JSON(h.service.Build(c.UserContext(), sc, web.Lang(c)))
}
