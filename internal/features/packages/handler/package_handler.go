package handler

import (
	"cargo-portal/internal/core/web"
	"cargo-portal/internal/features/packages/domain"
	"cargo-portal/internal/features/packages/service"
	"cargo-portal/internal/features/session/middleware"

	"github.com/gofiber/fiber/v2"
)

// PackageHandler handles HTTP requests related to packages.
type PackageHandler struct {
	service *service.PackageService
}

// NewPackageHandler creates a new PackageHandler.
func NewPackageHandler(s *service.PackageService) *PackageHandler {
	return &PackageHandler{service: s}
}

// ListPackages handles GET /api/packages.
// @Summary List packages
// @Tags packages
// @Produce json
// @Param status query string false "Package status"
// @Param search query string false "Tracking number or code"
// @Param companyId query string false "Cargo company"
// @Param page query int false "Page, from 1"
// @Success 200 {object} listview.State[domain.Package]
// @Router /api/packages [get]
func (h *PackageHandler) ListPackages(c *fiber.Ctx) error {
	f, err := web.ListFilters(c)
	if err != nil {
		return web.Error(c, fiber.StatusBadRequest, "Invalid filters")
	}
	state, err := h.service.List(c.UserContext(), middleware.FromCtx(c), f)
	return web.ListResult(c, "list packages", state, err)
}

// GetPackage handles GET /api/packages/:id.
// @Summary Get package
// @Tags packages
// @Produce json
// @Param id path string true "Package ID"
// @Success 200 {object} domain.Detail
// @Failure 404 {object} web.ErrorResponse
// @Router /api/packages/{id} [get]
func (h *PackageHandler) GetPackage(c *fiber.Ctx) error {
	d, err := h.service.Get(c.UserContext(), middleware.FromCtx(c), c.Params("id"))
	if err != nil {
		return web.Fail(c, "get package", err)
	}
	return c.JSON(d)
}

// GetTimeline handles GET /api/packages/:id/timeline.
// @Summary Package timeline
// @Description Milestones marked completed, current or upcoming, plus the scan history.
// @Tags packages
// @Produce json
// @Param id path string true "Package ID"
// @Success 200 {object} service.Timeline
// @Router /api/packages/{id}/timeline [get]
func (h *PackageHandler) GetTimeline(c *fiber.Ctx) error {
	tl, err := h.service.Timeline(c.UserContext(), middleware.FromCtx(c), c.Params("id"))
	if err != nil {
		return web.Fail(c, "package timeline", err)
	}
	return c.JSON(tl)
}

// Measure handles PATCH /api/packages/:id/measure.
// @Summary Record weight and dimensions
// @Tags packages
// @Accept json
// @Produce json
// @Param id path string true "Package ID"
// @Param body body domain.Measurement true "Measurement"
// @Success 200 {object} listview.State[domain.Package]
// @Failure 400 {object} listview.State[domain.Package]
// @Router /api/packages/{id}/measure [patch]
func (h *PackageHandler) Measure(c *fiber.Ctx) error {
	var m domain.Measurement
	if err := c.BodyParser(&m); err != nil {
		return web.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	state, err := h.service.Measure(c.UserContext(), middleware.FromCtx(c), c.Params("id"), m)
	return web.ListResult(c, "measure package", state, err)
}
