package handler

import (
	"cargo-portal/internal/core/web"
	"cargo-portal/internal/features/returns/domain"
	"cargo-portal/internal/features/returns/service"
	"cargo-portal/internal/features/session/middleware"

	"github.com/gofiber/fiber/v2"
)

// ReturnHandler handles HTTP requests related to return requests.
type ReturnHandler struct {
	service *service.ReturnService
}

// NewReturnHandler creates a new ReturnHandler.
func NewReturnHandler(s *service.ReturnService) *ReturnHandler {
	return &ReturnHandler{service: s}
}

// ListReturns handles GET /api/returns.
// @Summary List return requests
// @Tags returns
// @Produce json
// @Param status query string false "Return status"
// @Param type query string false "Return type"
// @Param page query int false "Page, from 1"
// @Success 200 {object} listview.State[domain.Return]
// @Router /api/returns [get]
func (h *ReturnHandler) ListReturns(c *fiber.Ctx) error {
	f, err := web.ListFilters(c)
	if err != nil {
		return web.Error(c, fiber.StatusBadRequest, "Invalid filters")
	}
	state, err := h.service.List(c.UserContext(), middleware.FromCtx(c), f)
	return web.ListResult(c, "list returns", state, err)
}

// CreateReturn handles POST /api/returns.
// @Summary File a return request
// @Tags returns
// @Accept json
// @Produce json
// @Param body body domain.NewReturn true "Return request"
// @Success 200 {object} listview.State[domain.Return]
// @Failure 400 {object} listview.State[domain.Return]
// @Router /api/returns [post]
func (h *ReturnHandler) CreateReturn(c *fiber.Ctx) error {
	var nr domain.NewReturn
	if err := c.BodyParser(&nr); err != nil {
		return web.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	state, err := h.service.Create(c.UserContext(), middleware.FromCtx(c), nr)
	return web.ListResult(c, "create return", state, err)
}

// ReviewReturn handles POST /api/returns/:id/review.
// @Summary Approve or reject a return request
// @Tags returns
// @Accept json
// @Produce json
// @Param id path string true "Return ID"
// @Param body body domain.Review true "Decision"
// @Success 200 {object} listview.State[domain.Return]
// @Failure 400 {object} listview.State[domain.Return]
// @Router /api/returns/{id}/review [post]
func (h *ReturnHandler) ReviewReturn(c *fiber.Ctx) error {
	var r domain.Review
	if err := c.BodyParser(&r); err != nil {
		return web.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	state, err := h.service.Review(c.UserContext(), middleware.FromCtx(c), c.Params("id"), r)
	return web.ListResult(c, "review return", state, err)
}
