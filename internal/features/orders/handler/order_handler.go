package handler

import (
	"cargo-portal/internal/core/listview"
	"cargo-portal/internal/core/web"
	"cargo-portal/internal/features/orders/domain"
	"cargo-portal/internal/features/orders/service"
	"cargo-portal/internal/features/session/middleware"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests related to orders.
type OrderHandler struct {
	service *service.OrderService
}

// NewOrderHandler creates a new instance of OrderHandler.
func NewOrderHandler(s *service.OrderService) *OrderHandler {
	return &OrderHandler{
		service: s,
	}
}

// HoldRequest toggles the hold flag.
type HoldRequest struct {
	OnHold bool `json:"isOnHold"`
}

// QCPayResponse carries the payment to show and the refreshed list.
type QCPayResponse struct {
	Payment *domain.QCPayment            `json:"payment"`
	List    listview.State[domain.Order] `json:"list"`
}

// ListOrders handles GET /api/orders.
// @Summary List orders
// @Description Loads one page of orders. Every call replaces the previous result; a superseded call answers 409.
// @Tags orders
// @Produce json
// @Param status query string false "Order status"
// @Param search query string false "Free-text search"
// @Param page query int false "Page, from 1"
// @Param limit query int false "Page size"
// @Success 200 {object} listview.State[domain.Order]
// @Failure 409 {object} web.ErrorResponse
// @Router /api/orders [get]
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	f, err := web.ListFilters(c)
	if err != nil {
		return web.Error(c, fiber.StatusBadRequest, "Invalid filters")
	}
	state, err := h.service.List(c.UserContext(), middleware.FromCtx(c), f)
	return web.ListResult(c, "list orders", state, err)
}

// GetOrder handles GET /api/orders/:id.
// @Summary Get order
// @Description Returns an order with its tracking timeline.
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} domain.Detail
// @Failure 404 {object} web.ErrorResponse
// @Router /api/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	d, err := h.service.Get(c.UserContext(), middleware.FromCtx(c), c.Params("id"))
	if err != nil {
		return web.Fail(c, "get order", err)
	}
	return c.JSON(d)
}

// SetHold handles PATCH /api/orders/:id/hold.
// @Summary Hold or release an order
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param body body HoldRequest true "Hold flag"
// @Success 200 {object} listview.State[domain.Order]
// @Router /api/orders/{id}/hold [patch]
func (h *OrderHandler) SetHold(c *fiber.Ctx) error {
	var req HoldRequest
	if err := c.BodyParser(&req); err != nil {
		return web.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	state, err := h.service.SetHold(c.UserContext(), middleware.FromCtx(c), c.Params("id"), req.OnHold)
	return web.ListResult(c, "hold order", state, err)
}

// RequestQC handles PATCH /api/orders/:id/qc-request.
// @Summary Request a quality-control inspection
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param body body service.QCRequest true "Inspection notes"
// @Success 200 {object} listview.State[domain.Order]
// @Router /api/orders/{id}/qc-request [patch]
func (h *OrderHandler) RequestQC(c *fiber.Ctx) error {
	var req service.QCRequest
	if err := c.BodyParser(&req); err != nil {
		return web.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	state, err := h.service.RequestQC(c.UserContext(), middleware.FromCtx(c), c.Params("id"), req)
	return web.ListResult(c, "request qc", state, err)
}

// PayQC handles POST /api/orders/:id/qc-pay.
// @Summary Pay for a quality-control inspection
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} QCPayResponse
// @Router /api/orders/{id}/qc-pay [post]
func (h *OrderHandler) PayQC(c *fiber.Ctx) error {
	payment, state, err := h.service.PayQC(c.UserContext(), middleware.FromCtx(c), c.Params("id"))
	if err != nil {
		return web.ListResult(c, "pay qc", state, err)
	}
	return c.JSON(QCPayResponse{Payment: payment, List: state})
}
