package handler

import (
	"cargo-portal/internal/core/listview"
	"cargo-portal/internal/core/web"
	"cargo-portal/internal/features/batches/domain"
	"cargo-portal/internal/features/batches/service"
	"cargo-portal/internal/features/session/middleware"

	"github.com/gofiber/fiber/v2"
)

// BatchHandler handles HTTP requests related to batches.
type BatchHandler struct {
	service *service.BatchService
}

// NewBatchHandler creates a new BatchHandler.
func NewBatchHandler(s *service.BatchService) *BatchHandler {
	return &BatchHandler{service: s}
}

// CreateResponse carries the new batch and the refreshed list.
type CreateResponse struct {
	Batch *domain.Batch                `json:"batch"`
	List  listview.State[domain.Batch] `json:"list"`
}

// ListBatches handles GET /api/batches.
// @Summary List batches
// @Tags batches
// @Produce json
// @Param status query string false "Batch status"
// @Param search query string false "Batch code"
// @Param page query int false "Page, from 1"
// @Success 200 {object} listview.State[domain.Batch]
// @Router /api/batches [get]
func (h *BatchHandler) ListBatches(c *fiber.Ctx) error {
	f, err := web.ListFilters(c)
	if err != nil {
		return web.Error(c, fiber.StatusBadRequest, "Invalid filters")
	}
	state, err := h.service.List(c.UserContext(), middleware.FromCtx(c), f)
	return web.ListResult(c, "list batches", state, err)
}

// GetBatch handles GET /api/batches/:id.
// @Summary Get batch
// @Tags batches
// @Produce json
// @Param id path string true "Batch ID"
// @Success 200 {object} domain.Detail
// @Router /api/batches/{id} [get]
func (h *BatchHandler) GetBatch(c *fiber.Ctx) error {
	d, err := h.service.Get(c.UserContext(), middleware.FromCtx(c), c.Params("id"))
	if err != nil {
		return web.Fail(c, "get batch", err)
	}
	return c.JSON(d)
}

// CreateBatch handles POST /api/batches.
// @Summary Create batch
// @Tags batches
// @Accept json
// @Produce json
// @Param body body domain.NewBatch true "Packages to load"
// @Success 201 {object} CreateResponse
// @Failure 400 {object} listview.State[domain.Batch]
// @Router /api/batches [post]
func (h *BatchHandler) CreateBatch(c *fiber.Ctx) error {
	var nb domain.NewBatch
	if err := c.BodyParser(&nb); err != nil {
		return web.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	b, state, err := h.service.Create(c.UserContext(), middleware.FromCtx(c), nb)
	if err != nil {
		return web.ListResult(c, "create batch", state, err)
	}
	return c.Status(fiber.StatusCreated).JSON(CreateResponse{Batch: b, List: state})
}

// Transition returns the handler for PATCH /api/batches/:id/<action>.
// @Summary Close, depart or arrive a batch
// @Tags batches
// @Produce json
// @Param id path string true "Batch ID"
// @Success 200 {object} listview.State[domain.Batch]
// @Router /api/batches/{id}/close [patch]
// @Router /api/batches/{id}/depart [patch]
// @Router /api/batches/{id}/arrive [patch]
func (h *BatchHandler) Transition(action domain.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		state, err := h.service.Transition(c.UserContext(), middleware.FromCtx(c), c.Params("id"), action)
		return web.ListResult(c, string(action)+" batch", state, err)
	}
}

// AvailablePackages handles GET /api/batches/available-packages.
// @Summary Packages not yet on a batch
// @Tags batches
// @Produce json
// @Param status query string false "Package status, SHELVED_CHINA by default"
// @Param search query string false "Tracking number"
// @Param page query int false "Page, from 1"
// @Success 200 {object} service.AvailablePackages
// @Router /api/batches/available-packages [get]
func (h *BatchHandler) AvailablePackages(c *fiber.Ctx) error {
	f, err := web.ListFilters(c)
	if err != nil {
		return web.Error(c, fiber.StatusBadRequest, "Invalid filters")
	}
	out, err := h.service.AvailablePackages(c.UserContext(), middleware.FromCtx(c), f)
	if err != nil {
		return web.Fail(c, "available packages", err)
	}
	return c.JSON(out)
}
