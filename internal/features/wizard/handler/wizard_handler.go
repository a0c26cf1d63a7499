package handler

import (
	"errors"

	"cargo-portal/internal/core/logger"
	"cargo-portal/internal/core/notice"
	"cargo-portal/internal/core/web"
	"cargo-portal/internal/features/session/middleware"
	"cargo-portal/internal/features/wizard/domain"
	"cargo-portal/internal/features/wizard/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// WizardHandler handles HTTP requests for multi-step forms.
type WizardHandler struct {
	service        *service.WizardService
	maxUploadBytes int64
}

// NewWizardHandler creates a new WizardHandler. Files larger than
// maxUploadMB are refused before reaching the backend.
func NewWizardHandler(s *service.WizardService, maxUploadMB int) *WizardHandler {
	return &WizardHandler{
		service:        s,
		maxUploadBytes: int64(maxUploadMB) << 20,
	}
}

// ValuesRequest carries the answers for the current step.
type ValuesRequest struct {
	Values domain.Values `json:"values"`
}

// Start handles POST /api/wizards/:kind.
// @Summary Start a wizard
// @Tags wizards
// @Produce json
// @Param kind path string true "order, verification or vehicle"
// @Success 201 {object} service.Result
// @Failure 403 {object} web.ErrorResponse
// @Failure 404 {object} web.ErrorResponse
// @Router /api/wizards/{kind} [post]
func (h *WizardHandler) Start(c *fiber.Ctx) error {
	res, err := h.service.Start(middleware.FromCtx(c), domain.Kind(c.Params("kind")))
	if err != nil {
		return h.respond(c, "start wizard", res, err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// Get handles GET /api/wizards/:id.
// @Summary Get wizard state
// @Tags wizards
// @Produce json
// @Param id path string true "Wizard ID"
// @Success 200 {object} service.Result
// @Failure 404 {object} web.ErrorResponse
// @Router /api/wizards/{id} [get]
func (h *WizardHandler) Get(c *fiber.Ctx) error {
	res, err := h.service.Get(middleware.FromCtx(c), c.Params("id"))
	return h.respond(c, "get wizard", res, err)
}

// Next handles POST /api/wizards/:id/next.
// @Summary Validate the current step and advance
// @Tags wizards
// @Accept json
// @Produce json
// @Param id path string true "Wizard ID"
// @Param body body ValuesRequest true "Step values"
// @Success 200 {object} service.Result
// @Failure 400 {object} service.Result
// @Router /api/wizards/{id}/next [post]
func (h *WizardHandler) Next(c *fiber.Ctx) error {
	var req ValuesRequest
	if err := c.BodyParser(&req); err != nil {
		return web.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	res, err := h.service.Next(middleware.FromCtx(c), c.Params("id"), req.Values)
	return h.respond(c, "wizard next", res, err)
}

// Back handles POST /api/wizards/:id/back.
// @Summary Go back one step
// @Tags wizards
// @Produce json
// @Param id path string true "Wizard ID"
// @Success 200 {object} service.Result
// @Router /api/wizards/{id}/back [post]
func (h *WizardHandler) Back(c *fiber.Ctx) error {
	res, err := h.service.Back(middleware.FromCtx(c), c.Params("id"))
	return h.respond(c, "wizard back", res, err)
}

// Upload handles POST /api/wizards/:id/uploads/:field.
// @Summary Upload a file into a wizard field
// @Description A result is dropped when a newer upload for the same field started meanwhile.
// @Tags wizards
// @Accept mpfd
// @Produce json
// @Param id path string true "Wizard ID"
// @Param field path string true "Upload field"
// @Param file formData file true "File"
// @Success 200 {object} service.Result
// @Failure 413 {object} web.ErrorResponse
// @Router /api/wizards/{id}/uploads/{field} [post]
func (h *WizardHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return web.Error(c, fiber.StatusBadRequest, "A file is required")
	}
	if fh.Size > h.maxUploadBytes {
		return web.Error(c, fiber.StatusRequestEntityTooLarge, "The file is too large")
	}

	f, err := fh.Open()
	if err != nil {
		return web.Error(c, fiber.StatusBadRequest, "Could not read the file")
	}
	defer f.Close()

	// Params are only valid until the handler returns; the upload outlives them in the wizard.
	id, field := utils.CopyString(c.Params("id")), utils.CopyString(c.Params("field"))
	res, err := h.service.Upload(c.UserContext(), middleware.FromCtx(c), id, field, utils.CopyString(fh.Filename), f)
	return h.respond(c, "wizard upload", res, err)
}

// Submit handles POST /api/wizards/:id/submit.
// @Summary Submit a wizard
// @Tags wizards
// @Accept json
// @Produce json
// @Param id path string true "Wizard ID"
// @Param body body ValuesRequest false "Last step values"
// @Success 200 {object} service.Result
// @Failure 400 {object} service.Result
// @Failure 409 {object} service.Result
// @Router /api/wizards/{id}/submit [post]
func (h *WizardHandler) Submit(c *fiber.Ctx) error {
	var req ValuesRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return web.Error(c, fiber.StatusBadRequest, "Invalid request body")
		}
	}
	res, err := h.service.Submit(c.UserContext(), middleware.FromCtx(c), c.Params("id"), req.Values)
	return h.respond(c, "wizard submit", res, err)
}

func (h *WizardHandler) respond(c *fiber.Ctx, op string, res service.Result, err error) error {
	var vErr *notice.ValidationError
	switch {
	case err == nil:
		return c.JSON(res)
	case errors.Is(err, domain.ErrNotFound):
		return web.Error(c, fiber.StatusNotFound, "This form has expired, please start again")
	case errors.Is(err, domain.ErrUnknownKind):
		return web.Error(c, fiber.StatusNotFound, "Unknown form")
	case errors.Is(err, service.ErrForbidden):
		return web.Error(c, fiber.StatusForbidden, "Your account cannot use this form")
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(res)
	case errors.Is(err, domain.ErrLastStep),
		errors.Is(err, domain.ErrNotLastStep),
		errors.Is(err, domain.ErrSubmitted),
		errors.Is(err, domain.ErrSubmitting),
		errors.Is(err, domain.ErrNotUploadField):
		return c.Status(fiber.StatusConflict).JSON(res)
	}

	status := notice.HTTPStatus(err)
	if status >= fiber.StatusInternalServerError {
		logger.WithRayID(web.RayID(c)).Error(op+" failed", zap.Error(err))
	}
	return c.Status(status).JSON(res)
}
