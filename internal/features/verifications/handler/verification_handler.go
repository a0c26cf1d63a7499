package handler

import (
	"cargo-portal/internal/core/web"
	"cargo-portal/internal/features/session/middleware"
	"cargo-portal/internal/features/verifications/domain"
	"cargo-portal/internal/features/verifications/service"

	"github.com/gofiber/fiber/v2"
)

// VerificationHandler handles HTTP requests related to verification review.
type VerificationHandler struct {
	service *service.VerificationService
}

// NewVerificationHandler creates a new VerificationHandler.
func NewVerificationHandler(s *service.VerificationService) *VerificationHandler {
	return &VerificationHandler{service: s}
}

// ListVerifications handles GET /api/verifications.
// @Summary List verification requests
// @Tags verifications
// @Produce json
// @Param status query string false "Verification status"
// @Param type query string false "Entity type (USER, VEHICLE, COMPANY)"
// @Param page query int false "Page, from 1"
// @Success 200 {object} listview.State[domain.Verification]
// @Router /api/verifications [get]
func (h *VerificationHandler) ListVerifications(c *fiber.Ctx) error {
	f, err := web.ListFilters(c)
	if err != nil {
		return web.Error(c, fiber.StatusBadRequest, "Invalid filters")
	}
	state, err := h.service.List(c.UserContext(), middleware.FromCtx(c), f)
	return web.ListResult(c, "list verifications", state, err)
}

// ReviewVerification handles PATCH /api/verifications/:id/review.
// @Summary Approve or reject a verification request
// @Tags verifications
// @Accept json
// @Produce json
// @Param id path string true "Verification ID"
// @Param body body domain.Review true "Decision"
// @Success 200 {object} listview.State[domain.Verification]
// @Failure 400 {object} listview.State[domain.Verification]
// @Router /api/verifications/{id}/review [patch]
func (h *VerificationHandler) ReviewVerification(c *fiber.Ctx) error {
	var r domain.Review
	if err := c.BodyParser(&r); err != nil {
		return web.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	state, err := h.service.Review(c.UserContext(), middleware.FromCtx(c), c.Params("id"), r)
	return web.ListResult(c, "review verification", state, err)
}
