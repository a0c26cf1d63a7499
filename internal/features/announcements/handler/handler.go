package handler

import (
	"errors"

	"cargo-portal/internal/core/logger"
	"cargo-portal/internal/core/web"
	"cargo-portal/internal/features/announcements/domain"
	"cargo-portal/internal/features/announcements/ports"
	sessiondomain "cargo-portal/internal/features/session/domain"
	"cargo-portal/internal/features/session/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AnnouncementHandler handles HTTP requests for portal announcements.
type AnnouncementHandler struct {
	service ports.AnnouncementService
}

// NewAnnouncementHandler creates a new AnnouncementHandler.
func NewAnnouncementHandler(service ports.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{service: service}
}

// PublishRequest represents the request body for publishing an announcement.
type PublishRequest struct {
	Title    string               `json:"title"`
	Body     string               `json:"body"`
	Level    domain.Level         `json:"level"`
	Audience []sessiondomain.Role `json:"audience"`
	Duration int                  `json:"duration"` // Seconds
}

// Publish handles POST /api/announcement.
// @Summary Publish an announcement
// @Description Replaces the portal-wide announcement.
// @Tags announcements
// @Accept json
// @Produce json
// @Param body body PublishRequest true "Announcement"
// @Success 200 {object} map[string]string
// @Failure 400 {object} web.ErrorResponse
// @Router /api/announcement [post]
func (h *AnnouncementHandler) Publish(c *fiber.Ctx) error {
	var req PublishRequest
	if err := c.BodyParser(&req); err != nil {
		return web.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	err := h.service.Publish(c.UserContext(), req.Title, req.Body, req.Level, req.Audience, req.Duration)
	switch {
	case errors.Is(err, domain.ErrInvalidLevel):
		return web.Error(c, fiber.StatusBadRequest, "Invalid level. Must be INFO, WARNING, or DANGER")
	case errors.Is(err, domain.ErrEmptyTitle):
		return web.Error(c, fiber.StatusBadRequest, "Title is required")
	case err != nil:
		logger.WithRayID(web.RayID(c)).Error("Failed to publish announcement", zap.Error(err))
		return web.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(fiber.Map{"message": "Announcement published"})
}

// Current handles GET /api/announcement.
// @Summary Get the announcement for the signed-in user
// @Tags announcements
// @Produce json
// @Success 200 {object} domain.Announcement
// @Success 204
// @Router /api/announcement [get]
func (h *AnnouncementHandler) Current(c *fiber.Ctx) error {
	a, err := h.service.Current(c.UserContext(), middleware.FromCtx(c).Role())
	if err != nil {
		logger.WithRayID(web.RayID(c)).Error("Failed to get announcement", zap.Error(err))
		return web.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if a == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(a)
}

// Remove handles DELETE /api/announcement.
// @Summary Remove the announcement
// @Tags announcements
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/announcement [delete]
func (h *AnnouncementHandler) Remove(c *fiber.Ctx) error {
	if err := h.service.Remove(c.UserContext()); err != nil {
		logger.WithRayID(web.RayID(c)).Error("Failed to remove announcement", zap.Error(err))
		return web.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(fiber.Map{"message": "Announcement removed"})
}
