package handler

import (
	"cargo-portal/internal/core/web"
	"cargo-portal/internal/features/status/domain"

	"github.com/gofiber/fiber/v2"
)

// StatusHandler serves the status vocabulary and timelines.
type StatusHandler struct{}

// NewStatusHandler creates a new StatusHandler.
func NewStatusHandler() *StatusHandler {
	return &StatusHandler{}
}

// BadgeResponse is a badge with its label resolved to the request language.
type BadgeResponse struct {
	domain.Badge
	Text string `json:"text"`
}

// GetBadge godoc
// @Summary Describe a status value
// @Description Returns the label and color of a status for an entity kind. Unknown values come back verbatim with a neutral color.
// @Tags status
// @Produce json
// @Param kind path string true "Entity kind (order, package, batch, return, verification, invoice, listing, qc)"
// @Param raw path string true "Status value"
// @Param lang query string false "Label language (mn, en)"
// @Success 200 {object} BadgeResponse
// @Router /api/status/{kind}/{raw} [get]
func (h *StatusHandler) GetBadge(c *fiber.Ctx) error {
	b := domain.Describe(domain.Kind(c.Params("kind")), c.Params("raw"))
	return c.JSON(BadgeResponse{Badge: b, Text: b.Text(web.Lang(c))})
}

// ListValues godoc
// @Summary List the known statuses of an entity kind
// @Tags status
// @Produce json
// @Param kind path string true "Entity kind"
// @Param lang query string false "Label language (mn, en)"
// @Success 200 {array} BadgeResponse
// @Failure 404 {object} web.ErrorResponse
// @Router /api/status/{kind} [get]
func (h *StatusHandler) ListValues(c *fiber.Ctx) error {
	kind := domain.Kind(c.Params("kind"))
	values := domain.Values(kind)
	if len(values) == 0 {
		return web.Error(c, fiber.StatusNotFound, "unknown status kind")
	}

	lang := web.Lang(c)
	out := make([]BadgeResponse, len(values))
	for i, v := range values {
		b := domain.Describe(kind, v)
		out[i] = BadgeResponse{Badge: b, Text: b.Text(lang)}
	}
	return c.JSON(out)
}

// GetTimeline godoc
// @Summary Project a package status onto the tracking timeline
// @Tags status
// @Produce json
// @Param status query string true "Package status"
// @Success 200 {object} domain.Progress
// @Router /api/timeline [get]
func (h *StatusHandler) GetTimeline(c *fiber.Ctx) error {
	return c.JSON(domain.Track(domain.PackageStatus(c.Query("status"))))
}
