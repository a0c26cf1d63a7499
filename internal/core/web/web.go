package web

import (
	"errors"
	"strings"

	"cargo-portal/internal/core/listview"
	"cargo-portal/internal/core/logger"
	"cargo-portal/internal/core/notice"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// LangLocal is the Fiber local holding the request's label language.
const LangLocal = "lang"

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description shown to the user.
	Message string `json:"message"`
	// Kind classifies the failure for the toast renderer.
	Kind notice.Kind `json:"kind,omitempty"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
	// Action is set when the browser must offer a specific way out, e.g. "sign_out".
	Action string `json:"action,omitempty"`
	// Fields holds per-field validation messages.
	Fields map[string]string `json:"fields,omitempty"`
}

// RayID returns the request id set by the requestid middleware.
func RayID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return "unknown"
}

// Lang returns the label language: ?lang= wins, then the Fiber local set by
// the language middleware, then "mn".
func Lang(c *fiber.Ctx) string {
	if q := strings.ToLower(c.Query("lang")); q == "mn" || q == "en" {
		return q
	}
	if l, ok := c.Locals(LangLocal).(string); ok && l != "" {
		return l
	}
	return "mn"
}

// Error writes a plain error response.
func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{
		Message: message,
		RayID:   RayID(c),
	})
}

// Fail classifies err, logs it and answers with the matching status code.
// Backend messages reach the user verbatim.
func Fail(c *fiber.Ctx, op string, err error) error {
	n := notice.FromError(err)
	status := notice.HTTPStatus(err)

	log := logger.WithRayID(RayID(c))
	if status >= fiber.StatusInternalServerError {
		log.Error(op+" failed", zap.Error(err))
	} else {
		log.Debug(op+" rejected", zap.Int("status", status), zap.Error(err))
	}

	resp := ErrorResponse{
		Message: n.Message,
		Kind:    n.Kind,
		RayID:   RayID(c),
	}
	var vErr *notice.ValidationError
	if errors.As(err, &vErr) {
		resp.Fields = vErr.Fields
	}
	if status == fiber.StatusUnauthorized {
		resp.Action = "sign_in"
	}
	return c.Status(status).JSON(resp)
}

// ListFilters parses the list query parameters (status, search, type,
// companyId, page, limit). The strings are copied because views keep their
// filters for later refetches, long after the request buffer is reused.
func ListFilters(c *fiber.Ctx) (listview.Filters, error) {
	var f listview.Filters
	if err := c.QueryParser(&f); err != nil {
		return listview.Filters{}, err
	}
	f.Status = utils.CopyString(f.Status)
	f.Search = utils.CopyString(f.Search)
	f.Type = utils.CopyString(f.Type)
	f.CompanyID = utils.CopyString(f.CompanyID)
	return f.Normalize(), nil
}

// ListResult answers a list load or a list mutation. A superseded load gets
// 409 and the browser drops it; a failed one returns the unchanged state with
// its notice.
func ListResult[T any](c *fiber.Ctx, op string, state listview.State[T], err error) error {
	switch {
	case err == nil:
		return c.JSON(state)
	case errors.Is(err, listview.ErrStale):
		return Error(c, fiber.StatusConflict, "Superseded by a newer request")
	case errors.Is(err, listview.ErrClosed):
		return Error(c, fiber.StatusGone, "This screen was closed")
	}

	status := notice.HTTPStatus(err)
	if status >= fiber.StatusInternalServerError {
		logger.WithRayID(RayID(c)).Error(op+" failed", zap.Error(err))
	}
	return c.Status(status).JSON(state)
}
