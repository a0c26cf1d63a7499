package handler

import (
	"errors"
	"time"

	"cargo-portal/internal/core/web"
	"cargo-portal/internal/features/session/domain"
	"cargo-portal/internal/features/session/middleware"
	"cargo-portal/internal/features/session/ports"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles sign-in, "who am I" and sign-out.
type AuthHandler struct {
	service    ports.Service
	cookieName string
	secure     bool
}

// NewAuthHandler creates a new AuthHandler. secure marks the cookie HTTPS-only.
func NewAuthHandler(service ports.Service, cookieName string, secure bool) *AuthHandler {
	return &AuthHandler{
		service:    service,
		cookieName: cookieName,
		secure:     secure,
	}
}

// MeResponse is the signed-in user and when the session ends.
type MeResponse struct {
	User      *domain.User `json:"user"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

// Login handles POST /api/auth/login.
// @Summary Sign in
// @Description Exchanges phone and password for a session cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body domain.Credentials true "Phone and password"
// @Success 200 {object} MeResponse
// @Failure 400 {object} web.ErrorResponse
// @Failure 401 {object} web.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var creds domain.Credentials
	if err := c.BodyParser(&creds); err != nil {
		return web.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	sc, err := h.service.Login(c.UserContext(), creds)
	if err != nil {
		return web.Fail(c, "login", err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    sc.ID,
		Path:     "/",
		Expires:  sc.ExpiresAt,
		HTTPOnly: true,
		Secure:   h.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(MeResponse{User: sc.User, ExpiresAt: sc.ExpiresAt})
}

// Me handles GET /api/auth/me.
// @Summary Current user
// @Description Re-reads the user from the backend so role and verification changes show up.
// @Tags auth
// @Produce json
// @Success 200 {object} MeResponse
// @Failure 401 {object} web.ErrorResponse
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	sc, err := h.service.Refresh(c.UserContext(), middleware.FromCtx(c))
	if errors.Is(err, domain.ErrNotAuthenticated) {
		c.ClearCookie(h.cookieName)
		return c.Status(fiber.StatusUnauthorized).JSON(web.ErrorResponse{
			Message: "Your session has ended, please sign in again",
			RayID:   web.RayID(c),
			Action:  "sign_in",
		})
	}
	if err != nil {
		return web.Fail(c, "who am i", err)
	}
	return c.JSON(MeResponse{User: sc.User, ExpiresAt: sc.ExpiresAt})
}

// Logout handles POST /api/auth/logout.
// @Summary Sign out
// @Tags auth
// @Success 204
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.service.Logout(c.UserContext(), middleware.FromCtx(c)); err != nil {
		return web.Fail(c, "logout", err)
	}
	c.ClearCookie(h.cookieName)
	return c.SendStatus(fiber.StatusNoContent)
}
