package middleware

import (
	"cargo-portal/internal/core/notice"
	"cargo-portal/internal/core/web"
	"cargo-portal/internal/features/session/domain"
	"cargo-portal/internal/features/session/ports"

	"github.com/gofiber/fiber/v2"
)

// sessionLocal is the Fiber local holding the resumed *domain.Context.
const sessionLocal = "session"

// RequireSession resumes the session named by the cookie and rejects
// anonymous requests with 401.
func RequireSession(svc ports.Service, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sc, err := svc.Resume(c.UserContext(), c.Cookies(cookieName))
		if err != nil {
			c.ClearCookie(cookieName)
			return c.Status(fiber.StatusUnauthorized).JSON(web.ErrorResponse{
				Message: "Please sign in",
				Kind:    notice.KindAuth,
				RayID:   web.RayID(c),
				Action:  "sign_in",
			})
		}
		Set(c, sc)
		return c.Next()
	}
}

// RequireRoles lets through only users holding one of roles. Everybody else
// gets 403 and is offered a way to sign out.
func RequireRoles(roles ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sc := FromCtx(c)
		if sc == nil || !sc.HasRole(roles...) {
			return c.Status(fiber.StatusForbidden).JSON(web.ErrorResponse{
				Message: "Your account cannot open this page",
				Kind:    notice.KindAuth,
				RayID:   web.RayID(c),
				Action:  "sign_out",
			})
		}
		return c.Next()
	}
}

// FromCtx returns the session resumed by RequireSession, or nil.
func FromCtx(c *fiber.Ctx) *domain.Context {
	sc, _ := c.Locals(sessionLocal).(*domain.Context)
	return sc
}

// Set attaches sc to the request.
func Set(c *fiber.Ctx, sc *domain.Context) {
	c.Locals(sessionLocal, sc)
}
