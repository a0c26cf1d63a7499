package server

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cargo-portal/internal/core/config"
	"cargo-portal/internal/core/httpclient"
	"cargo-portal/internal/core/logger"
	"cargo-portal/internal/core/web"

	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	_ "cargo-portal/docs/swagger"
)

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

// Server holds the Fiber application and configuration.
type Server struct {
	// App is the main Fiber application instance.
	App *fiber.App
	// cfg holds the application configuration.
	cfg    *config.AppConfig
	checks map[string]HealthCheck
}

// New creates a new Server instance with configured middleware.
func New(cfg *config.AppConfig) *Server {
	s := &Server{
		cfg:    cfg,
		checks: make(map[string]HealthCheck),
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               "cargo-portal",
		// Uploads stream through the portal; leave room for the multipart envelope.
		BodyLimit:    (cfg.Wizard.UploadMaxMB + 1) << 20,
		ErrorHandler: errorHandler,
	})

	app.Use(requestid.New(requestid.Config{
		Header: httpclient.RayIDHeader,
	}))

	// Backend calls made on behalf of this request carry the same id.
	app.Use(func(c *fiber.Ctx) error {
		c.SetUserContext(logger.NewContext(c.UserContext(), web.RayID(c)))
		return c.Next()
	})

	app.Use(fiberzap.New(fiberzap.Config{
		Logger: logger.Get(),
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/healthz" || c.Path() == "/metrics"
		},
	}))

	app.Use(language(cfg.DefaultLang))

	app.Get("/healthz", s.health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/swagger/*", swagger.HandlerDefault)

	s.App = app
	return s
}

// AddCheck registers a dependency checked by /healthz.
func (s *Server) AddCheck(name string, check HealthCheck) {
	s.checks[name] = check
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%d", s.cfg.ServerPort)
	logger.Get().Info("Starting server", zap.String("address", addr))
	return s.App.Listen(addr)
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.App.ShutdownWithContext(ctx)
}

func (s *Server) health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
	defer cancel()

	status := fiber.StatusOK
	result := make(map[string]string, len(s.checks))
	for name, check := range s.checks {
		if err := check(ctx); err != nil {
			logger.WithRayID(web.RayID(c)).Warn("Health check failed", zap.String("check", name), zap.Error(err))
			result[name] = "down"
			status = fiber.StatusServiceUnavailable
			continue
		}
		result[name] = "ok"
	}

	return c.Status(status).JSON(fiber.Map{"checks": result})
}

// language picks the label language from Accept-Language, falling back to def.
func language(def string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lang := def
		// AcceptsLanguages answers the first offer when the header is absent.
		if c.Get(fiber.HeaderAcceptLanguage) != "" {
			if l := strings.ToLower(c.AcceptsLanguages("mn", "en")); l != "" {
				lang = l
			}
		}
		c.Locals(web.LangLocal, lang)
		return c.Next()
	}
}

func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return web.Error(c, fe.Code, fe.Message)
	}

	logger.WithRayID(web.RayID(c)).Error("Unhandled error", zap.Error(err))
	return web.Error(c, fiber.StatusInternalServerError, "Internal server error")
}
