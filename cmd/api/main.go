package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cargo-portal/internal/core/backend"
	"cargo-portal/internal/core/cache"
	"cargo-portal/internal/core/config"
	"cargo-portal/internal/core/listview"
	"cargo-portal/internal/core/logger"
	"cargo-portal/internal/core/server"
	announcementadapter "cargo-portal/internal/features/announcements/adapters"
	announcementhandler "cargo-portal/internal/features/announcements/handler"
	announcementservice "cargo-portal/internal/features/announcements/service"
	batchadapter "cargo-portal/internal/features/batches/adapters"
	batchdomain "cargo-portal/internal/features/batches/domain"
	batchhandler "cargo-portal/internal/features/batches/handler"
	batchservice "cargo-portal/internal/features/batches/service"
	catalogadapter "cargo-portal/internal/features/catalog/adapters"
	cataloghandler "cargo-portal/internal/features/catalog/handler"
	catalogservice "cargo-portal/internal/features/catalog/service"
	dashboardadapter "cargo-portal/internal/features/dashboard/adapters"
	dashboardhandler "cargo-portal/internal/features/dashboard/handler"
	dashboardservice "cargo-portal/internal/features/dashboard/service"
	orderadapter "cargo-portal/internal/features/orders/adapters"
	orderhandler "cargo-portal/internal/features/orders/handler"
	orderservice "cargo-portal/internal/features/orders/service"
	packageadapter "cargo-portal/internal/features/packages/adapters"
	packagehandler "cargo-portal/internal/features/packages/handler"
	packageservice "cargo-portal/internal/features/packages/service"
	returnadapter "cargo-portal/internal/features/returns/adapters"
	returnhandler "cargo-portal/internal/features/returns/handler"
	returnservice "cargo-portal/internal/features/returns/service"
	sessionadapter "cargo-portal/internal/features/session/adapters"
	sessiondomain "cargo-portal/internal/features/session/domain"
	sessionhandler "cargo-portal/internal/features/session/handler"
	"cargo-portal/internal/features/session/middleware"
	sessionservice "cargo-portal/internal/features/session/service"
	statushandler "cargo-portal/internal/features/status/handler"
	verificationadapter "cargo-portal/internal/features/verifications/adapters"
	verificationhandler "cargo-portal/internal/features/verifications/handler"
	verificationservice "cargo-portal/internal/features/verifications/service"
	wizardadapter "cargo-portal/internal/features/wizard/adapters"
	wizarddomain "cargo-portal/internal/features/wizard/domain"
	wizardhandler "cargo-portal/internal/features/wizard/handler"
	wizardservice "cargo-portal/internal/features/wizard/service"

	"go.uber.org/zap"
)

const (
	settingsCacheTTL = 5 * time.Minute
	sweepInterval    = time.Minute
	// Views left untouched this long are closed even if the session lives on.
	viewIdleTimeout = 30 * time.Minute
)

// @title Cargo Portal API
// @version 1.0
// @description Backend-for-frontend of the cargo logistics portal. It fronts the cargo REST backend with sessions, list views, form wizards and localized status badges.
// @contact.name API Support
// @contact.email support@cargo.mn
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL, cfg.Redis.Prefix)
	if err != nil {
		l.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisCache.Close()

	// The portal can start while the backend is down; every call reports its own failure.
	client := backend.NewClient(cfg.Backend)
	if err := client.HealthCheck(ctx); err != nil {
		l.Warn("Backend Health Check Failed", zap.Error(err))
	} else {
		l.Info("Backend connection verified")
	}

	views := listview.NewRegistry()

	// Wizards
	wizardStore := wizardadapter.NewMemoryStore()
	wizardSvc := wizardservice.NewWizardService(wizardStore, client, wizardadapter.NewBackendSubmitter(client), wizarddomain.Definitions())
	wizardHdl := wizardhandler.NewWizardHandler(wizardSvc, cfg.Wizard.UploadMaxMB)

	// Sessions
	sessionSvc := sessionservice.NewSessionService(
		sessionadapter.NewRedisSessionRepository(redisCache),
		sessionadapter.NewBackendAuthenticator(client),
		cfg.Session.TTL(),
	)
	sessionSvc.OnClose(views.CloseSession)
	sessionSvc.OnClose(wizardSvc.CloseSession)
	authHdl := sessionhandler.NewAuthHandler(sessionSvc, cfg.Session.CookieName, cfg.Environment == "production")

	// Entity features
	orderHdl := orderhandler.NewOrderHandler(orderservice.NewOrderService(orderadapter.NewBackendOrderRepository(client), views))
	packageHdl := packagehandler.NewPackageHandler(packageservice.NewPackageService(packageadapter.NewBackendPackageRepository(client), views))
	batchHdl := batchhandler.NewBatchHandler(batchservice.NewBatchService(batchadapter.NewBackendBatchRepository(client), views))
	returnHdl := returnhandler.NewReturnHandler(returnservice.NewReturnService(returnadapter.NewBackendReturnRepository(client), views))
	verificationHdl := verificationhandler.NewVerificationHandler(verificationservice.NewVerificationService(verificationadapter.NewBackendVerificationRepository(client), views))

	catalogRepo := catalogadapter.NewCachedRepository(catalogadapter.NewBackendRepository(client), redisCache, settingsCacheTTL)
	catalogHdl := cataloghandler.NewCatalogHandler(catalogservice.NewCatalogService(catalogRepo, views))

	dashboardHdl := dashboardhandler.NewDashboardHandler(dashboardservice.NewDashboardService(dashboardadapter.NewBackendCounter(client)))
	statusHdl := statushandler.NewStatusHandler()
	announcementHdl := announcementhandler.NewAnnouncementHandler(
		announcementservice.NewAnnouncementService(announcementadapter.NewRedisAnnouncementRepository(redisCache)),
	)

	srv := server.New(cfg)
	srv.AddCheck("redis", redisCache.Ping)
	srv.AddCheck("backend", client.HealthCheck)

	// Register Routes
	api := srv.App.Group("/api")

	api.Post("/auth/login", authHdl.Login)
	api.Get("/settings/public", catalogHdl.PublicSettings)
	api.Get("/settings/quote", catalogHdl.Quote)
	api.Get("/status/:kind", statusHdl.ListValues)
	api.Get("/status/:kind/:raw", statusHdl.GetBadge)
	api.Get("/timeline", statusHdl.GetTimeline)

	authed := api.Group("", middleware.RequireSession(sessionSvc, cfg.Session.CookieName))
	staff := middleware.RequireRoles(sessiondomain.Staff...)
	admins := middleware.RequireRoles(sessiondomain.Admins...)

	authed.Get("/auth/me", authHdl.Me)
	authed.Post("/auth/logout", authHdl.Logout)
	authed.Get("/dashboard", dashboardHdl.GetDashboard)

	authed.Get("/announcement", announcementHdl.Current)
	authed.Post("/announcement", admins, announcementHdl.Publish)
	authed.Delete("/announcement", admins, announcementHdl.Remove)

	authed.Get("/orders", orderHdl.ListOrders)
	authed.Get("/orders/:id", orderHdl.GetOrder)
	authed.Patch("/orders/:id/hold", staff, orderHdl.SetHold)
	authed.Patch("/orders/:id/qc-request", orderHdl.RequestQC)
	authed.Post("/orders/:id/qc-pay", orderHdl.PayQC)

	authed.Get("/packages", packageHdl.ListPackages)
	authed.Get("/packages/:id", packageHdl.GetPackage)
	authed.Get("/packages/:id/timeline", packageHdl.GetTimeline)
	authed.Patch("/packages/:id/measure", staff, packageHdl.Measure)

	batches := authed.Group("/batches", staff)
	batches.Get("/", batchHdl.ListBatches)
	batches.Post("/", batchHdl.CreateBatch)
	batches.Get("/available-packages", batchHdl.AvailablePackages)
	batches.Get("/:id", batchHdl.GetBatch)
	batches.Patch("/:id/close", batchHdl.Transition(batchdomain.ActionClose))
	batches.Patch("/:id/depart", batchHdl.Transition(batchdomain.ActionDepart))
	batches.Patch("/:id/arrive", batchHdl.Transition(batchdomain.ActionArrive))

	authed.Get("/returns", returnHdl.ListReturns)
	authed.Post("/returns", returnHdl.CreateReturn)
	authed.Post("/returns/:id/review", admins, returnHdl.ReviewReturn)

	authed.Get("/verifications", admins, verificationHdl.ListVerifications)
	authed.Patch("/verifications/:id/review", admins, verificationHdl.ReviewVerification)

	authed.Get("/users", admins, catalogHdl.ListUsers)
	authed.Patch("/users/:id/active", admins, catalogHdl.SetActive)
	authed.Get("/invoices", catalogHdl.ListInvoices)
	authed.Post("/invoices/:id/pay", catalogHdl.PayInvoice)
	authed.Get("/marketplace", catalogHdl.ListListings)
	authed.Post("/marketplace", catalogHdl.CreateListing)
	authed.Get("/integration/keys", catalogHdl.ListKeys)
	authed.Post("/integration/keys", catalogHdl.CreateKey)
	authed.Delete("/integration/keys/:id", catalogHdl.RevokeKey)
	authed.Post("/companies/:id/join", catalogHdl.JoinCompany)
	authed.Get("/payment-accounts", catalogHdl.PaymentAccounts)
	authed.Get("/delivery-points", catalogHdl.DeliveryPoints)

	authed.Post("/wizards/:kind", wizardHdl.Start)
	authed.Get("/wizards/:id", wizardHdl.Get)
	authed.Post("/wizards/:id/next", wizardHdl.Next)
	authed.Post("/wizards/:id/back", wizardHdl.Back)
	authed.Post("/wizards/:id/uploads/:field", wizardHdl.Upload)
	authed.Post("/wizards/:id/submit", wizardHdl.Submit)

	go sweep(ctx, views, wizardStore, cfg.Wizard.TTL())

	go func() {
		<-ctx.Done()
		l.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			l.Error("Graceful shutdown failed", zap.Error(err))
		}
	}()

	if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}

// sweep closes idle list views and expired wizards until ctx is done.
func sweep(ctx context.Context, views *listview.Registry, wizards *wizardadapter.MemoryStore, wizardTTL time.Duration) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	l := logger.Named("sweeper")
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			closedViews := views.Sweep(viewIdleTimeout)
			expired := wizards.Sweep(wizardTTL)
			if closedViews > 0 || expired > 0 {
				l.Debug("Swept idle state", zap.Int("views", closedViews), zap.Int("wizards", expired))
			}
		}
	}
}
