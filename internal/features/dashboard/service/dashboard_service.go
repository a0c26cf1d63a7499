package service

import (
	"context"

	"cargo-portal/internal/core/logger"
	"cargo-portal/internal/core/metrics"
	"cargo-portal/internal/core/notice"
	"cargo-portal/internal/features/dashboard/domain"
	"cargo-portal/internal/features/dashboard/ports"
	sessiondomain "cargo-portal/internal/features/session/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentWidgets bounds the backend calls one dashboard makes at once.
const maxConcurrentWidgets = 4

// WidgetResult is a counter tile with its label resolved. Count is nil
// when the widget failed; Notice then says why.
type WidgetResult struct {
	Key    string         `json:"key"`
	Label  string         `json:"label"`
	Link   string         `json:"link"`
	Count  *int           `json:"count"`
	Notice *notice.Notice `json:"notice,omitempty"`
}

// Dashboard is the routed view with its tiles filled in.
type Dashboard struct {
	View    domain.ViewName     `json:"view"`
	Title   string              `json:"title"`
	User    *sessiondomain.User `json:"user,omitempty"`
	Widgets []WidgetResult      `json:"widgets"`
	Actions []string            `json:"actions"`
}

// DashboardService composes role dashboards.
type DashboardService struct {
	counter ports.Counter
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(counter ports.Counter) *DashboardService {
	return &DashboardService{counter: counter}
}

// Build routes the session's role to a view and fetches its counters
// concurrently. One failing widget does not fail the dashboard.
func (s *DashboardService) Build(ctx context.Context, sc *sessiondomain.Context, lang string) Dashboard {
	view := domain.Route(sc.Role())
	d := Dashboard{
		View:    view.Name,
		Title:   view.Title.In(lang),
		User:    sc.User,
		Widgets: make([]WidgetResult, len(view.Widgets)),
		Actions: view.Actions,
	}

	if view.Fallback() {
		metrics.RoleFallbacksTotal.Inc()
		logger.Named("dashboard").Warn("No dashboard for role", zap.String("role", string(sc.Role())))
		return d
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentWidgets)
	for i, w := range view.Widgets {
		g.Go(func() error {
			res := WidgetResult{Key: w.Key, Label: w.Label.In(lang), Link: w.Link}
			n, err := s.counter.Count(gctx, sc.Token, w.Path, w.Query)
			if err != nil {
				logger.Named("dashboard").Debug("Widget failed", zap.String("widget", w.Key), zap.Error(err))
				res.Notice = notice.FromError(err)
			} else {
				res.Count = &n
			}
			d.Widgets[i] = res
			return nil
		})
	}
	_ = g.Wait()

	return d
}
