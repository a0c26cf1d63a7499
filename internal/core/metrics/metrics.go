package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BackendRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cargo_portal_backend_requests_total",
		Help: "Total number of calls made to the cargo backend, by method and status code.",
	},
		[]string{"method", "code"},
	)

	BackendRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cargo_portal_backend_request_duration_seconds",
		Help:    "Latency of calls made to the cargo backend.",
		Buckets: prometheus.DefBuckets,
	},
		[]string{"method"},
	)

	MutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cargo_portal_mutations_total",
		Help: "Total number of mutating actions dispatched from list views.",
	},
		[]string{"view", "outcome"},
	)

	StaleResponsesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cargo_portal_stale_responses_total",
		Help: "List fetch responses discarded because a newer fetch was issued.",
	},
		[]string{"view"},
	)

	UploadsDiscardedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cargo_portal_uploads_discarded_total",
		Help: "Wizard uploads whose result was dropped because a newer upload targeted the same field.",
	})

	SessionsOpenedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cargo_portal_sessions_opened_total",
		Help: "Sessions created by a successful login.",
	})

	// Sessions that lapse in Redis without being touched again are never
	// observed here, so opened minus closed overstates live sessions.
	SessionsClosedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cargo_portal_sessions_closed_total",
		Help: "Sessions ended by this process, by reason: logout, expired or revoked.",
	},
		[]string{"reason"},
	)

	CacheCommandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cargo_portal_cache_commands_total",
		Help: "Redis commands issued for sessions, announcements and cached settings, by outcome.",
	},
		[]string{"command", "outcome"},
	)

	RoleFallbacksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cargo_portal_role_fallbacks_total",
		Help: "Dashboard requests that resolved to the no-dashboard view.",
	})
)
