package httpclient

import (
	"net/http"
	"strconv"
	"time"

	"cargo-portal/internal/core/logger"
	"cargo-portal/internal/core/metrics"

	"go.uber.org/zap"
)

// RayIDHeader carries the portal's request id to the backend.
const RayIDHeader = "X-Ray-ID"

// Transport tags, logs and measures every call to the backend. The request
// id placed in the context by logger.NewContext is forwarded as RayIDHeader.
type Transport struct {
	next http.RoundTripper
}

// RoundTrip forwards req with the ray id header set.
// Only method, path and outcome are logged; query strings may hold search
// terms and the Authorization header must never reach the logs.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	rayID := logger.RayID(req.Context())

	log := logger.FromContext(req.Context()).Named("backend").With(
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
	)
	if rayID != "" {
		// RoundTrippers must not modify the caller's request.
		req = req.Clone(req.Context())
		req.Header.Set(RayIDHeader, rayID)
	}

	resp, err := t.next.RoundTrip(req)
	elapsed := time.Since(start)
	metrics.BackendRequestDuration.WithLabelValues(req.Method).Observe(elapsed.Seconds())

	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(req.Method, "error").Inc()
		log.Warn("Backend call failed", zap.Duration("duration", elapsed), zap.Error(err))
		return nil, err
	}

	metrics.BackendRequestsTotal.WithLabelValues(req.Method, strconv.Itoa(resp.StatusCode)).Inc()
	if resp.StatusCode >= http.StatusInternalServerError {
		log.Warn("Backend call errored", zap.Int("status_code", resp.StatusCode), zap.Duration("duration", elapsed))
	} else {
		log.Debug("Backend call", zap.Int("status_code", resp.StatusCode), zap.Duration("duration", elapsed))
	}

	return resp, nil
}

// NewClient returns an http.Client for backend calls bounded by timeout.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: &Transport{next: http.DefaultTransport},
		Timeout:   timeout,
	}
}
