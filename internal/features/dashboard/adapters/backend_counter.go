package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"cargo-portal/internal/core/backend"
)

// BackendCounter implements ports.Counter by asking for a one-item page and
// reading its total.
type BackendCounter struct {
	client *backend.Client
}

// NewBackendCounter creates a new BackendCounter.
func NewBackendCounter(client *backend.Client) *BackendCounter {
	return &BackendCounter{client: client}
}

// Count returns the total reported by GET path?query&page=1&limit=1.
func (a *BackendCounter) Count(ctx context.Context, token, path string, query url.Values) (int, error) {
	q := url.Values{}
	for k, v := range query {
		q[k] = append([]string(nil), v...)
	}
	q.Set("page", "1")
	q.Set("limit", "1")

	var page backend.Page[json.RawMessage]
	if _, err := a.client.Do(ctx, backend.Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  q,
		Token:  token,
	}, &page); err != nil {
		return 0, fmt.Errorf("count %s: %w", path, err)
	}
	return page.Total, nil
}
