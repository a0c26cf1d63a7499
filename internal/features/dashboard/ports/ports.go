package ports

import (
	"context"
	"net/url"
)

// Counter counts the items a list endpoint would return for a query.
type Counter interface {
	Count(ctx context.Context, token, path string, query url.Values) (int, error)
}
