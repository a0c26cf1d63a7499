package listview

import (
	"net/url"
	"strconv"
)

// MaxLimit caps the page size a browser may request.
const MaxLimit = 100

// Filters are the query parameters of a list screen.
type Filters struct {
	Status    string `json:"status,omitempty" query:"status"`
	Search    string `json:"search,omitempty" query:"search"`
	Type      string `json:"type,omitempty" query:"type"`
	CompanyID string `json:"companyId,omitempty" query:"companyId"`
	Page      int    `json:"page" query:"page"`
	Limit     int    `json:"limit,omitempty" query:"limit"`
}

// Normalize clamps paging values. Page numbering starts at 1.
func (f Filters) Normalize() Filters {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 0 {
		f.Limit = 0
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	return f
}

// Query encodes the filters for the backend. page is always sent; every
// other parameter only when set.
func (f Filters) Query() url.Values {
	f = f.Normalize()
	q := url.Values{}
	q.Set("page", strconv.Itoa(f.Page))
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Type != "" {
		q.Set("type", f.Type)
	}
	if f.CompanyID != "" {
		q.Set("companyId", f.CompanyID)
	}
	return q
}
