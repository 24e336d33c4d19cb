package dashboard

import (
	"net/url"
	"strings"

	"bizdash/internal/constants"
)

// Record is the capability every listed row provides to the generic table.
type Record interface {
	RowKey() string
	SearchFields() []string
	FilterValue() string
}

// Query is the per-request UI state of a view: search box and status dropdown.
type Query struct {
	Search string `json:"search"`
	Status string `json:"status"`
}

// ParseQuery reads the search and status parameters of a request URL. The
// search text is kept as typed, surrounding spaces included.
func ParseQuery(v url.Values) Query {
	return Query{
		Search: v.Get("search"),
		Status: v.Get("status"),
	}
}

// Match reports whether r passes both the text search and the status filter.
// Search is a case-insensitive substring test over r.SearchFields(); the status
// comparison is exact. An empty status behaves like constants.FilterAll.
func (q Query) Match(r Record) bool {
	if q.Status != "" && q.Status != constants.FilterAll && r.FilterValue() != q.Status {
		return false
	}
	if q.Search == "" {
		return true
	}

	needle := strings.ToLower(q.Search)
	for _, f := range r.SearchFields() {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func Filter[T Record](records []T, q Query) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if q.Match(r) {
			out = append(out, r)
		}
	}
	return out
}
