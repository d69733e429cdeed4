package request

import "net/http"

// ListParams holds pagination, search, and sort parameters.
type ListParams struct {
	Limit  int
	Cursor string
	Search string
	Sort   string
	Order  string // "asc" or "desc"
}

// ParseListParams extracts list parameters from the query string.
// defaultSort specifies which field to sort by when none is provided.
func ParseListParams(r *http.Request, defaultSort string) ListParams {
	pg := ParsePagination(r)
	order := stringOr(r.URL.Query().Get("order"), "asc")
	if order != "asc" && order != "desc" {
		order = "asc"
	}
	return ListParams{
		Limit:  pg.Limit,
		Cursor: pg.Cursor,
		Search: r.URL.Query().Get("search"),
		Sort:   stringOr(r.URL.Query().Get("sort"), defaultSort),
		Order:  order,
	}
}

func stringOr(val, fallback string) string {
	if val != "" {
		return val
	}
	return fallback
}
