package shared

import (
	"net/http"
	"strconv"
)

// Pagination is a limit/offset window read from the query string.
type Pagination struct {
	Limit  int
	Offset int
}

// ParsePagination reads ?limit= and ?offset=. Missing or malformed values
// fall back to defaultLimit and zero; limit is capped at maxLimit when
// maxLimit is positive.
func ParsePagination(r *http.Request, defaultLimit, maxLimit int) Pagination {
	query := r.URL.Query()
	page := Pagination{
		Limit:  queryInt(query.Get("limit"), defaultLimit, 1),
		Offset: queryInt(query.Get("offset"), 0, 0),
	}
	if maxLimit > 0 && page.Limit > maxLimit {
		page.Limit = maxLimit
	}
	return page
}

func queryInt(raw string, fallback, min int) int {
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < min {
		return fallback
	}
	return v
}

// WriteTotal reports the unpaginated result size in X-Total-Count.
func WriteTotal(w http.ResponseWriter, total int) {
	w.Header().Set("X-Total-Count", strconv.Itoa(total))
}
