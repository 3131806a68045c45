package pagination

import (
	"fmt"
	"net/http"
	"strconv"
)

// Params represents pagination query parameters from an HTTP request.
type Params struct {
	Page  int // 1-based page number
	Limit int // Items per page; zero is valid and yields an empty page
}

// ParseQueryParams parses pagination parameters from the request query string.
// `p` is accepted as an alias of `page`. Missing parameters fall back to the
// config defaults.
//
// Returns an error for non-numeric or out-of-range values:
//   - page must be a positive integer (offset would go negative otherwise)
//   - limit must be a non-negative integer
func ParseQueryParams(r *http.Request, config Config) (Params, error) {
	params := Params{
		Page:  config.DefaultPage,
		Limit: config.DefaultLimit,
	}

	pageStr := r.URL.Query().Get("p")
	if pageStr == "" {
		pageStr = r.URL.Query().Get("page")
	}
	if pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			return params, fmt.Errorf("invalid query parameter: p must be a positive integer")
		}
		params.Page = page
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			return params, fmt.Errorf("invalid query parameter: limit must be a non-negative integer")
		}
		params.Limit = limit
	}

	return params, nil
}
