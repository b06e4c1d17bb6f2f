package api

import "fmt"

// Pagination is the shared pagination block of every list endpoint.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// Page is the `{data, pagination}` envelope every admin list endpoint
// responds with.
type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// PageCount returns ceil(total/limit). A total of zero yields zero
// pages; any non-zero total smaller than the limit yields one.
func PageCount(total, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// Check verifies the envelope invariant pages == ceil(total/limit).
// The server owns the numbers; this only guards against a mismatched
// or truncated response.
func (p Pagination) Check() error {
	if want := PageCount(p.Total, p.Limit); p.Pages != want {
		return fmt.Errorf("pagination mismatch: got %d pages for total=%d limit=%d, want %d",
			p.Pages, p.Total, p.Limit, want)
	}
	return nil
}
