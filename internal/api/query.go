package api

import (
	"net/url"
	"strconv"
	"sync"
)

// Filters maps filter keys to selected values. An empty value means
// "no constraint" and is left out of the query string entirely.
type Filters map[string]string

// Values converts the filter set to url.Values, skipping empty values.
func (f Filters) Values() url.Values {
	v := url.Values{}
	for key, value := range f {
		if value == "" {
			continue
		}
		v.Set(key, value)
	}
	return v
}

// PageRequest selects one page of a resource list.
type PageRequest struct {
	Page  int
	Limit int
}

// ListState tracks the filter and page selection for one resource list,
// the way each console screen does. Changing any filter snaps the page
// back to 1; changing the page keeps the filters.
//
// Every fetch is tagged with a monotonically increasing generation so
// that a response from a superseded fetch can be recognized and
// dropped — the latest user intent wins.
type ListState struct {
	mu      sync.Mutex
	filters Filters
	page    PageRequest
	gen     uint64
}

// NewListState creates a ListState starting at page 1.
func NewListState(limit int) *ListState {
	return &ListState{
		filters: Filters{},
		page:    PageRequest{Page: 1, Limit: limit},
	}
}

// SetFilter sets a filter value and resets the page to 1. Setting a
// filter to "" removes the constraint.
func (s *ListState) SetFilter(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters[key] = value
	s.page.Page = 1
}

// SetPage moves to the given page without touching the filters.
func (s *ListState) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if page < 1 {
		page = 1
	}
	s.page.Page = page
}

// Page returns the current page request.
func (s *ListState) Page() PageRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// Filter returns the current value of one filter key.
func (s *ListState) Filter(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters[key]
}

// Encode serializes the filters plus page/limit into query parameters.
// Only non-empty filter values are included.
func (s *ListState) Encode() url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.filters.Values()
	v.Set("page", strconv.Itoa(s.page.Page))
	v.Set("limit", strconv.Itoa(s.page.Limit))
	return v
}

// Begin marks the start of a fetch and returns its generation.
func (s *ListState) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	return s.gen
}

// Current reports whether the given fetch generation is still the
// latest one. Responses for stale generations must be discarded.
func (s *ListState) Current(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gen == s.gen
}
