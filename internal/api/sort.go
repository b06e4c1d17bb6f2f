package api

// SortState holds the client-side column sort of an already-fetched
// page. Selecting a column sorts descending; selecting the same column
// again flips to ascending; switching to another column resets to
// descending. This sorts only the rows of the current page, matching
// the console's leaderboard behavior.
type SortState struct {
	key string
	asc bool
}

// Select applies a column selection to the sort state.
func (s *SortState) Select(key string) {
	if s.key == key {
		s.asc = !s.asc
		return
	}
	s.key = key
	s.asc = false
}

// Key returns the active sort column, or "" when nothing is selected.
func (s *SortState) Key() string {
	return s.key
}

// Ascending reports the current sort direction.
func (s *SortState) Ascending() bool {
	return s.asc
}
