package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNormalizeGeography tests folding full state names into USPS
// codes, merging counts reported under both forms
func TestNormalizeGeography(t *testing.T) {
	raw := GeographyData{
		"CA":         {Clients: 100, Lawyers: 20},
		"California": {Clients: 30, Lawyers: 5},
		"new york":   {Clients: 80, Lawyers: 15},
		"TX":         {Clients: 60, Lawyers: 10},
		"Atlantis":   {Clients: 1, Lawyers: 0},
	}

	merged := NormalizeGeography(raw)
	assert.Equal(t, StateCount{Clients: 130, Lawyers: 25}, merged["CA"])
	assert.Equal(t, StateCount{Clients: 80, Lawyers: 15}, merged["NY"])
	assert.Equal(t, StateCount{Clients: 60, Lawyers: 10}, merged["TX"])
	// Unknown names pass through untouched.
	assert.Equal(t, StateCount{Clients: 1}, merged["Atlantis"])
	assert.NotContains(t, merged, "California")
}

// TestStateName tests the code-to-name lookup
func TestStateName(t *testing.T) {
	assert.Equal(t, "California", StateName("CA"))
	assert.Equal(t, "District of Columbia", StateName("DC"))
	assert.Equal(t, "ZZ", StateName("ZZ"))
}

// TestSortedStates tests the busiest-first ordering with a stable
// alphabetical tiebreak
func TestSortedStates(t *testing.T) {
	data := GeographyData{
		"CA": {Clients: 100, Lawyers: 20},
		"NY": {Clients: 80, Lawyers: 40},
		"TX": {Clients: 50, Lawyers: 10},
		"FL": {Clients: 50, Lawyers: 10},
	}

	rows := SortedStates(data)
	assert.Equal(t, "CA", rows[0].State)
	assert.Equal(t, "NY", rows[1].State)
	assert.Equal(t, 120, rows[1].Total)
	// FL and TX tie on total; alphabetical order breaks it.
	assert.Equal(t, "FL", rows[2].State)
	assert.Equal(t, "TX", rows[3].State)
}
