package format

import (
	"testing"
	"time"

	"github.com/guregu/null/v6"
	"github.com/stretchr/testify/assert"
)

// TestCurrency tests cents-to-dollars rendering
func TestCurrency(t *testing.T) {
	assert.Equal(t, "$123.45", Currency(12345))
	assert.Equal(t, "$0.00", Currency(0))
	assert.Equal(t, "$0.05", Currency(5))
	assert.Equal(t, "$1.00", Currency(100))
	assert.Equal(t, "-$25.00", Currency(-2500))
}

// TestDollars tests whole-dollar rendering with separators
func TestDollars(t *testing.T) {
	assert.Equal(t, "$0", Dollars(0))
	assert.Equal(t, "$950", Dollars(950))
	assert.Equal(t, "$128,450", Dollars(128450))
	assert.Equal(t, "$1,234,567", Dollars(1234567))
	assert.Equal(t, "-$1,000", Dollars(-1000))
}

// TestPhone tests NANP normalization
func TestPhone(t *testing.T) {
	assert.Equal(t, "(123) 456-7890", Phone("1234567890"))
	assert.Equal(t, "(123) 456-7890", Phone("123-456-7890"))
	assert.Equal(t, "(123) 456-7890", Phone("(123) 456-7890"))
	// An 11-digit number with a leading 1 drops the country code.
	assert.Equal(t, "(123) 456-7890", Phone("+1 123 456 7890"))
	assert.Equal(t, "(123) 456-7890", Phone("11234567890"))
	// Anything else renders verbatim.
	assert.Equal(t, "12345", Phone("12345"))
	assert.Equal(t, "+44 20 7946 0958", Phone("+44 20 7946 0958"))
	assert.Equal(t, Dash, Phone(""))
}

// TestNullPhone tests the optional-field wrapper
func TestNullPhone(t *testing.T) {
	assert.Equal(t, "(555) 010-9999", NullPhone(null.StringFrom("5550109999")))
	assert.Equal(t, Dash, NullPhone(null.String{}))
}

// TestDate tests absolute day rendering
func TestDate(t *testing.T) {
	d := time.Date(2026, time.February, 3, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "Feb 3, 2026", Date(d))
	assert.Equal(t, Dash, NullDate(null.Time{}))
	assert.Equal(t, "Feb 3, 2026", NullDate(null.TimeFrom(d)))
}

// TestRelative tests the activity-feed timestamps
func TestRelative(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "just now", Relative(now.Add(-30*time.Second), now))
	assert.Equal(t, "5 min ago", Relative(now.Add(-5*time.Minute), now))
	assert.Equal(t, "3 hr ago", Relative(now.Add(-3*time.Hour), now))
	assert.Equal(t, "1 day ago", Relative(now.Add(-30*time.Hour), now))
	assert.Equal(t, "4 days ago", Relative(now.Add(-4*24*time.Hour), now))
}

// TestOrDash tests the placeholder substitutions
func TestOrDash(t *testing.T) {
	assert.Equal(t, "hello", OrDash("hello"))
	assert.Equal(t, Dash, OrDash(""))
	assert.Equal(t, "hi", NullOrDash(null.StringFrom("hi")))
	assert.Equal(t, Dash, NullOrDash(null.StringFrom("")))
	assert.Equal(t, Dash, NullOrDash(null.String{}))
}

// TestStars tests the rating glyphs
func TestStars(t *testing.T) {
	assert.Equal(t, "★★★★★", Stars(5))
	assert.Equal(t, "★★★☆☆", Stars(3))
	assert.Equal(t, "☆☆☆☆☆", Stars(0))
	assert.Equal(t, "★★★★★", Stars(9), "ratings clamp to the 0-5 range")
	assert.Equal(t, "☆☆☆☆☆", Stars(-2))
}

// TestTruncate tests rune-safe shortening
func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exact", Truncate("exact", 5))
	assert.Equal(t, "long…", Truncate("longer text", 5))
	assert.Equal(t, "héll…", Truncate("héllo wörld", 5))
	assert.Equal(t, "…", Truncate("ab", 1))
}
