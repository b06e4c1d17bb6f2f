// Package format holds the pure display formatters shared by every
// table screen.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/guregu/null/v6"
)

// Dash is the placeholder rendered for a missing related entity.
const Dash = "—"

// Currency formats integer cents as dollars: 12345 → "$123.45".
func Currency(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

// Dollars formats a whole-dollar amount with thousands separators:
// 128450 → "$128,450".
func Dollars(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	s := fmt.Sprintf("%d", amount)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + "$" + b.String()
}

// Phone normalizes a NANP phone number to "(123) 456-7890" grouping.
// An 11-digit number with a leading 1 drops the country code; anything
// that is not a 10- or 11-digit number renders verbatim, and an empty
// value renders the placeholder.
func Phone(phone string) string {
	if phone == "" {
		return Dash
	}
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) == 11 && strings.HasPrefix(d, "1") {
		d = d[1:]
	}
	if len(d) != 10 {
		return phone
	}
	return fmt.Sprintf("(%s) %s-%s", d[:3], d[3:6], d[6:])
}

// NullPhone formats an optional phone field.
func NullPhone(phone null.String) string {
	if !phone.Valid {
		return Dash
	}
	return Phone(phone.String)
}

// Date formats a timestamp as an absolute day, e.g. "Jan 2, 2026".
func Date(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// NullDate formats an optional timestamp, falling back to the
// placeholder.
func NullDate(t null.Time) string {
	if !t.Valid {
		return Dash
	}
	return Date(t.Time)
}

// Relative renders how long ago t was, in the activity-feed style:
// "2 min ago", "3 hr ago", "5 days ago".
func Relative(t time.Time, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%d min ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%d hr ago", int(d.Hours()))
	case d < 48*time.Hour:
		return "1 day ago"
	default:
		return fmt.Sprintf("%d days ago", int(d.Hours()/24))
	}
}

// OrDash substitutes the placeholder for an empty string.
func OrDash(s string) string {
	if s == "" {
		return Dash
	}
	return s
}

// NullOrDash substitutes the placeholder for an absent optional
// string.
func NullOrDash(s null.String) string {
	if !s.Valid || s.String == "" {
		return Dash
	}
	return s.String
}

// Stars renders a 1-5 rating as filled and empty stars.
func Stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

// Truncate shortens s to max runes, appending an ellipsis when it was
// cut.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
