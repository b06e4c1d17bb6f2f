package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Expiry reads the exp claim of a JWT without verifying its
// signature. The client holds no signing key; this exists only to
// detect a dead session before making a doomed request. It returns
// false when the token is not a JWT or carries no exp claim.
func Expiry(token string) (time.Time, bool) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// Expired reports whether the token carries an exp claim in the past.
// Tokens without a readable exp claim are treated as live; the server
// remains the authority.
func Expired(token string) bool {
	exp, ok := Expiry(token)
	if !ok {
		return false
	}
	return exp.Before(time.Now())
}
