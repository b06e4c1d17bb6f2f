package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signedToken issues an HS256 token expiring the given number of hours
// from now. The signing key is irrelevant; expiry reading never
// verifies.
func signedToken(t *testing.T, hours int) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": "adm-1",
		"exp": time.Now().Add(time.Duration(hours) * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

// TestExpiry tests reading the exp claim without verification
func TestExpiry(t *testing.T) {
	exp, ok := Expiry(signedToken(t, 2))
	assert.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), exp, time.Minute)
}

// TestExpiryNoClaim tests tokens without an exp claim
func TestExpiryNoClaim(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "adm-1"}).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, ok := Expiry(token)
	assert.False(t, ok)
	assert.False(t, Expired(token), "tokens without a readable exp claim are treated as live")
}

// TestExpiryGarbage tests non-JWT tokens
func TestExpiryGarbage(t *testing.T) {
	_, ok := Expiry("not-a-jwt")
	assert.False(t, ok)
	assert.False(t, Expired("not-a-jwt"))
}

// TestExpired tests the past/future split
func TestExpired(t *testing.T) {
	assert.True(t, Expired(signedToken(t, -1)))
	assert.False(t, Expired(signedToken(t, 1)))
}
