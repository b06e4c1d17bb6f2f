package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func usersWithCounts(counts ...int) []User {
	users := make([]User, len(counts))
	for i, n := range counts {
		users[i] = User{ID: string(rune('a' + i)), Counts: UserCounts{ConsultationsAsClient: n}}
	}
	return users
}

// TestFilterUsersByConsultations tests the page-local consultation
// buckets
func TestFilterUsersByConsultations(t *testing.T) {
	users := usersWithCounts(0, 1, 3, 5, 6, 12)

	assert.Len(t, FilterUsersByConsultations(users, ""), 6, "no bucket leaves the page intact")
	assert.Len(t, FilterUsersByConsultations(users, BucketNone), 1)
	assert.Len(t, FilterUsersByConsultations(users, BucketFew), 3, "1-5 is inclusive on both ends")
	assert.Len(t, FilterUsersByConsultations(users, BucketFrequent), 2, "5+ means strictly more than five")
}
