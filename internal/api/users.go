package api

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/guregu/null/v6"
)

// LawyerProfileSummary is the embedded lawyer profile on a user record.
// Nil on the User struct means the user is a plain client.
type LawyerProfileSummary struct {
	ID                 string      `json:"id"`
	VerificationStatus string      `json:"verificationStatus"`
	Specializations    []string    `json:"specializations"`
	Rating             float64     `json:"rating"`
	LicenseImage       null.String `json:"licenseImage"`
	IDImage            null.String `json:"idImage"`
	BarNumber          string      `json:"barNumber"`
	LicenseState       string      `json:"licenseState"`
}

// UserCounts carries the related-record counts the API attaches under
// `_count`.
type UserCounts struct {
	ConsultationsAsClient int `json:"consultationsAsClient"`
}

// User is a platform account as the admin API reports it.
type User struct {
	ID            string                `json:"id"`
	FirstName     string                `json:"firstName"`
	LastName      string                `json:"lastName"`
	Email         string                `json:"email"`
	Phone         null.String           `json:"phone"`
	Role          string                `json:"role"`
	Suspended     bool                  `json:"suspended"`
	CreatedAt     time.Time             `json:"createdAt"`
	LastActiveAt  null.Time             `json:"lastActiveAt"`
	LawyerProfile *LawyerProfileSummary `json:"lawyerProfile"`
	Counts        UserCounts            `json:"_count"`
}

// Name returns the user's display name.
func (u User) Name() string {
	return u.FirstName + " " + u.LastName
}

// ListUsers fetches one page of users.
func (c *Client) ListUsers(ctx context.Context, query url.Values) (*Page[User], error) {
	var page Page[User]
	if err := c.Get(ctx, "/admin/users", query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// SuspendUser sets or clears a user's suspended flag.
func (c *Client) SuspendUser(ctx context.Context, id string, suspended bool) error {
	body := map[string]bool{"suspended": suspended}
	return c.Put(ctx, fmt.Sprintf("/admin/users/%s/suspend", id), body, nil)
}

// Consultation-count buckets offered by the users screen. The
// bucketing narrows only the rows of the fetched page; it is not a
// server-side filter.
const (
	BucketNone     = "0"
	BucketFew      = "1-5"
	BucketFrequent = "5+"
)

// FilterUsersByConsultations applies the consultation-count bucket to
// an already-fetched page of users. An empty bucket returns the slice
// unchanged.
func FilterUsersByConsultations(users []User, bucket string) []User {
	if bucket == "" {
		return users
	}
	filtered := make([]User, 0, len(users))
	for _, u := range users {
		n := u.Counts.ConsultationsAsClient
		switch bucket {
		case BucketNone:
			if n == 0 {
				filtered = append(filtered, u)
			}
		case BucketFew:
			if n >= 1 && n <= 5 {
				filtered = append(filtered, u)
			}
		case BucketFrequent:
			if n > 5 {
				filtered = append(filtered, u)
			}
		}
	}
	return filtered
}
