package api

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"time"

	"github.com/guregu/null/v6"
)

// Lawyer verification states. Transitions are applied server-side; the
// client only offers verify/reject while a profile is still pending.
const (
	VerificationPending  = "PENDING"
	VerificationVerified = "VERIFIED"
	VerificationRejected = "REJECTED"
)

// LawyerUser is the account summary embedded in a lawyer record.
type LawyerUser struct {
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Email     string      `json:"email"`
	Phone     null.String `json:"phone"`
	Avatar    null.String `json:"avatar"`
	CreatedAt time.Time   `json:"createdAt"`
}

// LawyerCounts carries the `_count` block of a lawyer record.
type LawyerCounts struct {
	Consultations int `json:"consultations"`
	Reviews       int `json:"reviews"`
}

// Lawyer is a lawyer profile as the admin API reports it.
type Lawyer struct {
	ID                 string       `json:"id"`
	BarNumber          string       `json:"barNumber"`
	LicenseState       string       `json:"licenseState"`
	Specializations    []string     `json:"specializations"`
	Rating             float64      `json:"rating"`
	VerificationStatus string       `json:"verificationStatus"`
	IsAvailable        bool         `json:"isAvailable"`
	LicenseImage       null.String  `json:"licenseImage"`
	IDImage            null.String  `json:"idImage"`
	CreatedAt          time.Time    `json:"createdAt"`
	User               LawyerUser   `json:"user"`
	Counts             LawyerCounts `json:"_count"`
}

// Name returns the lawyer's display name.
func (l Lawyer) Name() string {
	return l.User.FirstName + " " + l.User.LastName
}

// ListLawyers fetches one page of lawyer profiles.
func (c *Client) ListLawyers(ctx context.Context, query url.Values) (*Page[Lawyer], error) {
	var page Page[Lawyer]
	if err := c.Get(ctx, "/admin/lawyers", query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// VerifyLawyer moves a pending lawyer profile to VERIFIED or REJECTED.
func (c *Client) VerifyLawyer(ctx context.Context, id, status string) error {
	body := map[string]string{"status": status}
	return c.Put(ctx, fmt.Sprintf("/admin/lawyers/%s/verify", id), body, nil)
}

// TopLawyer is one leaderboard row. Revenue is in cents.
type TopLawyer struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Avatar         null.String `json:"avatar"`
	Specialization string      `json:"specialization"`
	Consultations  int         `json:"consultations"`
	Revenue        int64       `json:"revenue"`
	Rating         float64     `json:"rating"`
}

// TopLawyers fetches the lawyer leaderboard.
func (c *Client) TopLawyers(ctx context.Context) ([]TopLawyer, error) {
	var resp struct {
		Data []TopLawyer `json:"data"`
	}
	if err := c.Get(ctx, "/admin/analytics/top-lawyers", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Leaderboard sort columns.
const (
	SortByName          = "name"
	SortByConsultations = "consultations"
	SortByRevenue       = "revenue"
	SortByRating        = "rating"
)

// SortTopLawyers orders leaderboard rows in place according to the
// sort state. Rows beyond the current page are not involved; this is
// page-local presentation sorting.
func SortTopLawyers(rows []TopLawyer, state SortState) {
	key := state.Key()
	if key == "" {
		return
	}
	less := func(a, b TopLawyer) bool {
		switch key {
		case SortByName:
			return a.Name < b.Name
		case SortByConsultations:
			return a.Consultations < b.Consultations
		case SortByRating:
			return a.Rating < b.Rating
		default:
			return a.Revenue < b.Revenue
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if state.Ascending() {
			return less(rows[i], rows[j])
		}
		return less(rows[j], rows[i])
	})
}
