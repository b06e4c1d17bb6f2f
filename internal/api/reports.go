package api

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/guregu/null/v6"
)

// Report statuses.
const (
	ReportPending   = "PENDING"
	ReportReviewing = "REVIEWING"
	ReportResolved  = "RESOLVED"
	ReportDismissed = "DISMISSED"
)

// Report is a user-filed moderation report.
type Report struct {
	ID          string      `json:"id"`
	Reason      string      `json:"reason"`
	Description null.String `json:"description"`
	Status      string      `json:"status"`
	Resolution  null.String `json:"resolution"`
	CreatedAt   time.Time   `json:"createdAt"`
	Reporter    PersonName  `json:"reporter"`
	Reported    PersonName  `json:"reported"`
}

// ListReports fetches one page of reports.
func (c *Client) ListReports(ctx context.Context, query url.Values) (*Page[Report], error) {
	var page Page[Report]
	if err := c.Get(ctx, "/admin/reports", query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// UpdateReport sets a report's status, optionally with a resolution
// note.
func (c *Client) UpdateReport(ctx context.Context, id, status, resolution string) error {
	body := map[string]string{"status": status}
	if resolution != "" {
		body["resolution"] = resolution
	}
	return c.Put(ctx, fmt.Sprintf("/admin/reports/%s", id), body, nil)
}
