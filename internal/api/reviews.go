package api

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// Review moderation statuses.
const (
	ReviewPending  = "PENDING"
	ReviewApproved = "APPROVED"
	ReviewRejected = "REJECTED"
)

// Review is a client review of a lawyer awaiting moderation.
type Review struct {
	ID        string     `json:"id"`
	Rating    int        `json:"rating"`
	Comment   string     `json:"comment"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	Client    PersonName `json:"client"`
	Lawyer    struct {
		User PersonName `json:"user"`
	} `json:"lawyer"`
}

// ListReviews fetches one page of reviews.
func (c *Client) ListReviews(ctx context.Context, query url.Values) (*Page[Review], error) {
	var page Page[Review]
	if err := c.Get(ctx, "/admin/reviews", query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ApproveReview publishes a pending review.
func (c *Client) ApproveReview(ctx context.Context, id string) error {
	return c.Put(ctx, fmt.Sprintf("/admin/reviews/%s/approve", id), struct{}{}, nil)
}

// RejectReview rejects a pending review with a reason.
func (c *Client) RejectReview(ctx context.Context, id, reason string) error {
	body := map[string]string{"reason": reason}
	return c.Put(ctx, fmt.Sprintf("/admin/reviews/%s/reject", id), body, nil)
}
