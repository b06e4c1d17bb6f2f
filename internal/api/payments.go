package api

import (
	"context"
	"net/url"
	"time"
)

// Payment statuses.
const (
	PaymentCompleted = "COMPLETED"
	PaymentPending   = "PENDING"
	PaymentRefunded  = "REFUNDED"
)

// Payment is one payment transaction. Amount is in cents.
type Payment struct {
	ID              string    `json:"id"`
	Amount          int64     `json:"amount"`
	Status          string    `json:"status"`
	StripePaymentID string    `json:"stripePaymentId"`
	CreatedAt       time.Time `json:"createdAt"`
	Consultation    struct {
		Category string     `json:"category"`
		Client   PersonName `json:"client"`
		Lawyer   *struct {
			User PersonName `json:"user"`
		} `json:"lawyer"`
	} `json:"consultation"`
}

// PaymentPage is the payments list envelope. Unlike the other list
// endpoints it carries the filtered total amount in dollars alongside
// the usual pagination block.
type PaymentPage struct {
	Data        []Payment  `json:"data"`
	TotalAmount int64      `json:"totalAmount"`
	Pagination  Pagination `json:"pagination"`
}

// ListPayments fetches one page of payments.
func (c *Client) ListPayments(ctx context.Context, query url.Values) (*PaymentPage, error) {
	var page PaymentPage
	if err := c.Get(ctx, "/admin/payments", query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
