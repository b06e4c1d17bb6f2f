package api

import (
	"context"
	"net/url"
	"time"
)

// Consultation statuses.
const (
	ConsultationPending   = "PENDING"
	ConsultationTrial     = "TRIAL"
	ConsultationActive    = "ACTIVE"
	ConsultationCompleted = "COMPLETED"
	ConsultationCancelled = "CANCELLED"
)

// PersonName is a bare first/last name pair embedded in related
// records.
type PersonName struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Name returns the display name.
func (p PersonName) Name() string {
	return p.FirstName + " " + p.LastName
}

// PaymentSummary is the payment block embedded in a consultation.
// Amount is in cents.
type PaymentSummary struct {
	Amount int64  `json:"amount"`
	Status string `json:"status"`
}

// Consultation is one consultation between a client and a lawyer. The
// lawyer and payment may be absent while the consultation is pending.
type Consultation struct {
	ID          string     `json:"id"`
	Category    string     `json:"category"`
	Status      string     `json:"status"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"createdAt"`
	Client      PersonName `json:"client"`
	Lawyer      *struct {
		User PersonName `json:"user"`
	} `json:"lawyer"`
	Payment *PaymentSummary `json:"payment"`
}

// ListConsultations fetches one page of consultations.
func (c *Client) ListConsultations(ctx context.Context, query url.Values) (*Page[Consultation], error) {
	var page Page[Consultation]
	if err := c.Get(ctx, "/admin/consultations", query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
