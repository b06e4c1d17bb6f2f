package api

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/guregu/null/v6"
)

// Dispute statuses.
const (
	DisputeOpen           = "OPEN"
	DisputeLawyerResponse = "LAWYER_RESPONSE"
	DisputeMediation      = "MEDIATION"
	DisputeEscalated      = "ESCALATED"
	DisputeResolved       = "RESOLVED"
	DisputeClosed         = "CLOSED"
)

// Dispute resolution types.
const (
	ResolutionFullRefund    = "FULL_REFUND"
	ResolutionPartialRefund = "PARTIAL_REFUND"
	ResolutionNoRefund      = "NO_REFUND"
	ResolutionDismissed     = "DISMISSED"
)

// Dispute is a client-lawyer dispute.
type Dispute struct {
	ID                string      `json:"id"`
	ConsultationID    string      `json:"consultationId"`
	Category          string      `json:"category"`
	Description       string      `json:"description"`
	Status            string      `json:"status"`
	ResolutionType    null.String `json:"resolutionType"`
	ResolutionNote    null.String `json:"resolutionNote"`
	RefundAmount      null.Int64  `json:"refundAmount"`
	LawyerDeadline    null.Time   `json:"lawyerDeadline"`
	MediationDeadline null.Time   `json:"mediationDeadline"`
	ResolvedAt        null.Time   `json:"resolvedAt"`
	CreatedAt         time.Time   `json:"createdAt"`
	FiledBy           PersonName  `json:"filedBy"`
	FiledAgainst      PersonName  `json:"filedAgainst"`
	Consultation      struct {
		ID       string          `json:"id"`
		Category string          `json:"category"`
		Payment  *PaymentSummary `json:"payment"`
	} `json:"consultation"`
}

// DisputeResolution is the body of a resolve call. RefundAmount (in
// cents) applies only to partial refunds and is omitted otherwise.
type DisputeResolution struct {
	ResolutionType string `json:"resolutionType"`
	ResolutionNote string `json:"resolutionNote"`
	RefundAmount   *int64 `json:"refundAmount,omitempty"`
}

// ListDisputes fetches one page of disputes.
func (c *Client) ListDisputes(ctx context.Context, query url.Values) (*Page[Dispute], error) {
	var page Page[Dispute]
	if err := c.Get(ctx, "/admin/disputes", query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ResolveDispute applies a resolution to a dispute.
func (c *Client) ResolveDispute(ctx context.Context, id string, res DisputeResolution) error {
	if res.ResolutionType != ResolutionPartialRefund {
		res.RefundAmount = nil
	}
	return c.Put(ctx, fmt.Sprintf("/admin/disputes/%s/resolve", id), res, nil)
}

// AddDisputeNote attaches an admin note to a dispute.
func (c *Client) AddDisputeNote(ctx context.Context, id, note string) error {
	body := map[string]string{"note": note}
	return c.Post(ctx, fmt.Sprintf("/admin/disputes/%s/note", id), body, nil)
}
