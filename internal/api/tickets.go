package api

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// Ticket statuses. Admin-triggered transitions walk
// OPEN → IN_PROGRESS → RESOLVED → CLOSED; the server is the authority
// on which transitions it accepts.
const (
	TicketOpen       = "OPEN"
	TicketInProgress = "IN_PROGRESS"
	TicketResolved   = "RESOLVED"
	TicketClosed     = "CLOSED"
)

// Ticket categories.
const (
	TicketBilling   = "BILLING"
	TicketTechnical = "TECHNICAL"
	TicketAccount   = "ACCOUNT"
	TicketLegal     = "LEGAL"
	TicketOther     = "OTHER"
)

// TicketReply is one message on a support ticket thread.
type TicketReply struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	FromAdmin bool      `json:"fromAdmin"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Ticket is a support ticket.
type Ticket struct {
	ID        string        `json:"id"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	Category  string        `json:"category"`
	Status    string        `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	Requester PersonName    `json:"requester"`
	Replies   []TicketReply `json:"replies"`
}

// ListTickets fetches one page of support tickets.
func (c *Client) ListTickets(ctx context.Context, query url.Values) (*Page[Ticket], error) {
	var page Page[Ticket]
	if err := c.Get(ctx, "/admin/tickets", query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ReplyToTicket posts an admin reply on a ticket thread.
func (c *Client) ReplyToTicket(ctx context.Context, id, message string) error {
	body := map[string]string{"message": message}
	return c.Post(ctx, fmt.Sprintf("/admin/tickets/%s/replies", id), body, nil)
}

// SetTicketStatus requests a ticket status transition.
func (c *Client) SetTicketStatus(ctx context.Context, id, status string) error {
	body := map[string]string{"status": status}
	return c.Put(ctx, fmt.Sprintf("/admin/tickets/%s/status", id), body, nil)
}
