package api

import (
	"context"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
)

// Broadcast target segments.
const (
	TargetAll     = "ALL"
	TargetClients = "CLIENTS"
	TargetLawyers = "LAWYERS"
)

var validate = validator.New()

// Broadcast is an admin-authored push message fanned out to a user
// segment.
type Broadcast struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Target    string    `json:"target"`
	SentBy    string    `json:"sentBy"`
	SentCount int       `json:"sentCount"`
	CreatedAt time.Time `json:"createdAt"`
}

// BroadcastInput is the send payload.
type BroadcastInput struct {
	Title  string `json:"title" validate:"required"`
	Body   string `json:"body" validate:"required"`
	Target string `json:"target" validate:"required,oneof=ALL CLIENTS LAWYERS"`
}

// ListBroadcasts fetches one page of broadcast history.
func (c *Client) ListBroadcasts(ctx context.Context, query url.Values) (*Page[Broadcast], error) {
	var page Page[Broadcast]
	if err := c.Get(ctx, "/admin/notifications/broadcast", query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// SendBroadcast fans a message out to the target segment and returns
// the sent broadcast, including how many users it reached.
func (c *Client) SendBroadcast(ctx context.Context, in BroadcastInput) (*Broadcast, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	var resp struct {
		Data Broadcast `json:"data"`
	}
	if err := c.Post(ctx, "/admin/notifications/broadcast", in, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
