package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Event is one entry on the live admin activity feed.
type Event struct {
	Type    string    `json:"type"`
	Message string    `json:"message"`
	Actor   string    `json:"actor"`
	At      time.Time `json:"at"`
}

// WatchEvents opens the admin event stream and delivers events until
// the context is cancelled or the connection drops. The returned
// channel is closed when the stream ends.
func (c *Client) WatchEvents(ctx context.Context) (<-chan Event, error) {
	wsURL := strings.Replace(c.baseURL, "http", "ws", 1) + "/admin/notifications/stream"

	header := http.Header{}
	token, err := c.tokens.Token()
	if err != nil {
		return nil, err
	}
	if token != "" {
		header.Set("Authorization", "Bearer "+token)
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, header)
	if err != nil {
		return nil, err
	}

	events := make(chan Event)

	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	go func() {
		defer close(events)
		defer conn.Close()
		for {
			var ev Event
			if err := conn.ReadJSON(&ev); err != nil {
				if ctx.Err() == nil {
					logrus.WithError(err).Debug("event stream closed")
				}
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	return events, nil
}
