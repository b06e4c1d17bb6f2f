package api

import (
	"context"
	"net/url"
)

// CalendarTodo is the compact todo form embedded in calendar days.
type CalendarTodo struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	Priority  string `json:"priority"`
}

// CalendarDay is the activity of one day.
type CalendarDay struct {
	Registrations int            `json:"registrations"`
	Consultations int            `json:"consultations"`
	Todos         []CalendarTodo `json:"todos"`
}

// CalendarData maps YYYY-MM-DD dates to their activity. Days with no
// activity are absent.
type CalendarData map[string]CalendarDay

// Calendar fetches one month of calendar activity. month is YYYY-MM.
func (c *Client) Calendar(ctx context.Context, month string) (CalendarData, error) {
	query := url.Values{}
	query.Set("month", month)
	var resp struct {
		Data CalendarData `json:"data"`
	}
	if err := c.Get(ctx, "/admin/calendar", query, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
