package api

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/guregu/null/v6"
)

// Todo priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Todo is an admin todo item. Date is a plain YYYY-MM-DD day, not a
// timestamp.
type Todo struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description null.String `json:"description"`
	Date        null.String `json:"date"`
	Completed   bool        `json:"completed"`
	Priority    string      `json:"priority"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// TodoInput is the create payload; zero-valued optional fields are
// omitted.
type TodoInput struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date,omitempty"`
	Priority    string `json:"priority,omitempty"`
}

// TodoPatch is a partial update; only non-nil fields are sent.
type TodoPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Date        *string `json:"date,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// ListTodos fetches one page of todos.
func (c *Client) ListTodos(ctx context.Context, query url.Values) (*Page[Todo], error) {
	var page Page[Todo]
	if err := c.Get(ctx, "/admin/todos", query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CreateTodo adds a todo.
func (c *Client) CreateTodo(ctx context.Context, in TodoInput) error {
	return c.Post(ctx, "/admin/todos", in, nil)
}

// UpdateTodo applies a partial update to a todo. Toggling the
// completed flag goes through here as well.
func (c *Client) UpdateTodo(ctx context.Context, id string, patch TodoPatch) error {
	return c.Put(ctx, fmt.Sprintf("/admin/todos/%s", id), patch, nil)
}

// DeleteTodo removes a todo.
func (c *Client) DeleteTodo(ctx context.Context, id string) error {
	return c.Delete(ctx, fmt.Sprintf("/admin/todos/%s", id))
}
