package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// TokenSource supplies the bearer token attached to every request.
// An empty token means the request goes out unauthenticated.
type TokenSource interface {
	Token() (string, error)
}

// Error is a non-2xx response from the admin API. Message carries the
// server's `message` field when the error body could be decoded.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// Client talks to the LawyerDirect admin API. It performs no retries,
// no caching and no request deduplication; every call is a single
// round trip and the server stays the sole owner of all state.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenSource
}

// NewClient constructs a Client for the given base URL, e.g.
// "http://localhost:3001/api".
func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		tokens:     tokens,
	}
}

// BaseURL returns the API base URL the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to serialize request body: %v", err)
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	token, err := c.tokens.Token()
	if err != nil {
		return err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	logrus.WithFields(logrus.Fields{
		"method": method,
		"url":    endpoint,
	}).Debug("admin api request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("API call failed: %v", err)
	}
	defer resp.Body.Close()

	logrus.WithField("status", resp.StatusCode).Debug("admin api response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &Error{StatusCode: resp.StatusCode}
		var errBody struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err != nil {
			apiErr.Message = "Request failed"
		} else {
			apiErr.Message = errBody.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse response: %v", err)
	}
	return nil
}

// Get issues a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
