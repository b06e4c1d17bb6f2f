package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawyerdirect/lawadmin/internal/api"
)

// captureOutput runs fn with stdout and stderr redirected into a buffer
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout
	oldStderr := os.Stderr
	defer func() {
		os.Stdout = oldStdout
		os.Stderr = oldStderr
	}()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	os.Stderr = w

	fn()

	w.Close()
	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func lawyerPage(page, limit, total int) api.Page[api.User] {
	start := (page - 1) * limit
	count := total - start
	if count > limit {
		count = limit
	}
	users := make([]api.User, 0, count)
	for i := 0; i < count; i++ {
		users = append(users, api.User{
			ID:        fmt.Sprintf("usr-%d", start+i+1),
			FirstName: "Lawyer",
			LastName:  fmt.Sprintf("Number%d", start+i+1),
			Email:     fmt.Sprintf("lawyer%d@lawyerdirect.com", start+i+1),
			Role:      "LAWYER",
			CreatedAt: time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC),
		})
	}
	return api.Page[api.User]{
		Data: users,
		Pagination: api.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: api.PageCount(total, limit),
		},
	}
}

// TestUsersListSecondPage tests fetching page 2 of a 45-lawyer listing
func TestUsersListSecondPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/admin/users", r.URL.Path)

		query := r.URL.Query()
		assert.Equal(t, "LAWYER", query.Get("role"))
		assert.Equal(t, "2", query.Get("page"))
		assert.Equal(t, "20", query.Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(lawyerPage(2, 20, 45))
	}))
	defer server.Close()

	t.Setenv("LAWYERDIRECT_API_URL", server.URL)
	t.Setenv("LAWADMIN_CONFIG_DIR", t.TempDir())

	output := captureOutput(t, func() {
		cmd := NewUsersCommand()
		cmd.SetArgs([]string{"list", "--role", "LAWYER", "--page", "2"})
		assert.NoError(t, cmd.Execute())
	})

	assert.Contains(t, output, "NAME")
	assert.Contains(t, output, "Lawyer Number21")
	assert.Contains(t, output, "Lawyer Number40")
	assert.NotContains(t, output, "Number41")
	assert.Contains(t, output, "Page 2 of 3 (45 total)")
}

// TestUsersListEmpty tests the empty listing message
func TestUsersListEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(lawyerPage(1, 20, 0))
	}))
	defer server.Close()

	t.Setenv("LAWYERDIRECT_API_URL", server.URL)
	t.Setenv("LAWADMIN_CONFIG_DIR", t.TempDir())

	output := captureOutput(t, func() {
		cmd := NewUsersCommand()
		cmd.SetArgs([]string{"list"})
		assert.NoError(t, cmd.Execute())
	})

	assert.Contains(t, output, "No users found")
	assert.NotContains(t, output, "Page")
}

// TestUsersListConsultationBucket tests the page-local bucket filter
func TestUsersListConsultationBucket(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The bucket never reaches the server.
		assert.Empty(t, r.URL.Query().Get("consultations"))

		page := api.Page[api.User]{
			Data: []api.User{
				{ID: "usr-1", FirstName: "John", LastName: "Davis", Counts: api.UserCounts{ConsultationsAsClient: 0}},
				{ID: "usr-2", FirstName: "Maria", LastName: "Garcia", Counts: api.UserCounts{ConsultationsAsClient: 3}},
				{ID: "usr-3", FirstName: "Alex", LastName: "Thompson", Counts: api.UserCounts{ConsultationsAsClient: 9}},
			},
			Pagination: api.Pagination{Page: 1, Limit: 20, Total: 3, Pages: 1},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(page)
	}))
	defer server.Close()

	t.Setenv("LAWYERDIRECT_API_URL", server.URL)
	t.Setenv("LAWADMIN_CONFIG_DIR", t.TempDir())

	output := captureOutput(t, func() {
		cmd := NewUsersCommand()
		cmd.SetArgs([]string{"list", "--consultations", "5+"})
		assert.NoError(t, cmd.Execute())
	})

	assert.Contains(t, output, "Alex Thompson")
	assert.NotContains(t, output, "John Davis")
	assert.NotContains(t, output, "Maria Garcia")
}

// TestUserSuspend tests the suspend mutation and its failure path
func TestUserSuspend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		assert.Equal(t, "/admin/users/usr-1/suspend", r.URL.Path)

		var body struct {
			Suspended bool `json:"suspended"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.True(t, body.Suspended)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	t.Setenv("LAWYERDIRECT_API_URL", server.URL)
	t.Setenv("LAWADMIN_CONFIG_DIR", t.TempDir())

	output := captureOutput(t, func() {
		cmd := NewUsersCommand()
		cmd.SetArgs([]string{"suspend", "usr-1"})
		assert.NoError(t, cmd.Execute())
	})

	assert.Contains(t, output, "User usr-1 suspended")
}

// TestUserSuspendFailure tests that a rejected mutation surfaces as an
// error instead of printing success
func TestUserSuspendFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"User not found"}`))
	}))
	defer server.Close()

	t.Setenv("LAWYERDIRECT_API_URL", server.URL)
	t.Setenv("LAWADMIN_CONFIG_DIR", t.TempDir())

	var execErr error
	output := captureOutput(t, func() {
		cmd := NewUsersCommand()
		cmd.SetArgs([]string{"suspend", "usr-404"})
		execErr = cmd.Execute()
	})

	require.Error(t, execErr)
	assert.Contains(t, execErr.Error(), "User not found")
	assert.NotContains(t, output, "suspended\n")
}
