package cmd

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNotificationSend tests the broadcast round trip
func TestNotificationSend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/admin/notifications/broadcast", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Maintenance tonight", body["title"])
		assert.Equal(t, "Down 2-3am UTC", body["body"])
		assert.Equal(t, "LAWYERS", body["target"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"id":"brd-1","title":"Maintenance tonight","target":"LAWYERS","sentCount":112}}`))
	}))
	defer server.Close()

	t.Setenv("LAWYERDIRECT_API_URL", server.URL)
	t.Setenv("LAWADMIN_CONFIG_DIR", t.TempDir())

	output := captureOutput(t, func() {
		cmd := NewNotificationsCommand()
		cmd.SetArgs([]string{"send", "--title", "Maintenance tonight", "--body", "Down 2-3am UTC", "--target", "lawyers"})
		assert.NoError(t, cmd.Execute())
	})

	assert.Contains(t, output, "Broadcast sent to 112 users (LAWYERS)")
}

// TestNotificationSendInvalidTarget tests that validation stops a bad
// segment before any request is made
func TestNotificationSendInvalidTarget(t *testing.T) {
	t.Setenv("LAWYERDIRECT_API_URL", "http://127.0.0.1:1")
	t.Setenv("LAWADMIN_CONFIG_DIR", t.TempDir())

	var execErr error
	captureOutput(t, func() {
		cmd := NewNotificationsCommand()
		cmd.SetArgs([]string{"send", "--title", "t", "--body", "b", "--target", "EVERYONE"})
		execErr = cmd.Execute()
	})

	require.Error(t, execErr)
	assert.Contains(t, execErr.Error(), "failed to send broadcast")
}

// TestNotificationHistory tests the broadcast history listing
func TestNotificationHistory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/admin/notifications/broadcast", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[
			{"id":"brd-1","title":"Welcome aboard","target":"CLIENTS","sentBy":"Ada Admin","sentCount":240,"createdAt":"2026-08-01T10:00:00Z"}
		],"pagination":{"page":1,"limit":20,"total":1,"pages":1}}`))
	}))
	defer server.Close()

	t.Setenv("LAWYERDIRECT_API_URL", server.URL)
	t.Setenv("LAWADMIN_CONFIG_DIR", t.TempDir())

	output := captureOutput(t, func() {
		cmd := NewNotificationsCommand()
		cmd.SetArgs([]string{"history"})
		assert.NoError(t, cmd.Execute())
	})

	assert.Contains(t, output, "Welcome aboard")
	assert.Contains(t, output, "CLIENTS")
	assert.Contains(t, output, "240")
	assert.Contains(t, output, "Aug 1, 2026")
}
