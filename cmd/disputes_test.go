package cmd

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDisputeResolveInvalidType tests that an unknown resolution type
// is rejected before any request goes out
func TestDisputeResolveInvalidType(t *testing.T) {
	t.Setenv("LAWADMIN_CONFIG_DIR", t.TempDir())

	var execErr error
	captureOutput(t, func() {
		cmd := NewDisputesCommand()
		cmd.SetArgs([]string{"resolve", "dsp-1", "--type", "SHRUG"})
		execErr = cmd.Execute()
	})

	require.Error(t, execErr)
	assert.Contains(t, execErr.Error(), "invalid resolution type")
}

// TestDisputeResolvePartialRefund tests that the refund amount rides
// along only for partial refunds
func TestDisputeResolvePartialRefund(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		assert.Equal(t, "/admin/disputes/dsp-1/resolve", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "PARTIAL_REFUND", body["resolutionType"])
		assert.Equal(t, float64(2500), body["refundAmount"])
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	t.Setenv("LAWYERDIRECT_API_URL", server.URL)
	t.Setenv("LAWADMIN_CONFIG_DIR", t.TempDir())

	output := captureOutput(t, func() {
		cmd := NewDisputesCommand()
		cmd.SetArgs([]string{"resolve", "dsp-1", "--type", "PARTIAL_REFUND", "--refund", "2500", "--note", "Half session held"})
		assert.NoError(t, cmd.Execute())
	})

	assert.Contains(t, output, "Dispute dsp-1 resolved (PARTIAL_REFUND)")
}

// TestDisputeResolveFullRefundDropsAmount tests that a stray --refund
// is not sent for non-partial resolutions
func TestDisputeResolveFullRefundDropsAmount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "FULL_REFUND", body["resolutionType"])
		_, present := body["refundAmount"]
		assert.False(t, present, "refundAmount only belongs to PARTIAL_REFUND")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	t.Setenv("LAWYERDIRECT_API_URL", server.URL)
	t.Setenv("LAWADMIN_CONFIG_DIR", t.TempDir())

	captureOutput(t, func() {
		cmd := NewDisputesCommand()
		cmd.SetArgs([]string{"resolve", "dsp-1", "--type", "FULL_REFUND", "--refund", "2500"})
		assert.NoError(t, cmd.Execute())
	})
}

// TestDisputeNote tests attaching an admin note
func TestDisputeNote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/admin/disputes/dsp-1/note", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Waiting on lawyer statement", body["note"])
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	t.Setenv("LAWYERDIRECT_API_URL", server.URL)
	t.Setenv("LAWADMIN_CONFIG_DIR", t.TempDir())

	output := captureOutput(t, func() {
		cmd := NewDisputesCommand()
		cmd.SetArgs([]string{"note", "dsp-1", "Waiting", "on", "lawyer", "statement"})
		assert.NoError(t, cmd.Execute())
	})

	assert.Contains(t, output, "Note added")
}
