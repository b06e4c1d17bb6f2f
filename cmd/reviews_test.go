package cmd

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const emptyPageResponse = `{"data":[],"pagination":{"page":1,"limit":20,"total":0,"pages":0}}`

// TestReviewsListEmptyWithoutDemo tests that an empty API result stays
// empty unless the sample-data fallback is asked for
func TestReviewsListEmptyWithoutDemo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(emptyPageResponse))
	}))
	defer server.Close()

	t.Setenv("LAWYERDIRECT_API_URL", server.URL)
	t.Setenv("LAWADMIN_CONFIG_DIR", t.TempDir())

	output := captureOutput(t, func() {
		cmd := NewReviewsCommand()
		cmd.SetArgs([]string{"list"})
		assert.NoError(t, cmd.Execute())
	})

	assert.Contains(t, output, "No reviews found")
	assert.NotContains(t, output, "rev-1")
}

// TestReviewsListDemoFallback tests the explicit --demo substitution
func TestReviewsListDemoFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(emptyPageResponse))
	}))
	defer server.Close()

	t.Setenv("LAWYERDIRECT_API_URL", server.URL)
	t.Setenv("LAWADMIN_CONFIG_DIR", t.TempDir())

	output := captureOutput(t, func() {
		cmd := NewReviewsCommand()
		cmd.SetArgs([]string{"list", "--demo", "--status", "PENDING"})
		assert.NoError(t, cmd.Execute())
	})

	assert.Contains(t, output, "rev-1")
	assert.Contains(t, output, "John Davis")
	assert.NotContains(t, output, "rev-2", "the status filter applies to the sample data too")
}

// TestReviewRejectRequiresReason tests the required rejection reason
func TestReviewRejectRequiresReason(t *testing.T) {
	t.Setenv("LAWADMIN_CONFIG_DIR", t.TempDir())

	var execErr error
	captureOutput(t, func() {
		cmd := NewReviewsCommand()
		cmd.SetArgs([]string{"reject", "rev-1"})
		execErr = cmd.Execute()
	})

	require.Error(t, execErr)
	assert.Contains(t, execErr.Error(), "reason")
}

// TestReviewApprove tests the approve mutation path
func TestReviewApprove(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		assert.Equal(t, "/admin/reviews/rev-1/approve", r.URL.Path)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	t.Setenv("LAWYERDIRECT_API_URL", server.URL)
	t.Setenv("LAWADMIN_CONFIG_DIR", t.TempDir())

	output := captureOutput(t, func() {
		cmd := NewReviewsCommand()
		cmd.SetArgs([]string{"approve", "rev-1"})
		assert.NoError(t, cmd.Execute())
	})

	assert.Contains(t, output, "Review rev-1 approved")
}
