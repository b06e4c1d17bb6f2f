package cmd

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mockTopLawyersResponse = `{"data":[
	{"id":"lwy-1","name":"Sarah Johnson","specialization":"Family Law","consultations":48,"revenue":960000,"rating":4.9},
	{"id":"lwy-2","name":"Michael Brown","specialization":"Corporate Law","consultations":35,"revenue":1225000,"rating":4.6},
	{"id":"lwy-3","name":"Jennifer Smith","specialization":"Criminal Defense","consultations":52,"revenue":780000,"rating":4.8}
]}`

// TestLawyersTop tests the leaderboard's default revenue ordering
func TestLawyersTop(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/admin/analytics/top-lawyers", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(mockTopLawyersResponse))
	}))
	defer server.Close()

	t.Setenv("LAWYERDIRECT_API_URL", server.URL)
	t.Setenv("LAWADMIN_CONFIG_DIR", t.TempDir())

	output := captureOutput(t, func() {
		cmd := NewLawyersCommand()
		cmd.SetArgs([]string{"top"})
		assert.NoError(t, cmd.Execute())
	})

	assert.Contains(t, output, "sorted by revenue (desc)")
	assert.Contains(t, output, "$12,250.00")

	// Highest revenue first.
	brown := strings.Index(output, "Michael Brown")
	johnson := strings.Index(output, "Sarah Johnson")
	smith := strings.Index(output, "Jennifer Smith")
	require.True(t, brown >= 0 && johnson >= 0 && smith >= 0)
	assert.Less(t, brown, johnson)
	assert.Less(t, johnson, smith)
}

// TestLawyerVerify tests the verification mutation
func TestLawyerVerify(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		assert.Equal(t, "/admin/lawyers/lwy-1/verify", r.URL.Path)

		var body struct {
			Status string `json:"status"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "VERIFIED", body.Status)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	t.Setenv("LAWYERDIRECT_API_URL", server.URL)
	t.Setenv("LAWADMIN_CONFIG_DIR", t.TempDir())

	output := captureOutput(t, func() {
		cmd := NewLawyersCommand()
		cmd.SetArgs([]string{"verify", "lwy-1"})
		assert.NoError(t, cmd.Execute())
	})

	assert.Contains(t, output, "Lawyer lwy-1 verified")
}

// TestLawyersListVerificationFilter tests that the filter reaches the
// query string while empty filters stay out
func TestLawyersListVerificationFilter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "PENDING", query.Get("verification"))
		_, present := query["search"]
		assert.False(t, present, "unset filters must not appear in the query")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[],"pagination":{"page":1,"limit":20,"total":0,"pages":0}}`))
	}))
	defer server.Close()

	t.Setenv("LAWYERDIRECT_API_URL", server.URL)
	t.Setenv("LAWADMIN_CONFIG_DIR", t.TempDir())

	output := captureOutput(t, func() {
		cmd := NewLawyersCommand()
		cmd.SetArgs([]string{"list", "--verification", "PENDING"})
		assert.NoError(t, cmd.Execute())
	})

	assert.Contains(t, output, "No lawyers found")
}
