package cmd

import (
	"os"

	"github.com/lawyerdirect/lawadmin/config"
	"github.com/lawyerdirect/lawadmin/internal/api"
	"github.com/lawyerdirect/lawadmin/internal/auth"
)

// apiBaseURL resolves the admin API endpoint. The environment variable
// takes precedence, then the current profile, then the config default.
func apiBaseURL() string {
	if endpoint := os.Getenv("LAWYERDIRECT_API_URL"); endpoint != "" {
		return endpoint
	}

	pm := NewProfileManager()
	if err := pm.Load(); err == nil {
		if current := pm.Current(); current != nil && current.Endpoint != "" {
			return current.Endpoint
		}
	}

	return config.GetAPIURL()
}

// newAPIClient builds the API client over the credentials store.
func newAPIClient() *api.Client {
	return api.NewClient(apiBaseURL(), auth.NewStore())
}
