package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

var v *viper.Viper

func init() {
	v = viper.New()

	// Set default values
	v.SetDefault("api.endpoint", "http://localhost:3001/api")
	v.SetDefault("dashboard.url", "https://admin.lawyerdirect.com")
	v.SetDefault("page.limit", 20)
	v.SetDefault("demo.fallback", false)
	v.SetDefault("log.level", "info")

	// Environment variables
	v.AutomaticEnv()
	v.BindEnv("api.endpoint", "LAWYERDIRECT_API_URL")
	v.BindEnv("dashboard.url", "LAWYERDIRECT_DASHBOARD_URL")
	v.BindEnv("page.limit", "LAWYERDIRECT_PAGE_LIMIT")
	v.BindEnv("demo.fallback", "LAWYERDIRECT_DEMO_FALLBACK")
	v.BindEnv("log.level", "LAWYERDIRECT_LOG_LEVEL")

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Look for config in the following paths
	configPaths := []string{
		".",
		"$HOME/.lawyerdirect",
		"/etc/lawyerdirect",
	}

	for _, path := range configPaths {
		expandedPath := os.ExpandEnv(path)
		v.AddConfigPath(expandedPath)
	}

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			panic(fmt.Sprintf("Fatal error reading config file: %s", err))
		}
		// Config file not found; ignore error and use defaults
	}
}

// GetAPIURL returns the admin API base URL
func GetAPIURL() string {
	return v.GetString("api.endpoint")
}

// GetDashboardURL returns the hosted web console URL
func GetDashboardURL() string {
	return v.GetString("dashboard.url")
}

// GetPageLimit returns the default page size for list commands
func GetPageLimit() int {
	return v.GetInt("page.limit")
}

// GetDemoFallback reports whether the reviews and tickets list
// commands may substitute the bundled sample data when the API
// returns nothing
func GetDemoFallback() bool {
	return v.GetBool("demo.fallback")
}

// GetLogLevel returns the configured logrus level name
func GetLogLevel() string {
	return v.GetString("log.level")
}
