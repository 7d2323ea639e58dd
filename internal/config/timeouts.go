package config

import (
	"os"
	"time"
)

// Timeouts holds configurable timeout values.
// These values can be customized via environment variables.
type Timeouts struct {
	Step     time.Duration // Upper bound for a single provisioning step
	Rollback time.Duration // Upper bound for a single rollback delete
	HTTP     time.Duration // Timeout for Databricks REST calls
}

// LoadTimeouts loads timeout configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - ADBVNET_TIMEOUT_STEP (default: 30m)
//   - ADBVNET_TIMEOUT_ROLLBACK (default: 30m)
//   - ADBVNET_TIMEOUT_HTTP (default: 2m)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		Step:     parseDuration("ADBVNET_TIMEOUT_STEP", 30*time.Minute),
		Rollback: parseDuration("ADBVNET_TIMEOUT_ROLLBACK", 30*time.Minute),
		HTTP:     parseDuration("ADBVNET_TIMEOUT_HTTP", 2*time.Minute),
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		return defaultVal
	}

	return d
}
