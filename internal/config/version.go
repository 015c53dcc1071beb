package config

import (
	"os"
	"strings"
)

// GetVersion returns the service version: the APP_VERSION environment
// variable when set by CI/CD, otherwise the VERSION file in the project
// root, otherwise a development fallback.
func GetVersion() string {
	if envVersion := os.Getenv("APP_VERSION"); envVersion != "" {
		return envVersion
	}

	if content, err := os.ReadFile("VERSION"); err == nil {
		if v := strings.TrimSpace(string(content)); v != "" {
			return v
		}
	}

	return "0.1.0-dev"
}
