package config

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that every field the server needs is populated.
// Development and test fall back to local defaults, so failures here
// normally only occur in CI and production.
func ValidateConfig(cfg *Config) error {
	required := map[string]string{
		"server host": cfg.ServerHost,
		"server port": cfg.ServerPort,
		"db host":     cfg.DBHost,
		"db port":     cfg.DBPort,
		"db user":     cfg.DBUser,
		"db name":     cfg.DBName,
		"db ssl mode": cfg.DBSSLMode,
	}

	var errors []string
	for field, value := range required {
		if value == "" {
			errors = append(errors, fmt.Sprintf("required configuration %s is not set", field))
		}
	}

	if cfg.DBPassword == "" {
		errors = append(errors, "db password is not set")
	}

	// Redis is reachable either via discrete host/port or a full URL
	if cfg.RedisURL == "" && (cfg.RedisHost == "" || cfg.RedisPort == "") {
		errors = append(errors, "redis host/port or redis url must be set")
	}

	if len(errors) > 0 {
		sort.Strings(errors)
		return fmt.Errorf("%s", strings.Join(errors, "\n"))
	}

	return nil
}
