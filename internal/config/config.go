// Package config reads the backend configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// HTTP Server
	Port string

	// URL the backend is reachable at, used to build links in responses
	APIURL string

	// Database
	DBPath string

	// gin mode and log format
	GinMode   string
	LogFormat string
}

func Load() *Config {
	return &Config{
		Port:      getEnv("PORT", "8080"),
		APIURL:    getEnv("API_URL", "http://localhost:8080"),
		DBPath:    getEnv("DB_PATH", "data/gorm.db"),
		GinMode:   getEnv("GIN_MODE", "release"),
		LogFormat: getEnv("LOG_FORMAT", ""),
	}
}

// Validate returns an error if the configuration cannot be used to
// start the backend.
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port %q: must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if _, err := url.Parse(c.APIURL); err != nil {
		errs = append(errs, fmt.Sprintf("invalid API URL %q: %s", c.APIURL, err))
	}

	if c.DBPath == "" {
		errs = append(errs, "database path must not be empty")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration invalid: %s", strings.Join(errs, "; "))
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}

	return fallback
}
