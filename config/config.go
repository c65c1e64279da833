// Package config loads and validates the process configuration. The
// configuration is read once at startup and never re-read per request.
package config

import (
	"os"

	"github.com/pkg/errors"

	"github.com/edgewave/hlsgate/env"
)

// Config holds everything the server needs from the environment.
type Config struct {
	// Address the HTTP listener binds to.
	Address string
	// HLSRoot is the directory holding manifests and segments.
	HLSRoot string
	// SigningSecret is the shared secret signed URLs are keyed by. Never
	// logged.
	SigningSecret string

	LogLevel  string
	LogFormat string
}

// Load reads configuration from the environment.
func Load() Config {
	return Config{
		Address:       env.Get("ADDRESS", "0.0.0.0:8080"),
		HLSRoot:       env.Get("HLS_ROOT", "/var/lib/hlsgate/live"),
		SigningSecret: os.Getenv("EDGE_SIGNING_SECRET"),
		LogLevel:      env.Get("LOG_LEVEL", "info"),
		LogFormat:     env.Get("LOG_FORMAT", "json"),
	}
}

// Validate fails fast on configuration the server cannot run with.
func (c Config) Validate() error {
	if c.SigningSecret == "" {
		return errors.Errorf("EDGE_SIGNING_SECRET environment variable is required")
	}
	info, err := os.Stat(c.HLSRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Errorf("HLS root directory does not exist: %s", c.HLSRoot)
		}
		return errors.Wrapf(err, "failed to stat HLS root %s", c.HLSRoot)
	}
	if !info.IsDir() {
		return errors.Errorf("HLS root is not a directory: %s", c.HLSRoot)
	}
	return nil
}
