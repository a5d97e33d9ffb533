package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every environment variable read by the site binaries.
const EnvPrefix = "VORA_"

// ParseEnv loads configuration from VORA_-prefixed environment variables.
// Struct tags name variables without the prefix.
func ParseEnv(target any) error {
	return ParseEnvWithLookup(target, nil)
}

// ParseEnvWithLookup is ParseEnv with an explicit environment, used by tests
// and commands that assemble their own environment.
func ParseEnvWithLookup(target any, environment map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix}
	if environment != nil {
		opts.Environment = environment
	}
	if err := env.ParseWithOptions(target, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
