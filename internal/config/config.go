// Package config loads the vshell configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is the prefix of all environment variables.
const Prefix = "VSHELL"

// ErrMissingParameter is returned if a required parameter is not set.
var ErrMissingParameter = errors.New("missing required parameter(s)")

// Config holds the startup parameters. Every field is read from the
// environment variable VSHELL_<FIELD>, for example VSHELL_LOG_LEVEL.
type Config struct {
	User     string
	Hostname string
	Tar      string
	Root     string `default:"filesystem"`
	Format   string `default:"auto"`
	Color    bool

	LogLevel       string `split_words:"true" default:"warn"`
	LogDevelopment bool   `split_words:"true"`
}

// Load loads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that all required parameters are set.
func (c *Config) Validate() error {
	var missing []string

	for _, param := range []struct {
		name  string
		value string
	}{
		{"user", c.User},
		{"hostname", c.Hostname},
		{"tar", c.Tar},
	} {
		if param.value == "" {
			missing = append(missing, param.name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingParameter, strings.Join(missing, ", "))
	}

	return nil
}
