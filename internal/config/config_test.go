package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dendrascience/vshell/internal/config"
)

func TestLoad(t *testing.T) {
	t.Setenv("VSHELL_USER", "alice")
	t.Setenv("VSHELL_HOSTNAME", "box")
	t.Setenv("VSHELL_TAR", "fs.tar")
	t.Setenv("VSHELL_LOG_LEVEL", "debug")
	t.Setenv("VSHELL_COLOR", "true")
	t.Setenv("VSHELL_LOG_DEVELOPMENT", "false")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "alice", cfg.User)
	assert.Equal(t, "box", cfg.Hostname)
	assert.Equal(t, "fs.tar", cfg.Tar)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Color)
	assert.False(t, cfg.LogDevelopment)
	assert.NoError(t, cfg.Validate())
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("VSHELL_COLOR", "maybe")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Config
		expected string
	}{
		{
			name:     "all missing",
			expected: "missing required parameter(s): user, hostname, tar",
		},
		{
			name:     "tar missing",
			cfg:      config.Config{User: "u", Hostname: "h"},
			expected: "missing required parameter(s): tar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.ErrorIs(t, err, config.ErrMissingParameter)
			assert.EqualError(t, err, tt.expected)
		})
	}
}
