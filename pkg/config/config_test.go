package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	cfg := Load("", "")
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, 8080, cfg.Serve.Port)
	require.Equal(t, "", cfg.Serve.Hostname)

	// overrides take precedence over defaults
	cfg = Load("", "serve.port:9000,log_level:debug")
	require.Equal(t, 9000, cfg.Serve.Port)
	require.Equal(t, "debug", cfg.LogLevel)
}
