package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// defaults decodes built-in defaults and environment without reading a file.
func defaults(t *testing.T) *Config {
	t.Helper()
	cfg, err := decode(New(""))
	require.NoError(t, err)
	return cfg
}

func TestDefault(t *testing.T) {
	cfg := defaults(t)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, 100, cfg.MobileBreakpoint)
	assert.Equal(t, 300*time.Millisecond, cfg.DrawerTransition)
	assert.True(t, cfg.Color)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stackgen.yaml")
	content := `log_level: debug
log_file: stderr
listen_addr: 127.0.0.1:9090
mobile_breakpoint: 60
drawer_transition: 150ms
color: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(New(path))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "stderr", cfg.LogFile)
	assert.Equal(t, "127.0.0.1:9090", cfg.ListenAddr)
	assert.Equal(t, 60, cfg.MobileBreakpoint)
	assert.Equal(t, 150*time.Millisecond, cfg.DrawerTransition)
	assert.False(t, cfg.Color)
	assert.Equal(t, "dark", cfg.GlamourStyle)
}

func TestLoadClampsNegatives(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stackgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mobile_breakpoint: -5\ndrawer_transition: -1s\n"), 0644))

	cfg, err := Load(New(path))
	require.NoError(t, err)
	assert.Zero(t, cfg.MobileBreakpoint)
	assert.Zero(t, cfg.DrawerTransition)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(New(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, err)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("STACKGEN_LISTEN_ADDR", ":7070")
	assert.Equal(t, ":7070", defaults(t).ListenAddr)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "logs", "x.log"), expandHome("~/logs/x.log"))
	assert.Equal(t, "/var/log/x.log", expandHome("/var/log/x.log"))
}
