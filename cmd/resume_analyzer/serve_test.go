package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/config"
)

func TestServeListenAddr_FlagOverridesFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"listen_addr": ":9999"}`), 0o600))
	t.Setenv("LISTEN_ADDR", ":7070")

	require.NoError(t, serveCommand.Flags().Set("listen-addr", ":9090"))
	defer func() {
		serveListenAddr = ""
		serveCommand.Flags().Lookup("listen-addr").Changed = false
	}()

	cfg, err := loadMergedConfig(serveCommand, configPath, map[string]*string{
		"listen-addr": &serveListenAddr,
	})
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ListenAddr)
}

func TestServeListenAddr_EnvWhenNoFlag(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":7070")

	cfg, err := loadMergedConfig(serveCommand, "", map[string]*string{
		"listen-addr": &serveListenAddr,
	})
	require.NoError(t, err)

	cfg = cfg.MergeWithDefaults(config.Config{ListenAddr: ":8080"})
	assert.Equal(t, ":7070", cfg.ListenAddr)
}

func TestServeListenAddr_DefaultsWhenUnset(t *testing.T) {
	t.Setenv("LISTEN_ADDR", "")

	cfg, err := loadMergedConfig(serveCommand, "", map[string]*string{
		"listen-addr": &serveListenAddr,
	})
	require.NoError(t, err)

	cfg = cfg.MergeWithDefaults(config.Config{ListenAddr: ":8080"})
	assert.Equal(t, ":8080", cfg.ListenAddr)
}
