package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FirstRunWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.OriginHour)
	assert.False(t, cfg.LLM.Enabled)

	// File exists afterwards, with owner-only permissions.
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestLoad_ParsesAndNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "origin_hour: 6\nllm:\n  enabled: true\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.OriginHour)
	assert.True(t, cfg.LLM.Enabled)
	// Unset fields backfilled.
	assert.Equal(t, "llama3.2", cfg.LLM.Model)
	assert.NotEmpty(t, cfg.DatabasePath)
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("origin_hour: [oops"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestNormalize_OutOfRangeOriginHour(t *testing.T) {
	cfg := &Config{OriginHour: 42}
	cfg.Normalize()
	assert.Equal(t, 7, cfg.OriginHour)
}
