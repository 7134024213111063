package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Output.Color)
	assert.False(t, cfg.Output.JSON)
	assert.Empty(t, cfg.Targets)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte("targets:\n  chrome: \"29\"\n  ie: \"9\"\noutput:\n  color: false\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chisel.yml"), content, 0o644))
	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "29", cfg.Targets["chrome"])
	assert.False(t, cfg.Output.Color)
}

func TestResolveTargets(t *testing.T) {
	cfg := &Config{Targets: map[string]string{"chrome": "29", "firefox": "21"}}

	versions, err := cfg.ResolveTargets()
	require.NoError(t, err)
	assert.False(t, versions.IsAnyTarget())
	assert.NotNil(t, versions.Get("chrome"))
}

func TestResolveTargetsInvalid(t *testing.T) {
	cfg := &Config{Targets: map[string]string{"netscape": "4"}}

	_, err := cfg.ResolveTargets()
	assert.Error(t, err)
}

func TestResolveTargetsEmpty(t *testing.T) {
	cfg := &Config{}

	versions, err := cfg.ResolveTargets()
	require.NoError(t, err)
	assert.True(t, versions.IsAnyTarget())
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
