package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{EnvChannelMap, EnvSelections, EnvPrefsDir, EnvVerbose} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte(
		"MEAMAP_CHANNEL_MAP=/maps/chip.json\nMEAMAP_VERBOSE=true\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/maps/chip.json", cfg.ChannelMapPath)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "", cfg.SelectionPath)
}

func TestEnvironmentWinsOverFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvChannelMap, "/env/map.json")
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("MEAMAP_CHANNEL_MAP=/file/map.json\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/env/map.json", cfg.ChannelMapPath)
}

func TestMissingEnvFileIsIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvSelections, "sel.json")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, "sel.json", cfg.SelectionPath)
	assert.False(t, cfg.Verbose)
}

func TestBadVerboseValue(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvVerbose, "loud")
	_, err := FromEnv()
	assert.Error(t, err)
}
