package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	p := Load(t.TempDir())
	assert.Equal(t, "", p.String(KeyChannelMap))
	assert.Equal(t, 7, p.Int(KeyLastWell, 7))
}

func TestSaveAndReload(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	p := Load(dir)
	p.SetString(KeyChannelMap, "/data/map.json")
	p.SetInt(KeyLastWell, 12)
	require.NoError(t, p.Save())
	assert.FileExists(t, p.Path())

	again := Load(dir)
	assert.Equal(t, "/data/map.json", again.String(KeyChannelMap))
	assert.Equal(t, 12, again.Int(KeyLastWell, 0))
}

func TestLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, prefsFile), []byte("null"), 0o644))

	p := Load(dir)
	p.SetString(KeySelectionFile, "sel.json")
	assert.Equal(t, "sel.json", p.String(KeySelectionFile))
}

func TestTypeMismatchFallsBack(t *testing.T) {
	p := Load(t.TempDir())
	p.SetString(KeyLastWell, "five")
	assert.Equal(t, 3, p.Int(KeyLastWell, 3))
	p.SetInt(KeyChannelMap, 1)
	assert.Equal(t, "", p.String(KeyChannelMap))
}
