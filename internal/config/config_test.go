package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	cfg := &Config{Format: FormatJSON, Trace: true, Database: "x.db"}
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("trace: true\n"), 0644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.True(t, got.Trace)
	assert.Equal(t, FormatText, got.Format)
	assert.True(t, got.Color)
	assert.Equal(t, "chords.db", got.Database)
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)

	require.NoError(t, os.WriteFile(path, []byte("format: xml\n"), 0644))
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalid)

	require.NoError(t, os.WriteFile(path, []byte("format: [\n"), 0644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestLoadDirMissingFile(t *testing.T) {
	got, err := LoadDir(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), got)
}
