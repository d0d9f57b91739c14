package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/f3rmion/pmpy/internal/config"
	"github.com/f3rmion/pmpy/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI with an empty config directory.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	return runIn(t, dir, args...)
}

func runIn(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config", dir}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestPyCommand(t *testing.T) {
	out, err := run(t, "py", "zf", "b.", "y")
	require.NoError(t, err)
	assert.Contains(t, out, "zf\tzhi\n")
	assert.Contains(t, out, "b.\tbeng\n")
	assert.Contains(t, out, "y\t\n")
}

func TestPyCommandTrace(t *testing.T) {
	out, err := run(t, "py", "--trace", "zf")
	require.NoError(t, err)
	assert.Contains(t, out, "initial/zh")
	assert.Contains(t, out, "bare/add-i")
}

func TestPmCommandJSON(t *testing.T) {
	out, err := run(t, "--format", "json", "pm", "zhi", "qq")
	require.NoError(t, err)

	var results []result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "z-f", results[0].Output)
	assert.Equal(t, []string{"x", "c"}, results[0].Keys)
	assert.Equal(t, "zf", results[0].Chord)
	assert.Empty(t, results[0].Steps)
	assert.NotEmpty(t, results[1].Error)
}

func TestChordCommand(t *testing.T) {
	out, err := run(t, "--format", "json", "chord", "l", "k", "space", "t")
	require.NoError(t, err)

	var results []result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "dyng'", results[0].Chord)
	assert.Equal(t, "ding", results[0].Output)
	assert.Equal(t, []string{"t", "space", "k", "l"}, results[0].Keys)

	_, err = run(t, "chord", "b", "7")
	assert.Error(t, err)
}

func TestChordHelpExample(t *testing.T) {
	long := (&app{}).chordCmd().Long
	assert.Contains(t, long, "pmpy chord x c h k l   # zfuang' → zhuang")

	out, err := run(t, "--format", "json", "chord", "x", "c", "h", "k", "l")
	require.NoError(t, err)
	var results []result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "zfuang'", results[0].Chord)
	assert.Equal(t, "zhuang", results[0].Output)
}

func TestKeysCommand(t *testing.T) {
	out, err := run(t, "--format", "json", "keys")
	require.NoError(t, err)

	var rows []keyRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	assert.Len(t, rows, 31)
	for _, r := range rows {
		if r.Key == "q" {
			assert.Empty(t, r.Plain)
			assert.Zero(t, r.Position)
		}
		if r.Key == "s" {
			assert.Equal(t, 1, r.Position)
		}
	}

	out, err = run(t, "keys")
	require.NoError(t, err)
	assert.Contains(t, out, "green")
}

func TestHanziCommand(t *testing.T) {
	out, err := run(t, "hanzi", "中x")
	require.NoError(t, err)
	assert.Contains(t, out, "中 zhong\tz-f-u-n-g'")
	assert.Contains(t, out, "no reading")
}

func TestExportCommand(t *testing.T) {
	db := filepath.Join(t.TempDir(), "chords.db")
	out, err := run(t, "export", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "chords written to")

	ctx := context.Background()
	st, err := store.Open(ctx, db)
	require.NoError(t, err)
	defer st.Close()

	c, err := st.Get(ctx, "zhuang")
	require.NoError(t, err)
	assert.Equal(t, "zfuang'", c.Token)
	assert.True(t, c.Exact)

	n, err := st.Count(ctx)
	require.NoError(t, err)
	assert.Greater(t, n, 350)
}

func TestInitCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "pmpy")
	out, err := runIn(t, dir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, config.FileName)

	_, err = os.Stat(filepath.Join(dir, config.FileName))
	require.NoError(t, err)

	_, err = runIn(t, dir, "init")
	assert.Error(t, err)
	_, err = runIn(t, dir, "init", "--force")
	assert.NoError(t, err)
}

func TestConfigFileSetsFormat(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, config.Save(filepath.Join(dir, config.FileName), &config.Config{
		Format:   config.FormatJSON,
		Database: "chords.db",
	}))

	out, err := runIn(t, dir, "py", "pfa")
	require.NoError(t, err)
	var results []result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	assert.Equal(t, "ma", results[0].Output)
}

func TestConfigFileDisablesColor(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, config.Save(filepath.Join(dir, config.FileName), &config.Config{
		Format:   config.FormatText,
		Database: "chords.db",
		Color:    false,
	}))

	out, err := runIn(t, dir, "chord", "x")
	require.NoError(t, err)
	assert.Contains(t, out, "zzh\n")
	assert.NotContains(t, out, "\x1b[")

	out, err = runIn(t, dir, "keys")
	require.NoError(t, err)
	assert.Contains(t, out, "blue\n")
	assert.NotContains(t, out, "\x1b[")
}

func TestInvalidFormat(t *testing.T) {
	_, err := run(t, "--format", "xml", "py", "b")
	assert.ErrorIs(t, err, config.ErrInvalid)
}
