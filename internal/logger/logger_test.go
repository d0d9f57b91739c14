package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}

func TestPrettyHandler(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewPrettyHandler(&buf, slog.LevelInfo)).With("dir", "pm")
	l.Debug("hidden")
	l.Info("converted", "in", "zf", "out", "zhi")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "converted")
	assert.Contains(t, out, "zhi")
	assert.Contains(t, out, "pm")
}

func TestInitJSON(t *testing.T) {
	var buf bytes.Buffer
	l := Init(&buf, slog.LevelDebug, "json")
	l.Debug("rule", "name", "initial/zh")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "rule", rec["msg"])
	assert.Equal(t, "initial/zh", rec["name"])
}
