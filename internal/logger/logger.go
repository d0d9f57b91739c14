// Package logger sets up the process-wide slog logger.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	timeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ecdc4"))
	levelStyle = map[slog.Level]lipgloss.Style{
		slog.LevelDebug: lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")),
		slog.LevelInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("#a8e6cf")),
		slog.LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ffe66d")),
		slog.LevelError: lipgloss.NewStyle().Foreground(lipgloss.Color("#ff6b6b")).Bold(true),
	}
	levelText = map[slog.Level]string{
		slog.LevelDebug: "DBG",
		slog.LevelInfo:  "INF",
		slog.LevelWarn:  "WRN",
		slog.LevelError: "ERR",
	}
)

// PrettyHandler writes one colored line per record.
type PrettyHandler struct {
	w     io.Writer
	level slog.Leveler
	attrs []slog.Attr
	mu    *sync.Mutex
}

// NewPrettyHandler creates a handler writing to w.
func NewPrettyHandler(w io.Writer, level slog.Leveler) *PrettyHandler {
	return &PrettyHandler{w: w, level: level, mu: &sync.Mutex{}}
}

func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(timeStyle.Render(r.Time.Format("15:04:05")))
	b.WriteByte(' ')
	b.WriteString(levelStyle[r.Level].Render(levelText[r.Level]))
	b.WriteByte(' ')
	b.WriteString(r.Message)

	write := func(a slog.Attr) bool {
		fmt.Fprintf(&b, " %s=%v", keyStyle.Render(a.Key), a.Value)
		return true
	}
	for _, a := range h.attrs {
		write(a)
	}
	r.Attrs(write)
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &next
}

// WithGroup is not supported; group names are dropped.
func (h *PrettyHandler) WithGroup(string) slog.Handler {
	return h
}

// ParseLevel maps "debug", "warn" and "error" to slog levels; anything else
// is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Init installs the default logger. format "json" selects slog's JSON
// handler, anything else the pretty handler.
func Init(w io.Writer, level slog.Level, format string) *slog.Logger {
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	} else {
		handler = NewPrettyHandler(w, level)
	}

	l := slog.New(handler)
	slog.SetDefault(l)
	return l
}
