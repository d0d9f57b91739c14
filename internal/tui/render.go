package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/pmpy/internal/phonetic"
	"github.com/f3rmion/pmpy/internal/romanize"
	"github.com/mattn/go-runewidth"
)

// RenderDisplay draws a key's display fragment: marks drawn before the
// primary text, the primary text in its group color, then the rest. With
// color off the fragment is plain text.
func RenderDisplay(e phonetic.Entry, color bool) string {
	var before, after []string
	for _, m := range e.Display.Marks {
		if m.Before {
			before = append(before, m.Text)
		} else {
			after = append(after, m.Text)
		}
	}
	if !color {
		return strings.Join(before, "") + e.Display.Primary + strings.Join(after, "")
	}
	primary := groupStyle(e.Group).Render(e.Display.Primary)
	return MarkStyle.Render(strings.Join(before, "")) + primary + MarkStyle.Render(strings.Join(after, ""))
}

func groupStyle(g phonetic.Group) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(GroupColor(g)).Bold(true)
}

// KeyTable lists every key grouped by color: key name, display fragment
// and plain value.
func KeyTable(color bool) string {
	var b strings.Builder
	for _, g := range phonetic.Groups() {
		if color {
			b.WriteString(groupStyle(g).Render(string(g)))
		} else {
			b.WriteString(string(g))
		}
		b.WriteByte('\n')
		for _, e := range phonetic.Keys(g) {
			plain := "-"
			if e.HasPlain {
				plain = e.Plain
			}
			marks, _ := e.Display.Secondary()
			fmt.Fprintf(&b, "  %s %s %s %s\n",
				runewidth.FillRight(string(e.Key), 10),
				runewidth.FillRight(e.Display.Primary, 4),
				runewidth.FillRight(marks, 8),
				plain,
			)
		}
	}
	return b.String()
}

// ChordLine renders a chord as its keys' display fragments in canonical
// order.
func ChordLine(keys []phonetic.Key, color bool) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if e, ok := phonetic.Lookup(k); ok {
			parts = append(parts, RenderDisplay(e, color))
		}
	}
	return strings.Join(parts, " ")
}

// Steps renders a rule trace as aligned rows.
func Steps(steps []romanize.Step) string {
	width := 0
	for _, s := range steps {
		width = max(width, runewidth.StringWidth(s.Rule))
	}

	var b strings.Builder
	for _, s := range steps {
		fmt.Fprintf(&b, "  %s %s → %s\n", HelpStyle.Render(runewidth.FillRight(s.Rule, width)), s.Before, s.After)
	}
	return b.String()
}
