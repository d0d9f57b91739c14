// Package phonetic holds the static key table of the PM chord layout: which
// group each key belongs to, how it is displayed and which plain letters it
// contributes to a PM token.
package phonetic

import "strings"

// Key identifies one physical input key. Letter keys use the letter itself;
// keys that are not plain characters use a symbolic name such as "space".
type Key string

// Symbolic key names.
const (
	KeySpace     Key = "space"
	KeyComma     Key = "comma"
	KeyPeriod    Key = "period"
	KeySemicolon Key = "semicolon"
	KeySlash     Key = "slash"
)

// Group is the color/role a key belongs to.
type Group string

const (
	GroupBlue   Group = "blue"   // A: consonant-like keys
	GroupGreen  Group = "green"  // B: vowel-like keys
	GroupYellow Group = "yellow" // C: punctuation and unused keys
	GroupRed    Group = "red"    // D: the space key
)

// Mark is a small annotation drawn next to a display fragment's primary text.
type Mark struct {
	Text   string
	Sup    bool // superscript, otherwise subscript
	Before bool // drawn before the primary text
}

// Display is the rendered form of a key: a primary fragment plus optional
// smaller marks.
type Display struct {
	Primary string
	Marks   []Mark
}

// Secondary returns the smaller co-displayed fragment. Keys with several
// marks report them joined by "/" in drawing order.
func (d Display) Secondary() (string, bool) {
	if len(d.Marks) == 0 {
		return "", false
	}
	parts := make([]string, len(d.Marks))
	for i, m := range d.Marks {
		parts[i] = m.Text
	}
	return strings.Join(parts, "/"), true
}

// HTML renders the fragment with <sub>/<sup> markup.
func (d Display) HTML() string {
	var b strings.Builder
	for _, m := range d.Marks {
		if m.Before {
			writeMark(&b, m)
		}
	}
	b.WriteString(d.Primary)
	for _, m := range d.Marks {
		if !m.Before {
			writeMark(&b, m)
		}
	}
	return b.String()
}

func writeMark(b *strings.Builder, m Mark) {
	tag := "sub"
	if m.Sup {
		tag = "sup"
	}
	b.WriteString("<" + tag + ">" + m.Text + "</" + tag + ">")
}

// Entry is the table record of one key.
type Entry struct {
	Key     Key
	Group   Group
	Display Display
	Plain   string
	// HasPlain is false for keys that never contribute to a token.
	HasPlain bool
}
