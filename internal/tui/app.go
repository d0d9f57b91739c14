package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/pmpy/internal/phonetic"
	"github.com/f3rmion/pmpy/internal/romanize"
)

// Direction selects which way the converter runs.
type Direction int

const (
	PMToPinyin Direction = iota
	PinyinToPM
)

func (d Direction) String() string {
	if d == PinyinToPM {
		return "pinyin → pm"
	}
	return "pm → pinyin"
}

// AppModel is the interactive converter: type a syllable, see it converted
// as you type.
type AppModel struct {
	input     textinput.Model
	direction Direction
	trace     bool
	history   []string
}

// NewApp creates the converter model.
func NewApp(trace bool) AppModel {
	ti := textinput.New()
	ti.Placeholder = "zfuang'"
	ti.CharLimit = 16
	ti.Width = 20
	ti.Focus()

	return AppModel{input: ti, trace: trace}
}

// Direction returns the current conversion direction.
func (m AppModel) Direction() Direction { return m.direction }

// History returns committed conversions, oldest first.
func (m AppModel) History() []string { return m.history }

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			if m.direction == PMToPinyin {
				m.direction = PinyinToPM
			} else {
				m.direction = PMToPinyin
			}
			return m, nil
		case "ctrl+t":
			m.trace = !m.trace
			return m, nil
		case "enter":
			in := strings.ToLower(strings.TrimSpace(m.input.Value()))
			if in != "" {
				out, _ := m.convert(in)
				m.history = append(m.history, in+" → "+out)
			}
			m.input.SetValue("")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m AppModel) convert(in string) (string, []romanize.Step) {
	if m.direction == PinyinToPM {
		return romanize.TracePinyinToPM(in)
	}
	return romanize.TracePMToPinyin(in)
}

// View renders the model
func (m AppModel) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("pmpy"))
	b.WriteString(" ")
	b.WriteString(SubtitleStyle.Render(m.direction.String()))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	in := strings.ToLower(strings.TrimSpace(m.input.Value()))
	if in != "" {
		out, steps := m.convert(in)
		var body strings.Builder
		body.WriteString(LabelStyle.Render("result") + ValueStyle.Render(out) + "\n")
		if m.direction == PinyinToPM {
			if keys, err := phonetic.Resolve(out); err != nil {
				body.WriteString(LabelStyle.Render("keys") + ErrorStyle.Render(err.Error()))
			} else {
				body.WriteString(LabelStyle.Render("keys") + ChordLine(keys, true))
			}
		}
		if m.trace && len(steps) > 0 {
			body.WriteString("\n" + Steps(steps))
		}
		b.WriteString(BoxStyle.Render(strings.TrimRight(body.String(), "\n")))
		b.WriteString("\n")
	}

	for _, h := range m.history {
		b.WriteString(HelpStyle.Render(h) + "\n")
	}
	b.WriteString("\n" + HelpStyle.Render("tab: switch direction • ctrl+t: trace • enter: commit • esc: quit"))
	return b.String()
}
