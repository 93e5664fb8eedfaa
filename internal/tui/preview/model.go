package preview

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/stylekit/internal/style"
)

// DefaultSelector scopes the previewed block when none is given.
const DefaultSelector = ".preview"

// Model is the interactive flag toggler. Bool flags flip and enum flags cycle
// through their options; text flags keep the value given at start.
type Model struct {
	template style.Template
	selector string
	rows     []style.FlagSpec

	initial style.Flags
	flags   style.Flags
	cursor  int

	keys     keyMap
	help     help.Model
	width    int
	quitting bool
}

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Reset  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Toggle, k.Reset},
		{k.Help, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle/cycle"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset flags"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewModel creates a preview for tmpl starting from flags.
func NewModel(tmpl style.Template, selector string, flags style.Flags) Model {
	if selector == "" {
		selector = DefaultSelector
	}

	var rows []style.FlagSpec
	for _, spec := range style.FlagSpecs() {
		if spec.Kind != style.FlagText {
			rows = append(rows, spec)
		}
	}

	return Model{
		template: tmpl,
		selector: selector,
		rows:     rows,
		initial:  flags,
		flags:    flags,
		keys:     defaultKeyMap(),
		help:     help.New(),
		width:    80,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Flags returns the current flag bag.
func (m Model) Flags() style.Flags {
	return m.flags
}

// CSS returns the current block scoped under the preview selector.
func (m Model) CSS() string {
	return style.Scope(m.selector, m.template.Sections(m.flags))
}

func (m *Model) moveUp() {
	if len(m.rows) == 0 {
		return
	}
	m.cursor--
	if m.cursor < 0 {
		m.cursor = len(m.rows) - 1
	}
}

func (m *Model) moveDown() {
	if len(m.rows) == 0 {
		return
	}
	m.cursor = (m.cursor + 1) % len(m.rows)
}

// toggle flips the selected bool flag or advances the selected enum flag to
// its next option, wrapping back to unset.
func (m *Model) toggle() {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return
	}
	spec := m.rows[m.cursor]
	current := m.flags.Value(spec.Name)

	switch spec.Kind {
	case style.FlagBool:
		next := "true"
		if current == "true" {
			next = "false"
		}
		_, _ = m.flags.Set(spec.Name, next)
	case style.FlagEnum:
		_, _ = m.flags.Set(spec.Name, nextOption(spec.Options, current))
	}
}

func nextOption(options []string, current string) string {
	if current == "" {
		if len(options) == 0 {
			return ""
		}
		return options[0]
	}
	for i, opt := range options {
		if opt == current && i+1 < len(options) {
			return options[i+1]
		}
	}
	return ""
}
