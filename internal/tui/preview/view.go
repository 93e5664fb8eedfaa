package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/stylekit/internal/style"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	activeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	cssStyle      = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// View renders the flag list, the resolved CSS and the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		titleStyle.Render(fmt.Sprintf("stylekit preview • %s <%s>", m.template.Name, m.template.Element)),
		sectionStyle.Render("Flags"),
		m.renderRows(),
		sectionStyle.Render("CSS"),
		cssStyle.Render(strings.TrimRight(m.CSS(), "\n")),
		m.help.View(m.keys),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderRows() string {
	lines := make([]string, 0, len(m.rows))
	for i, spec := range m.rows {
		line := m.renderRow(spec)
		if i == m.cursor {
			line = selectedStyle.Render("› " + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderRow(spec style.FlagSpec) string {
	value := m.flags.Value(spec.Name)

	switch spec.Kind {
	case style.FlagBool:
		if value == "true" {
			return activeStyle.Render("[x] " + spec.Name)
		}
		return "[ ] " + spec.Name
	default:
		if value == "" {
			return fmt.Sprintf("%s: %s", spec.Name, mutedStyle.Render("default ("+spec.Default+")"))
		}
		return fmt.Sprintf("%s: %s", spec.Name, activeStyle.Render(value))
	}
}
