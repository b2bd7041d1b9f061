package display

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/planloom/planloom/internal/taskgraph"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	phaseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// statusStyles colors the status badge per state.
var statusStyles = map[taskgraph.Status]lipgloss.Style{
	taskgraph.StatusPending:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	taskgraph.StatusInProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	taskgraph.StatusBlocked:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	taskgraph.StatusDone:       lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	taskgraph.StatusSkipped:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
}

// StatusBadge renders a colored status label like "[in-progress]".
func StatusBadge(s taskgraph.Status) string {
	style, ok := statusStyles[s]
	if !ok {
		style = dimStyle
	}
	return style.Render("[" + s.String() + "]")
}
