// Package display renders plans, orderings, and graph views for
// terminal output. It only re-shapes data handed to it; all graph
// computation happens in the graph package.
package display

import (
	"fmt"
	"strings"

	"github.com/planloom/planloom/internal/graph"
	"github.com/planloom/planloom/internal/taskgraph"
)

// Plan renders the full phased checklist with status badges and the
// metadata summary line.
func Plan(g *taskgraph.Graph) string {
	var b strings.Builder

	if g.Name != "" {
		b.WriteString(titleStyle.Render(g.Name) + "\n")
	}
	fmt.Fprintf(&b, "%s\n\n", dimStyle.Render(summary(g.Meta)))

	for _, phase := range g.Phases {
		name := fmt.Sprintf("Phase %d", phase.Number)
		if phase.Name != "" {
			name += ": " + phase.Name
		}
		b.WriteString(phaseStyle.Render(name) + "\n")

		for _, id := range phase.TaskIDs {
			task := g.Tasks[id]
			if task == nil {
				continue
			}
			fmt.Fprintf(&b, "  %s %s %s",
				idStyle.Render(task.ID), task.Title, StatusBadge(task.Status))
			if len(task.DependsOn) > 0 {
				fmt.Fprintf(&b, " %s", dimStyle.Render("needs "+strings.Join(task.DependsOn, ", ")))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// PlanLine renders a one-line listing entry for a plan.
func PlanLine(g *taskgraph.Graph) string {
	name := g.Name
	if name == "" {
		name = g.ID
	}
	return fmt.Sprintf("%s %s %s\n",
		idStyle.Render(g.ID), name,
		dimStyle.Render(fmt.Sprintf("%d/%d done", g.Meta.Done, g.Meta.Total)))
}

func summary(m taskgraph.Metadata) string {
	return fmt.Sprintf("%d tasks: %d done, %d in progress, %d blocked, %d pending, %d skipped",
		m.Total, m.Done, m.InProgress, m.Blocked, m.Pending, m.Skipped)
}

// Task renders a single task in full, for "next" style output.
func Task(t *taskgraph.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s\n", idStyle.Render(t.ID), titleStyle.Render(t.Title), StatusBadge(t.Status))
	fmt.Fprintf(&b, "  type %s, priority %d", t.Type, t.Priority)
	if t.Estimate != "" {
		fmt.Fprintf(&b, ", estimate %s", t.Estimate)
	}
	b.WriteString("\n")
	if len(t.DependsOn) > 0 {
		fmt.Fprintf(&b, "  depends on: %s\n", strings.Join(t.DependsOn, ", "))
	}
	if len(t.Files) > 0 {
		fmt.Fprintf(&b, "  files: %s\n", strings.Join(t.Files, ", "))
	}
	if t.Description != "" {
		for _, line := range strings.Split(t.Description, "\n") {
			fmt.Fprintf(&b, "  %s\n", line)
		}
	}
	return b.String()
}

// Order renders a topological ordering, one task per line.
func Order(tasks []*taskgraph.Task) string {
	var b strings.Builder
	for i, t := range tasks {
		fmt.Fprintf(&b, "%2d. %s %s %s\n",
			i+1, idStyle.Render(t.ID), t.Title, StatusBadge(t.Status))
	}
	return b.String()
}

// Cycles renders detected dependency cycles, or a clean bill when
// there are none.
func Cycles(cycles [][]string) string {
	if len(cycles) == 0 {
		return "no dependency cycles detected\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", errorStyle.Render(fmt.Sprintf("%d dependency cycle(s) detected:", len(cycles))))
	for _, cycle := range cycles {
		fmt.Fprintf(&b, "  %s\n", strings.Join(cycle, " -> "))
	}
	return b.String()
}

// GraphView renders the node/edge projection as an adjacency listing.
func GraphView(view graph.View) string {
	deps := make(map[string][]string, len(view.Nodes))
	for _, edge := range view.Edges {
		deps[edge.From] = append(deps[edge.From], edge.To)
	}

	var b strings.Builder
	for _, node := range view.Nodes {
		fmt.Fprintf(&b, "%s %s %s", idStyle.Render(node.ID), node.Label, StatusBadge(node.Status))
		if targets := deps[node.ID]; len(targets) > 0 {
			fmt.Fprintf(&b, " %s", dimStyle.Render("-> "+strings.Join(targets, ", ")))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Diagnostics renders parser findings for stderr.
func Diagnostics(diags []taskgraph.Diagnostic) string {
	var b strings.Builder
	for _, d := range diags {
		style := warnStyle
		if d.IsError() {
			style = errorStyle
		}
		b.WriteString(style.Render(d.String()) + "\n")
	}
	return b.String()
}
