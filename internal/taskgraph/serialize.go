package taskgraph

import (
	"fmt"
	"strings"
)

// Serialize renders a Graph back into the canonical plan text. It is
// the structural inverse of Parse: parsing the output reproduces the
// same graph, for any graph reachable via Parse or a status transition.
//
// Phases are emitted in stored order and tasks in each phase's TaskIDs
// order; neither is recomputed, so manual reordering survives a
// round trip. Label lines are emitted only for fields that diverge
// from their defaults, keeping diffs quiet.
func Serialize(g *Graph) string {
	var b strings.Builder

	if g.Name != "" {
		fmt.Fprintf(&b, "# %s\n\n", g.Name)
	}

	for _, phase := range g.Phases {
		if phase.Name != "" {
			fmt.Fprintf(&b, "## Phase %d: %s\n\n", phase.Number, phase.Name)
		} else {
			fmt.Fprintf(&b, "## Phase %d\n\n", phase.Number)
		}

		for _, id := range phase.TaskIDs {
			task := g.Tasks[id]
			if task == nil {
				continue
			}
			writeTask(&b, task)
		}
	}

	return b.String()
}

func writeTask(b *strings.Builder, task *Task) {
	marker := " "
	if task.Status.IsTerminal() {
		marker = "x"
	}
	fmt.Fprintf(b, "- [%s] %s %s\n", marker, task.ID, task.Title)

	if task.Status != StatusPending {
		fmt.Fprintf(b, "  - Status: %s\n", task.Status)
	}
	if task.Type != TypeImplement {
		fmt.Fprintf(b, "  - Type: %s\n", task.Type)
	}
	if task.Priority != DefaultPriority {
		fmt.Fprintf(b, "  - Priority: %d\n", task.Priority)
	}
	if task.Estimate != "" {
		fmt.Fprintf(b, "  - Estimate: %s\n", task.Estimate)
	}
	if len(task.Files) > 0 {
		fmt.Fprintf(b, "  - Files: %s\n", strings.Join(task.Files, ", "))
	}
	if len(task.Implements) > 0 {
		fmt.Fprintf(b, "  - Implements: %s\n", strings.Join(task.Implements, ", "))
	}
	if len(task.DependsOn) > 0 {
		fmt.Fprintf(b, "  - Depends On: %s\n", strings.Join(task.DependsOn, ", "))
	}

	if task.Description != "" {
		for _, line := range strings.Split(task.Description, "\n") {
			if line == "" {
				b.WriteString("\n")
			} else {
				fmt.Fprintf(b, "  %s\n", line)
			}
		}
	}

	b.WriteString("\n")
}
