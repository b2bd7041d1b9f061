package taskgraph

import "fmt"

// DiagnosticSeverity indicates how serious a parse or integrity finding is.
type DiagnosticSeverity string

const (
	// SeverityWarning marks a recoverable finding; the document was
	// still usable after local repair (a dropped reference, a default
	// substituted for a bad value).
	SeverityWarning DiagnosticSeverity = "warning"

	// SeverityError marks a plan-authoring defect worth surfacing
	// prominently, such as a self-dependency.
	SeverityError DiagnosticSeverity = "error"
)

// Diagnostic describes a finding made while parsing or checking a plan
// document. Findings are data for the caller to display, never reasons
// to abort: the parser always degrades to "do less".
type Diagnostic struct {
	// Severity is warning or error.
	Severity DiagnosticSeverity `json:"severity"`

	// Line is the 1-based source line the finding refers to, when known.
	Line int `json:"line,omitempty"`

	// TaskID is the task the finding relates to, when known.
	TaskID string `json:"task_id,omitempty"`

	// Message is the human-readable description.
	Message string `json:"message"`
}

// String formats the diagnostic for terminal output.
func (d Diagnostic) String() string {
	loc := ""
	if d.Line > 0 {
		loc = fmt.Sprintf(" (line %d)", d.Line)
	}
	if d.TaskID != "" {
		return fmt.Sprintf("%s: task %s: %s%s", d.Severity, d.TaskID, d.Message, loc)
	}
	return fmt.Sprintf("%s: %s%s", d.Severity, d.Message, loc)
}

// IsError returns true if the diagnostic is an error.
func (d Diagnostic) IsError() bool {
	return d.Severity == SeverityError
}

// checkReferences prunes invalid dependency references from every task
// and reports each removal. A self-reference is an authoring error; a
// reference to a task that does not exist is dropped with a warning so
// hand-edited plans degrade gracefully instead of failing the parse.
func checkReferences(g *Graph) []Diagnostic {
	var diags []Diagnostic
	for _, id := range g.Order {
		task := g.Tasks[id]
		kept := task.DependsOn[:0]
		for _, depID := range task.DependsOn {
			switch {
			case depID == task.ID:
				diags = append(diags, Diagnostic{
					Severity: SeverityError,
					TaskID:   task.ID,
					Message:  "task depends on itself; dependency dropped",
				})
			case g.Tasks[depID] == nil:
				diags = append(diags, Diagnostic{
					Severity: SeverityWarning,
					TaskID:   task.ID,
					Message:  fmt.Sprintf("dependency %q does not exist; dependency dropped", depID),
				})
			default:
				kept = append(kept, depID)
			}
		}
		if len(kept) == 0 {
			task.DependsOn = nil
		} else {
			task.DependsOn = kept
		}
	}
	return diags
}
