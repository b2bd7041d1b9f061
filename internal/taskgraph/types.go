package taskgraph

import "time"

// Status represents the current state of a task.
type Status string

const (
	// StatusPending indicates the task is waiting to be worked on.
	StatusPending Status = "pending"

	// StatusInProgress indicates the task is actively being worked on.
	StatusInProgress Status = "in-progress"

	// StatusBlocked indicates the task is waiting on unfinished dependencies.
	StatusBlocked Status = "blocked"

	// StatusDone indicates the task finished successfully.
	StatusDone Status = "done"

	// StatusSkipped indicates the task was deliberately not done.
	StatusSkipped Status = "skipped"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsValid returns true if this is a recognized status value.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusBlocked, StatusDone, StatusSkipped:
		return true
	default:
		return false
	}
}

// IsTerminal returns true if this status represents a final state.
func (s Status) IsTerminal() bool {
	return s == StatusDone || s == StatusSkipped
}

// Type classifies the kind of work a task represents. It is informational
// only and never affects graph algorithms.
type Type string

const (
	TypeImplement Type = "implement"
	TypeTest      Type = "test"
	TypeDocument  Type = "document"
	TypeRefactor  Type = "refactor"
	TypeReview    Type = "review"
)

// String returns the string representation of the task type.
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if this is a recognized task type.
func (t Type) IsValid() bool {
	switch t {
	case TypeImplement, TypeTest, TypeDocument, TypeRefactor, TypeReview:
		return true
	default:
		return false
	}
}

// DefaultPriority is assigned to tasks that declare no priority.
// Lower values sort first among otherwise-equal candidates.
const DefaultPriority = 99

// Task is a single unit of work within a plan.
//
// The ID is a hierarchical dotted identifier ("2.1" is phase 2, item 1)
// and is immutable after creation. Status is mutated only through the
// transition package; everything else is carried through parse and
// serialize unchanged.
type Task struct {
	// ID uniquely identifies this task within the plan.
	ID string `json:"id"`

	// Title is the short summary from the task header line.
	Title string `json:"title"`

	// Description is the free text following the header and labels.
	Description string `json:"description,omitempty"`

	// Status is the current state of the task.
	Status Status `json:"status"`

	// Type classifies the work (implement, test, document, ...).
	Type Type `json:"type"`

	// Priority orders otherwise-equal candidates; lower runs first.
	Priority int `json:"priority"`

	// Estimate is an opaque effort estimate ("2h", "1d"), carried verbatim.
	Estimate string `json:"estimate,omitempty"`

	// DependsOn lists the IDs of tasks that must be done first.
	DependsOn []string `json:"depends_on,omitempty"`

	// Files lists the files this task is expected to touch.
	Files []string `json:"files,omitempty"`

	// Implements lists traceability references, carried verbatim.
	Implements []string `json:"implements,omitempty"`

	// CompletedAt is when the task reached done.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Phase is a named, ordered grouping of task IDs. A task belongs to
// exactly one phase, determined by its position in the source document.
type Phase struct {
	// Number is the numeric phase identifier from the header.
	Number int `json:"number"`

	// Name is the free-text phase name; empty for implicit phases.
	Name string `json:"name,omitempty"`

	// TaskIDs holds the phase's tasks in document order. This stored
	// order is authoritative for serialization, even when it diverges
	// from numeric ID order.
	TaskIDs []string `json:"task_ids"`
}

// Metadata is a cached summary of the task collection. It is never
// authored directly: always recompute it via ComputeMetadata after a
// mutation. The per-status counts sum to Total.
type Metadata struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Blocked    int `json:"blocked"`
	Done       int `json:"done"`
	Skipped    int `json:"skipped"`
}

// Graph is the aggregate plan: an identifier, display name, ordered
// phases, the task collection keyed by ID, and derived metadata.
// It is created once per parse and lives in memory for the duration
// of a session; the source document is the durable state.
type Graph struct {
	// ID is the plan identifier supplied by the caller at parse time.
	ID string `json:"id"`

	// Name is the plan display name from the document heading.
	Name string `json:"name,omitempty"`

	// Phases holds the phase sections in document order.
	Phases []Phase `json:"phases"`

	// Tasks is the task collection keyed by task ID.
	Tasks map[string]*Task `json:"tasks"`

	// Order records task IDs in document order. Algorithms use it for
	// stable tie-breaking; serialization uses the per-phase lists.
	Order []string `json:"order"`

	// Meta is the derived summary, recomputed after every mutation.
	Meta Metadata `json:"meta"`
}

// NewGraph creates an empty Graph with the given plan identifier.
func NewGraph(planID string) *Graph {
	return &Graph{
		ID:    planID,
		Tasks: make(map[string]*Task),
	}
}

// Task returns the task with the given ID, or nil if it does not exist.
func (g *Graph) Task(id string) *Task {
	return g.Tasks[id]
}

// TasksInOrder returns the tasks in document order.
func (g *Graph) TasksInOrder() []*Task {
	tasks := make([]*Task, 0, len(g.Order))
	for _, id := range g.Order {
		if t, ok := g.Tasks[id]; ok {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

// ComputeMetadata derives the summary counters from the task collection.
func ComputeMetadata(g *Graph) Metadata {
	var m Metadata
	for _, t := range g.Tasks {
		m.Total++
		switch t.Status {
		case StatusPending:
			m.Pending++
		case StatusInProgress:
			m.InProgress++
		case StatusBlocked:
			m.Blocked++
		case StatusDone:
			m.Done++
		case StatusSkipped:
			m.Skipped++
		}
	}
	return m
}

// RecomputeMetadata refreshes the cached summary from the task collection.
func (g *Graph) RecomputeMetadata() {
	g.Meta = ComputeMetadata(g)
}
