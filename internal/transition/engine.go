// Package transition applies status changes to tasks and cascades
// their consequences through the graph. It owns the only automatic
// transition in the system: unblocking dependents when a task
// completes. Everything else is an explicit caller decision.
package transition

import (
	"time"

	"github.com/planloom/planloom/internal/errors"
	"github.com/planloom/planloom/internal/taskgraph"
)

// SetStatus applies a status change to one task and recomputes the
// graph's derived state. The returned task is the mutated one.
//
// Direct transitions are unrestricted: any status may follow any
// other, because external callers (human or agent) may need to revert
// state. The engine drives exactly one automatic change: when a task
// becomes done, every blocked task that lists it as a dependency is
// re-evaluated, and if all of its dependencies are now done it moves
// to pending. A cascade never advances a task past pending.
//
// Errors: an unrecognized status is rejected before any mutation with
// a ValidationError; an unknown task id yields a NotFoundError and
// leaves the graph untouched. Metadata is recomputed from scratch
// after every successful call, so the counters hold regardless of how
// many cascades ran.
func SetStatus(g *taskgraph.Graph, taskID string, status taskgraph.Status) (*taskgraph.Task, error) {
	if !status.IsValid() {
		return nil, errors.NewValidationError("status", string(status), "unknown status value")
	}

	task := g.Task(taskID)
	if task == nil {
		return nil, errors.NewNotFoundError("task", taskID)
	}

	task.Status = status
	if status == taskgraph.StatusDone {
		if task.CompletedAt == nil {
			now := time.Now()
			task.CompletedAt = &now
		}
		unblock(g, taskID)
	} else {
		task.CompletedAt = nil
	}

	g.RecomputeMetadata()
	return task, nil
}

// unblock moves blocked dependents of the just-completed task to
// pending once all of their dependencies are done. Only blocked tasks
// participate: an in-progress task whose dependencies regress is left
// alone, and a task is never moved past pending automatically.
func unblock(g *taskgraph.Graph, completedID string) {
	for _, id := range g.Order {
		task := g.Tasks[id]
		if task == nil || task.Status != taskgraph.StatusBlocked {
			continue
		}
		if !dependsOn(task, completedID) {
			continue
		}
		if allDepsDone(g, task) {
			task.Status = taskgraph.StatusPending
		}
	}
}

func dependsOn(task *taskgraph.Task, id string) bool {
	for _, depID := range task.DependsOn {
		if depID == id {
			return true
		}
	}
	return false
}

func allDepsDone(g *taskgraph.Graph, task *taskgraph.Task) bool {
	for _, depID := range task.DependsOn {
		dep := g.Tasks[depID]
		if dep == nil || dep.Status != taskgraph.StatusDone {
			return false
		}
	}
	return true
}
