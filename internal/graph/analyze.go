package graph

import (
	"strconv"
	"strings"

	"github.com/planloom/planloom/internal/taskgraph"
)

// TopologicalOrder returns the tasks in an order where every task
// appears after all tasks it depends on. Visitation is depth-first
// with a permanently-visited marker, so the cost is linear in nodes
// plus edges; ties among independent tasks are broken by document
// order. Dangling references are skipped. On a cyclic graph the
// traversal still terminates, but the order inside the cycle is not
// meaningful; use DetectCycles to surface the cycle itself.
func TopologicalOrder(g *taskgraph.Graph) []*taskgraph.Task {
	visited := make(map[string]bool, len(g.Tasks))
	order := make([]*taskgraph.Task, 0, len(g.Tasks))

	var visit func(id string)
	visit = func(id string) {
		if visited[id] {
			return
		}
		visited[id] = true
		task := g.Tasks[id]
		if task == nil {
			return
		}
		for _, depID := range task.DependsOn {
			visit(depID)
		}
		order = append(order, task)
	}

	for _, id := range g.Order {
		visit(id)
	}
	return order
}

// NextActionable returns the single best task to work on next: a
// pending task whose dependencies are all done (or that has none),
// chosen by ascending priority and then ascending id. Returns nil
// when no task is actionable. A task with an unsatisfied or unknown
// dependency is never returned.
func NextActionable(g *taskgraph.Graph) *taskgraph.Task {
	var best *taskgraph.Task
	for _, id := range g.Order {
		task := g.Tasks[id]
		if task == nil || task.Status != taskgraph.StatusPending {
			continue
		}
		if !depsDone(g, task) {
			continue
		}
		if best == nil || task.Priority < best.Priority ||
			(task.Priority == best.Priority && idLess(task.ID, best.ID)) {
			best = task
		}
	}
	return best
}

// depsDone reports whether every declared dependency of the task is
// done. A reference to a missing task counts as unsatisfied.
func depsDone(g *taskgraph.Graph, task *taskgraph.Task) bool {
	for _, depID := range task.DependsOn {
		dep := g.Tasks[depID]
		if dep == nil || dep.Status != taskgraph.StatusDone {
			return false
		}
	}
	return true
}

// idLess orders dotted numeric ids naturally, so "2.1" sorts before
// "10.1". Non-numeric segments fall back to string comparison.
func idLess(a, b string) bool {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		an, aerr := strconv.Atoi(as[i])
		bn, berr := strconv.Atoi(bs[i])
		if aerr != nil || berr != nil {
			if as[i] != bs[i] {
				return as[i] < bs[i]
			}
			continue
		}
		if an != bn {
			return an < bn
		}
	}
	return len(as) < len(bs)
}
