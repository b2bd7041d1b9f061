package graph

import "github.com/planloom/planloom/internal/taskgraph"

// DetectCycles returns every dependency cycle in the graph, each as an
// ordered sequence of task ids starting and ending at the same id
// (A depends on B depends on A is reported as [A B A]).
//
// The search is depth-first with a "currently on stack" set kept
// separate from the permanently-visited set: an edge into a stacked
// but unfinished node closes a cycle, recorded as the stack slice from
// that node to the current one plus the closing id. All independent
// cycles are reported, not just the first. A cycle-free graph yields
// an empty result, and the caller receives cycles as data rather than
// an error: a cycle is an authoring defect to display, not a crash.
func DetectCycles(g *taskgraph.Graph) [][]string {
	visited := make(map[string]bool, len(g.Tasks))
	onStack := make(map[string]bool, len(g.Tasks))
	var stack []string
	var cycles [][]string

	var dfs func(id string)
	dfs = func(id string) {
		visited[id] = true
		onStack[id] = true
		stack = append(stack, id)

		for _, depID := range g.Tasks[id].DependsOn {
			if g.Tasks[depID] == nil {
				continue
			}
			if onStack[depID] {
				start := 0
				for i, sid := range stack {
					if sid == depID {
						start = i
						break
					}
				}
				cycle := make([]string, 0, len(stack)-start+1)
				cycle = append(cycle, stack[start:]...)
				cycle = append(cycle, depID)
				cycles = append(cycles, cycle)
				continue
			}
			if !visited[depID] {
				dfs(depID)
			}
		}

		onStack[id] = false
		stack = stack[:len(stack)-1]
	}

	for _, id := range g.Order {
		if !visited[id] {
			dfs(id)
		}
	}
	return cycles
}
