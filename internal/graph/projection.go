package graph

import "github.com/planloom/planloom/internal/taskgraph"

// Node is one task in the projected view.
type Node struct {
	ID     string           `json:"id"`
	Label  string           `json:"label"`
	Status taskgraph.Status `json:"status"`
}

// Edge is a dependency in the projected view: From depends on To.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// View is a flat node/edge representation of the dependency graph for
// visualization consumers.
type View struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Projection produces the node/edge view of the graph. It is purely a
// re-shaping of existing data; edges whose target does not exist are
// omitted.
func Projection(g *taskgraph.Graph) View {
	view := View{
		Nodes: make([]Node, 0, len(g.Order)),
	}
	for _, id := range g.Order {
		task := g.Tasks[id]
		if task == nil {
			continue
		}
		view.Nodes = append(view.Nodes, Node{
			ID:     task.ID,
			Label:  task.Title,
			Status: task.Status,
		})
		for _, depID := range task.DependsOn {
			if g.Tasks[depID] == nil {
				continue
			}
			view.Edges = append(view.Edges, Edge{From: task.ID, To: depID})
		}
	}
	return view
}
