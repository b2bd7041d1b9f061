package graph

import (
	"fmt"

	"github.com/gobwas/glob"

	"github.com/planloom/planloom/internal/taskgraph"
)

// FilterByFiles returns the tasks whose Files list matches the given
// glob pattern, in document order. Patterns use '/' as the separator,
// so "internal/**" matches nested paths.
func FilterByFiles(g *taskgraph.Graph, pattern string) ([]*taskgraph.Task, error) {
	matcher, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, fmt.Errorf("invalid file pattern %q: %w", pattern, err)
	}

	var matched []*taskgraph.Task
	for _, id := range g.Order {
		task := g.Tasks[id]
		if task == nil {
			continue
		}
		for _, file := range task.Files {
			if matcher.Match(file) {
				matched = append(matched, task)
				break
			}
		}
	}
	return matched, nil
}
