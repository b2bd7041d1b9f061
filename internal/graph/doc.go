// Package graph provides read-only dependency queries over a task
// graph: topological ordering, cycle detection, next-actionable-task
// selection, and a node/edge projection for visualization. All
// functions are pure; none of them mutate the graph they are given.
package graph
