package plan

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/planloom/planloom/internal/display"
	"github.com/planloom/planloom/internal/graph"
)

var graphJSON bool

var graphCmd = &cobra.Command{
	Use:   "graph [plan]",
	Short: "Show the dependency graph as nodes and edges",
	Args:  cobra.ExactArgs(1),
	RunE:  runGraph,
}

func init() {
	graphCmd.Flags().BoolVar(&graphJSON, "json", false, "Output the node/edge view as JSON")
}

// RegisterGraphCmd registers the graph command with the given parent command.
func RegisterGraphCmd(parent *cobra.Command) {
	parent.AddCommand(graphCmd)
}

func runGraph(cmd *cobra.Command, args []string) error {
	g, err := loadPlan(newStore(), args[0])
	if err != nil {
		return err
	}

	view := graph.Projection(g)
	if graphJSON {
		data, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal graph view: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}
	fmt.Print(display.GraphView(view))
	return nil
}
