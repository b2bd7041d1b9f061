package plan

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/planloom/planloom/internal/display"
	"github.com/planloom/planloom/internal/graph"
)

var orderCmd = &cobra.Command{
	Use:   "order [plan]",
	Short: "Show a dependency-respecting execution order",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrder,
}

// RegisterOrderCmd registers the order command with the given parent command.
func RegisterOrderCmd(parent *cobra.Command) {
	parent.AddCommand(orderCmd)
}

func runOrder(cmd *cobra.Command, args []string) error {
	g, err := loadPlan(newStore(), args[0])
	if err != nil {
		return err
	}

	if cycles := graph.DetectCycles(g); len(cycles) > 0 {
		fmt.Print(display.Cycles(cycles))
	}
	fmt.Print(display.Order(graph.TopologicalOrder(g)))
	return nil
}
