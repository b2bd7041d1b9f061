package plan

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/planloom/planloom/internal/display"
	"github.com/planloom/planloom/internal/errors"
	"github.com/planloom/planloom/internal/graph"
)

var cyclesCmd = &cobra.Command{
	Use:   "cycles [plan]",
	Short: "Detect dependency cycles",
	Long: `Detect dependency cycles in a plan. Each cycle is reported as the
chain of task ids returning to its start. The exit code indicates the
result:

  0 - no cycles
  1 - at least one cycle found`,
	Args: cobra.ExactArgs(1),
	RunE: runCycles,
}

// RegisterCyclesCmd registers the cycles command with the given parent command.
func RegisterCyclesCmd(parent *cobra.Command) {
	parent.AddCommand(cyclesCmd)
}

func runCycles(cmd *cobra.Command, args []string) error {
	g, err := loadPlan(newStore(), args[0])
	if err != nil {
		return err
	}

	cycles := graph.DetectCycles(g)
	fmt.Print(display.Cycles(cycles))
	if len(cycles) > 0 {
		cmd.SilenceUsage = true
		return errors.ErrDependencyCycle
	}
	return nil
}
