package plan

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/planloom/planloom/internal/display"
	"github.com/planloom/planloom/internal/graph"
)

var nextCmd = &cobra.Command{
	Use:   "next [plan]",
	Short: "Show the single best task to work on next",
	Long: `Show the next actionable task: a pending task whose dependencies
are all done, chosen by ascending priority and then ascending id.`,
	Args: cobra.ExactArgs(1),
	RunE: runNext,
}

// RegisterNextCmd registers the next command with the given parent command.
func RegisterNextCmd(parent *cobra.Command) {
	parent.AddCommand(nextCmd)
}

func runNext(cmd *cobra.Command, args []string) error {
	g, err := loadPlan(newStore(), args[0])
	if err != nil {
		return err
	}

	task := graph.NextActionable(g)
	if task == nil {
		fmt.Println("no actionable task")
		return nil
	}
	fmt.Print(display.Task(task))
	return nil
}
