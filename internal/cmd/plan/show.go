package plan

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/planloom/planloom/internal/display"
)

var showCmd = &cobra.Command{
	Use:   "show [plan]",
	Short: "Render a plan's phases, tasks, and progress",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

// RegisterShowCmd registers the show command with the given parent command.
func RegisterShowCmd(parent *cobra.Command) {
	parent.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	g, err := loadPlan(newStore(), args[0])
	if err != nil {
		return err
	}
	fmt.Print(display.Plan(g))
	return nil
}
