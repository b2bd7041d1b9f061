package plan

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/planloom/planloom/internal/display"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List plans with their progress",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

// RegisterListCmd registers the list command with the given parent command.
func RegisterListCmd(parent *cobra.Command) {
	parent.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	ps := newStore()
	ids, err := ps.List()
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		fmt.Println("no plans found")
		return nil
	}

	for _, id := range ids {
		g, diags, err := ps.Load(id)
		if err != nil {
			return err
		}
		printDiagnostics(diags)
		fmt.Print(display.PlanLine(g))
	}
	return nil
}
