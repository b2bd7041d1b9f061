package plan

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/planloom/planloom/internal/display"
	"github.com/planloom/planloom/internal/graph"
)

var tasksFiles string

var tasksCmd = &cobra.Command{
	Use:   "tasks [plan]",
	Short: "List tasks, optionally filtered by file glob",
	Long: `List a plan's tasks in document order. With --files, only tasks
whose Files entries match the glob pattern are listed:

  planloom plan tasks auth --files 'internal/auth/**'`,
	Args: cobra.ExactArgs(1),
	RunE: runTasks,
}

func init() {
	tasksCmd.Flags().StringVar(&tasksFiles, "files", "", "Only tasks touching files matching this glob")
}

// RegisterTasksCmd registers the tasks command with the given parent command.
func RegisterTasksCmd(parent *cobra.Command) {
	parent.AddCommand(tasksCmd)
}

func runTasks(cmd *cobra.Command, args []string) error {
	g, err := loadPlan(newStore(), args[0])
	if err != nil {
		return err
	}

	tasks := g.TasksInOrder()
	if tasksFiles != "" {
		tasks, err = graph.FilterByFiles(g, tasksFiles)
		if err != nil {
			return err
		}
	}

	if len(tasks) == 0 {
		fmt.Println("no matching tasks")
		return nil
	}
	fmt.Print(display.Order(tasks))
	return nil
}
