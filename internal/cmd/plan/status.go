package plan

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/planloom/planloom/internal/display"
	"github.com/planloom/planloom/internal/store"
	"github.com/planloom/planloom/internal/taskgraph"
	"github.com/planloom/planloom/internal/transition"
)

var statusCmd = &cobra.Command{
	Use:   "status [plan] [task] [status]",
	Short: "Change a task's status and cascade the consequences",
	Long: `Change one task's status. Completing a task re-evaluates every
blocked task that depends on it; tasks whose dependencies are all done
move back to pending. The document is rewritten under the plans
directory lock, so concurrent invocations cannot interleave.

Valid statuses: pending, in-progress, blocked, done, skipped.`,
	Args: cobra.ExactArgs(3),
	RunE: runStatus,
}

// RegisterStatusCmd registers the status command with the given parent command.
func RegisterStatusCmd(parent *cobra.Command) {
	parent.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	logger := newLogger("status")
	defer func() { _ = logger.Close() }()

	planID := store.ResolveID(args[0])
	taskID := args[1]
	status := taskgraph.Status(args[2])

	var updated *taskgraph.Task
	g, err := newStore().Update(planID, func(g *taskgraph.Graph) error {
		var err error
		updated, err = transition.SetStatus(g, taskID, status)
		return err
	})
	if err != nil {
		return err
	}

	logger.WithPlan(planID).Info("status changed",
		"task", taskID, "status", status.String(), "done", g.Meta.Done, "total", g.Meta.Total)

	fmt.Print(display.Task(updated))
	return nil
}
