// Package plan provides the CLI commands that operate on plan
// documents: rendering, ordering, cycle detection, status changes,
// watching, and the interactive board.
package plan

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/planloom/planloom/internal/config"
	"github.com/planloom/planloom/internal/display"
	"github.com/planloom/planloom/internal/logging"
	"github.com/planloom/planloom/internal/store"
	"github.com/planloom/planloom/internal/taskgraph"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Work with plan documents",
}

// Register adds all plan-related commands to the given parent command.
// This is the main entry point for integrating the plan subpackage
// with the root command.
func Register(parent *cobra.Command) {
	RegisterListCmd(planCmd)
	RegisterShowCmd(planCmd)
	RegisterNextCmd(planCmd)
	RegisterStatusCmd(planCmd)
	RegisterOrderCmd(planCmd)
	RegisterCyclesCmd(planCmd)
	RegisterGraphCmd(planCmd)
	RegisterTasksCmd(planCmd)
	RegisterWatchCmd(planCmd)
	RegisterBoardCmd(planCmd)
	parent.AddCommand(planCmd)
}

// newStore creates the plan store from the active configuration.
func newStore() *store.PlanStore {
	cfg := config.Get()
	return store.NewPlanStore(cfg.Paths.PlansDir, store.NewOSStorage())
}

// newLogger creates the command-scoped logger. Logging failures fall
// back to stderr rather than blocking the command.
func newLogger(command string) *logging.Logger {
	cfg := config.Get()
	logger, err := logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level)
	if err != nil {
		logger, _ = logging.NewLogger("", cfg.Logging.Level)
	}
	return logger.WithCommand(command)
}

// loadPlan resolves the CLI argument to a plan id, loads the document,
// and prints any parse diagnostics to stderr before returning the
// graph. Diagnostics never fail the load.
func loadPlan(ps *store.PlanStore, arg string) (*taskgraph.Graph, error) {
	g, diags, err := ps.Load(store.ResolveID(arg))
	if err != nil {
		return nil, err
	}
	printDiagnostics(diags)
	return g, nil
}

func printDiagnostics(diags []taskgraph.Diagnostic) {
	if len(diags) > 0 {
		fmt.Fprint(os.Stderr, display.Diagnostics(diags))
	}
}
