package plan

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/planloom/planloom/internal/config"
	"github.com/planloom/planloom/internal/display"
	"github.com/planloom/planloom/internal/store"
	"github.com/planloom/planloom/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [plan]",
	Short: "Re-render a plan whenever its document changes",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

// RegisterWatchCmd registers the watch command with the given parent command.
func RegisterWatchCmd(parent *cobra.Command) {
	parent.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	logger := newLogger("watch")
	defer func() { _ = logger.Close() }()

	ps := newStore()
	planID := store.ResolveID(args[0])

	// Initial render before the first change arrives.
	g, err := loadPlan(ps, args[0])
	if err != nil {
		return err
	}
	fmt.Print(display.Plan(g))

	cfg := config.Get()
	w, err := watch.New(ps.Path(planID), planID, time.Duration(cfg.Watch.DebounceMs)*time.Millisecond)
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	logger.WithPlan(planID).Info("watching plan", "path", ps.Path(planID))

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case <-sigc:
			return nil
		case snap := <-w.Snapshots():
			if snap.Err != nil {
				logger.Error("reparse failed", "error", snap.Err)
				fmt.Fprintln(os.Stderr, snap.Err)
				continue
			}
			printDiagnostics(snap.Diagnostics)
			fmt.Print("\n" + display.Plan(snap.Graph))
		}
	}
}
