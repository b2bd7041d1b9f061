package plan

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/planloom/planloom/internal/tui"
)

var boardCmd = &cobra.Command{
	Use:   "board [plan]",
	Short: "Open the interactive plan board",
	Args:  cobra.ExactArgs(1),
	RunE:  runBoard,
}

// RegisterBoardCmd registers the board command with the given parent command.
func RegisterBoardCmd(parent *cobra.Command) {
	parent.AddCommand(boardCmd)
}

func runBoard(cmd *cobra.Command, args []string) error {
	ps := newStore()
	g, err := loadPlan(ps, args[0])
	if err != nil {
		return err
	}

	program := tea.NewProgram(tui.NewBoard(ps, g), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("board: %w", err)
	}
	return nil
}
