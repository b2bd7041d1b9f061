// Package tui provides the interactive plan board. It is a thin
// front end: every status change goes through the transition engine,
// and the document is rewritten through the plan store on save.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/planloom/planloom/internal/display"
	"github.com/planloom/planloom/internal/graph"
	"github.com/planloom/planloom/internal/store"
	"github.com/planloom/planloom/internal/taskgraph"
	"github.com/planloom/planloom/internal/transition"
	"github.com/planloom/planloom/internal/util"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

// statusCycle is the order the space key advances a task through.
var statusCycle = []taskgraph.Status{
	taskgraph.StatusPending,
	taskgraph.StatusInProgress,
	taskgraph.StatusDone,
}

// Board is the bubbletea model for one plan.
type Board struct {
	store *store.PlanStore
	graph *taskgraph.Graph

	cursor   int
	viewport viewport.Model
	ready    bool
	dirty    bool
	notice   string
	width    int
	height   int
}

// NewBoard creates a board over an already-loaded graph.
func NewBoard(ps *store.PlanStore, g *taskgraph.Graph) Board {
	return Board{store: ps, graph: g}
}

// Init implements tea.Model.
func (b Board) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (b Board) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		detailHeight := msg.Height / 3
		if !b.ready {
			b.viewport = viewport.New(msg.Width, detailHeight)
			b.ready = true
		} else {
			b.viewport.Width = msg.Width
			b.viewport.Height = detailHeight
		}
		b.refreshDetail()
		return b, nil

	case tea.KeyMsg:
		return b.handleKey(msg)
	}

	var cmd tea.Cmd
	b.viewport, cmd = b.viewport.Update(msg)
	return b, cmd
}

func (b Board) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		if b.dirty {
			if err := b.store.Save(b.graph); err != nil {
				b.notice = fmt.Sprintf("save failed: %v", err)
				return b, nil
			}
		}
		return b, tea.Quit

	case "up", "k":
		if b.cursor > 0 {
			b.cursor--
			b.refreshDetail()
		}

	case "down", "j":
		if b.cursor < len(b.graph.Order)-1 {
			b.cursor++
			b.refreshDetail()
		}

	case " ":
		b.advance()

	case "d":
		b.set(taskgraph.StatusDone)

	case "s":
		b.set(taskgraph.StatusSkipped)

	case "b":
		b.set(taskgraph.StatusBlocked)

	case "p":
		b.set(taskgraph.StatusPending)

	case "n":
		if next := graph.NextActionable(b.graph); next != nil {
			for i, id := range b.graph.Order {
				if id == next.ID {
					b.cursor = i
					break
				}
			}
			b.refreshDetail()
		} else {
			b.notice = "no actionable task"
		}

	case "w":
		if err := b.store.Save(b.graph); err != nil {
			b.notice = fmt.Sprintf("save failed: %v", err)
		} else {
			b.dirty = false
			b.notice = "saved"
		}
	}

	return b, nil
}

// advance cycles the selected task through pending, in-progress, done.
func (b *Board) advance() {
	task := b.selected()
	if task == nil {
		return
	}
	next := statusCycle[0]
	for i, s := range statusCycle {
		if task.Status == s {
			next = statusCycle[(i+1)%len(statusCycle)]
			break
		}
	}
	b.set(next)
}

func (b *Board) set(status taskgraph.Status) {
	task := b.selected()
	if task == nil {
		return
	}
	if _, err := transition.SetStatus(b.graph, task.ID, status); err != nil {
		b.notice = err.Error()
		return
	}
	b.dirty = true
	b.notice = ""
	b.refreshDetail()
}

func (b *Board) selected() *taskgraph.Task {
	if b.cursor < 0 || b.cursor >= len(b.graph.Order) {
		return nil
	}
	return b.graph.Tasks[b.graph.Order[b.cursor]]
}

func (b *Board) refreshDetail() {
	if !b.ready {
		return
	}
	if task := b.selected(); task != nil {
		b.viewport.SetContent(display.Task(task))
	} else {
		b.viewport.SetContent("")
	}
}

// View implements tea.Model.
func (b Board) View() string {
	if !b.ready {
		return "loading..."
	}

	var sb strings.Builder

	title := b.graph.Name
	if title == "" {
		title = b.graph.ID
	}
	m := b.graph.Meta
	sb.WriteString(headerStyle.Render(title))
	sb.WriteString(helpStyle.Render(fmt.Sprintf("  %d/%d done", m.Done, m.Total)))
	if b.dirty {
		sb.WriteString(noticeStyle.Render("  (unsaved)"))
	}
	sb.WriteString("\n\n")

	for i, id := range b.graph.Order {
		task := b.graph.Tasks[id]
		if task == nil {
			continue
		}
		line := fmt.Sprintf("%s %s %s", task.ID, task.Title, display.StatusBadge(task.Status))
		if i == b.cursor {
			line = cursorStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		sb.WriteString(util.TruncateANSI(line, b.width) + "\n")
	}

	sb.WriteString("\n" + b.viewport.View() + "\n")

	if b.notice != "" {
		sb.WriteString(noticeStyle.Render(util.TruncateString(b.notice, b.width)) + "\n")
	}
	sb.WriteString(helpStyle.Render("space cycle · d done · s skip · b block · p pending · n next · w save · q quit"))

	return sb.String()
}
