package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/planloom/planloom/internal/store"
	"github.com/planloom/planloom/internal/taskgraph"
)

const sampleDoc = `# Sample

## Phase 1: Only

- [ ] 1.1 First task
- [ ] 1.2 Second task
  - Status: blocked
  - Depends On: 1.1
`

func newTestBoard(t *testing.T) Board {
	t.Helper()
	ps := store.NewPlanStore(t.TempDir(), store.NewOSStorage())
	g, diags := taskgraph.Parse(sampleDoc, "sample")
	if len(diags) != 0 {
		t.Fatalf("sample document has diagnostics: %v", diags)
	}
	if err := ps.Save(g); err != nil {
		t.Fatal(err)
	}

	b := NewBoard(ps, g)
	model, _ := b.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return model.(Board)
}

func press(t *testing.T, b Board, keys ...string) Board {
	t.Helper()
	for _, key := range keys {
		var msg tea.Msg
		switch key {
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
		}
		model, _ := b.Update(msg)
		b = model.(Board)
	}
	return b
}

func TestBoard_View(t *testing.T) {
	b := newTestBoard(t)
	out := b.View()

	for _, want := range []string{"Sample", "0/2 done", "1.1 First task", "1.2 Second task", "[blocked]"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "> 1.1") {
		t.Errorf("cursor should start on the first task:\n%s", out)
	}
}

func TestBoard_CursorMovement(t *testing.T) {
	b := newTestBoard(t)

	b = press(t, b, "j")
	if b.cursor != 1 {
		t.Errorf("cursor = %d after j, want 1", b.cursor)
	}

	// Movement clamps at the last task.
	b = press(t, b, "j")
	if b.cursor != 1 {
		t.Errorf("cursor = %d, want 1 (clamped)", b.cursor)
	}

	b = press(t, b, "k", "k")
	if b.cursor != 0 {
		t.Errorf("cursor = %d, want 0 (clamped)", b.cursor)
	}
}

func TestBoard_SpaceCyclesStatus(t *testing.T) {
	b := newTestBoard(t)

	b = press(t, b, " ")
	if got := b.graph.Task("1.1").Status; got != taskgraph.StatusInProgress {
		t.Errorf("status = %q, want in-progress", got)
	}

	b = press(t, b, " ")
	if got := b.graph.Task("1.1").Status; got != taskgraph.StatusDone {
		t.Errorf("status = %q, want done", got)
	}
	if !b.dirty {
		t.Error("board should be dirty after a status change")
	}
}

func TestBoard_DoneUnblocksDependent(t *testing.T) {
	b := newTestBoard(t)

	b = press(t, b, "d")
	if got := b.graph.Task("1.1").Status; got != taskgraph.StatusDone {
		t.Errorf("1.1 status = %q, want done", got)
	}
	if got := b.graph.Task("1.2").Status; got != taskgraph.StatusPending {
		t.Errorf("1.2 status = %q, want pending (unblocked)", got)
	}
	if !strings.Contains(b.View(), "1/2 done") {
		t.Errorf("header not updated:\n%s", b.View())
	}
}

func TestBoard_NextJumpsToActionable(t *testing.T) {
	b := newTestBoard(t)

	b = press(t, b, "d", "n")
	// 1.1 is done, 1.2 just unblocked: the only actionable task.
	if b.cursor != 1 {
		t.Errorf("cursor = %d after n, want 1", b.cursor)
	}
}

func TestBoard_SavePersists(t *testing.T) {
	b := newTestBoard(t)

	b = press(t, b, "d", "w")
	if b.dirty {
		t.Error("board should be clean after save")
	}

	reloaded, _, err := b.store.Load("sample")
	if err != nil {
		t.Fatal(err)
	}
	if got := reloaded.Task("1.1").Status; got != taskgraph.StatusDone {
		t.Errorf("persisted status = %q, want done", got)
	}
}

func TestBoard_QuitSavesWhenDirty(t *testing.T) {
	b := newTestBoard(t)

	b = press(t, b, "d")
	model, cmd := b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	b = model.(Board)
	if cmd == nil {
		t.Fatal("expected quit command")
	}

	reloaded, _, err := b.store.Load("sample")
	if err != nil {
		t.Fatal(err)
	}
	if got := reloaded.Task("1.1").Status; got != taskgraph.StatusDone {
		t.Errorf("persisted status = %q, want done", got)
	}
}
