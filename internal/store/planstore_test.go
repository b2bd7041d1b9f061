package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/planloom/planloom/internal/errors"
	"github.com/planloom/planloom/internal/taskgraph"
)

const samplePlan = `# Sample

## Phase 1: Only

- [ ] 1.1 First task
  - Priority: 1

- [ ] 1.2 Second task
  - Status: blocked
  - Depends On: 1.1
`

func newTestStore(t *testing.T) *PlanStore {
	t.Helper()
	return NewPlanStore(t.TempDir(), NewOSStorage())
}

func writePlan(t *testing.T, ps *PlanStore, planID, text string) {
	t.Helper()
	if err := os.WriteFile(ps.Path(planID), []byte(text), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestPlanStore_LoadMissing(t *testing.T) {
	ps := newTestStore(t)

	_, _, err := ps.Load("nope")
	if err == nil {
		t.Fatal("expected error for missing plan")
	}
	if !errors.IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestPlanStore_LoadParses(t *testing.T) {
	ps := newTestStore(t)
	writePlan(t, ps, "sample", samplePlan)

	g, diags, err := ps.Load("sample")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
	if g.ID != "sample" || g.Name != "Sample" || len(g.Tasks) != 2 {
		t.Errorf("graph = id=%q name=%q tasks=%d", g.ID, g.Name, len(g.Tasks))
	}
}

func TestPlanStore_SaveRoundTrips(t *testing.T) {
	ps := newTestStore(t)
	writePlan(t, ps, "sample", samplePlan)

	g, _, err := ps.Load("sample")
	if err != nil {
		t.Fatal(err)
	}
	if err := ps.Save(g); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded, diags, err := ps.Load("sample")
	if err != nil {
		t.Fatal(err)
	}
	if len(diags) != 0 {
		t.Errorf("reload diagnostics: %v", diags)
	}
	if len(reloaded.Tasks) != 2 || reloaded.Name != "Sample" {
		t.Errorf("reloaded graph diverged: %+v", reloaded)
	}
}

func TestPlanStore_SaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "plans")
	ps := NewPlanStore(dir, NewOSStorage())

	g, _ := taskgraph.Parse("- [ ] 1.1 Task\n", "fresh")
	if err := ps.Save(g); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(ps.Path("fresh")); err != nil {
		t.Errorf("plan file not written: %v", err)
	}
}

func TestPlanStore_Update(t *testing.T) {
	ps := newTestStore(t)
	writePlan(t, ps, "sample", samplePlan)

	g, err := ps.Update("sample", func(g *taskgraph.Graph) error {
		g.Task("1.1").Status = taskgraph.StatusDone
		g.RecomputeMetadata()
		return nil
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if g.Task("1.1").Status != taskgraph.StatusDone {
		t.Errorf("returned graph not mutated")
	}

	reloaded, _, err := ps.Load("sample")
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.Task("1.1").Status != taskgraph.StatusDone {
		t.Error("mutation not persisted")
	}
}

func TestPlanStore_UpdateAbandonsOnError(t *testing.T) {
	ps := newTestStore(t)
	writePlan(t, ps, "sample", samplePlan)

	wantErr := errors.New("no thanks")
	_, err := ps.Update("sample", func(g *taskgraph.Graph) error {
		g.Task("1.1").Status = taskgraph.StatusDone
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}

	reloaded, _, err := ps.Load("sample")
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.Task("1.1").Status == taskgraph.StatusDone {
		t.Error("abandoned update was written")
	}
}

func TestPlanStore_List(t *testing.T) {
	ps := newTestStore(t)

	ids, err := ps.List()
	if err != nil {
		t.Fatalf("List on empty store: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("ids = %v, want none", ids)
	}

	writePlan(t, ps, "zeta", samplePlan)
	writePlan(t, ps, "alpha", samplePlan)
	if err := os.WriteFile(filepath.Join(ps.dir, "notes.txt"), []byte("n"), 0644); err != nil {
		t.Fatal(err)
	}

	ids, err = ps.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(ids) != 2 || ids[0] != "alpha" || ids[1] != "zeta" {
		t.Errorf("ids = %v, want [alpha zeta]", ids)
	}
}

func TestPlanStore_ListMissingDirectory(t *testing.T) {
	ps := NewPlanStore(filepath.Join(t.TempDir(), "absent"), NewOSStorage())

	ids, err := ps.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("ids = %v, want none", ids)
	}
}

func TestResolveID(t *testing.T) {
	tests := []struct {
		arg  string
		want string
	}{
		{"sample", "sample"},
		{"sample.plan.md", "sample"},
		{".planloom/plans/sample.plan.md", "sample"},
		{"notes.md", "notes"},
		{"dir/notes.md", "notes"},
	}

	for _, tt := range tests {
		if got := ResolveID(tt.arg); got != tt.want {
			t.Errorf("ResolveID(%q) = %q, want %q", tt.arg, got, tt.want)
		}
	}
}

func TestOSStorage_WriteLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	storage := NewOSStorage()
	path := filepath.Join(dir, "doc.plan.md")

	if err := storage.WriteText(path, "content"); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}

	text, err := storage.ReadText(path)
	if err != nil {
		t.Fatal(err)
	}
	if text != "content" {
		t.Errorf("text = %q", text)
	}
}
