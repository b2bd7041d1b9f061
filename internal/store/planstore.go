package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/planloom/planloom/internal/errors"
	"github.com/planloom/planloom/internal/taskgraph"
)

// planFileExt is the suffix plan documents are stored under.
const planFileExt = ".plan.md"

// PlanStore maps plan identifiers to documents in a single directory
// and converts between text and graphs on the way through. It holds no
// plan state itself: the document is the durable state, and every Load
// is a fresh parse.
type PlanStore struct {
	dir     string
	storage Storage
}

// NewPlanStore creates a PlanStore rooted at dir.
func NewPlanStore(dir string, storage Storage) *PlanStore {
	return &PlanStore{dir: dir, storage: storage}
}

// Path returns the document path for a plan identifier.
func (ps *PlanStore) Path(planID string) string {
	return filepath.Join(ps.dir, planID+planFileExt)
}

// ResolveID turns a CLI argument into a plan identifier: either a bare
// id, or a path to a plan document whose stem becomes the id.
func ResolveID(arg string) string {
	if strings.HasSuffix(arg, planFileExt) {
		return strings.TrimSuffix(filepath.Base(arg), planFileExt)
	}
	if strings.HasSuffix(arg, ".md") {
		return strings.TrimSuffix(filepath.Base(arg), ".md")
	}
	return arg
}

// Load reads and parses the plan with the given identifier. Parser
// diagnostics are returned alongside the graph; only a missing or
// unreadable document is an error.
func (ps *PlanStore) Load(planID string) (*taskgraph.Graph, []taskgraph.Diagnostic, error) {
	path := ps.Path(planID)
	if !ps.storage.Exists(path) {
		return nil, nil, errors.NewNotFoundError("plan", planID)
	}

	text, err := ps.storage.ReadText(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load plan %s: %w", planID, err)
	}

	g, diags := taskgraph.Parse(text, planID)
	return g, diags, nil
}

// List returns the identifiers of every plan document in the store's
// directory, sorted. A missing directory is an empty store, not an
// error.
func (ps *PlanStore) List() ([]string, error) {
	entries, err := os.ReadDir(ps.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list plans: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), planFileExt) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(entry.Name(), planFileExt))
	}
	sort.Strings(ids)
	return ids, nil
}

// Save serializes the graph and writes it to the plan's document.
func (ps *PlanStore) Save(g *taskgraph.Graph) error {
	if err := ps.storage.CreateDirectory(ps.dir); err != nil {
		return err
	}
	if err := ps.storage.WriteText(ps.Path(g.ID), taskgraph.Serialize(g)); err != nil {
		return fmt.Errorf("save plan %s: %w", g.ID, err)
	}
	return nil
}

// Update runs a full parse-mutate-serialize cycle under the directory
// lock, so concurrent planloom processes cannot interleave their
// updates to the same plan. The mutation function receives the freshly
// parsed graph; returning an error abandons the update without
// writing.
func (ps *PlanStore) Update(planID string, mutate func(*taskgraph.Graph) error) (*taskgraph.Graph, error) {
	if err := ps.storage.CreateDirectory(ps.dir); err != nil {
		return nil, err
	}

	fl := NewFileLock(ps.dir)
	if err := fl.Lock(); err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	defer func() { _ = fl.Unlock() }()

	g, _, err := ps.Load(planID)
	if err != nil {
		return nil, err
	}

	if err := mutate(g); err != nil {
		return nil, err
	}

	if err := ps.Save(g); err != nil {
		return nil, err
	}
	return g, nil
}
