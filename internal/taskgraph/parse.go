package taskgraph

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Document syntax. The parser and serializer must agree on these
// literals bit-for-bit; they are the stable contract of the format.
var (
	// planNameRe matches the H1 heading carrying the plan display name.
	planNameRe = regexp.MustCompile(`^#\s+(.+)$`)

	// phaseHeaderRe matches "## Phase 2" and "## Phase 2: Data model".
	phaseHeaderRe = regexp.MustCompile(`^##\s+Phase\s+(\d+)\s*(?::\s*(.*))?$`)

	// taskHeaderRe matches a checkbox list item: "- [ ] 2.1 Title".
	// The checked state of the marker is not authoritative; status
	// comes from the Status label.
	taskHeaderRe = regexp.MustCompile(`^[-*]\s+\[([ xX-])\]\s+(.*)$`)

	// taskIDRe validates the dotted numeric task identifier.
	taskIDRe = regexp.MustCompile(`^\d+(?:\.\d+)*$`)
)

// fieldSpec binds a metadata label to the function that applies its
// value to a task. Adding a field to the format is a data change here,
// not a new ad hoc pattern.
type fieldSpec struct {
	label string
	apply func(p *parser, t *Task, value string, line int)
}

// fieldSpecs is the fixed label vocabulary, in serialization order.
var fieldSpecs = []fieldSpec{
	{"Status", func(p *parser, t *Task, v string, line int) {
		if v == "" {
			return
		}
		s := Status(v)
		if !s.IsValid() {
			p.warnf(line, t.ID, "unknown status %q; defaulting to %s", v, StatusPending)
			return
		}
		t.Status = s
	}},
	{"Type", func(p *parser, t *Task, v string, line int) {
		if v == "" {
			return
		}
		ty := Type(v)
		if !ty.IsValid() {
			p.warnf(line, t.ID, "unknown type %q; defaulting to %s", v, TypeImplement)
			return
		}
		t.Type = ty
	}},
	{"Priority", func(p *parser, t *Task, v string, line int) {
		if v == "" {
			return
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			p.warnf(line, t.ID, "priority %q is not a number; defaulting to %d", v, DefaultPriority)
			return
		}
		t.Priority = n
	}},
	{"Estimate", func(p *parser, t *Task, v string, line int) {
		t.Estimate = v
	}},
	{"Files", func(p *parser, t *Task, v string, line int) {
		t.Files = splitList(v)
	}},
	{"Implements", func(p *parser, t *Task, v string, line int) {
		t.Implements = splitList(v)
	}},
	{"Depends On", func(p *parser, t *Task, v string, line int) {
		t.DependsOn = splitList(v)
	}},
}

// Parse converts raw plan text into a Graph. It is a pure function of
// its input: no I/O, no retained state.
//
// Malformed blocks are skipped with a diagnostic rather than failing
// the document, and an empty document yields an empty graph. Dangling
// and self dependency references are dropped with diagnostics after
// all tasks are collected.
func Parse(text, planID string) (*Graph, []Diagnostic) {
	p := &parser{graph: NewGraph(planID)}

	for i, raw := range strings.Split(text, "\n") {
		p.line(i+1, strings.TrimRight(raw, "\r"))
	}
	p.flushTask()

	p.diags = append(p.diags, checkReferences(p.graph)...)
	p.graph.RecomputeMetadata()
	return p.graph, p.diags
}

// parser carries the state of a single Parse call.
type parser struct {
	graph *Graph
	diags []Diagnostic

	phase     int // index into graph.Phases, -1 before the first header
	task      *Task
	desc      []string
	skipBlock bool // true while discarding lines after a bad task header
}

func (p *parser) line(n int, line string) {
	trimmed := strings.TrimSpace(line)

	if m := phaseHeaderRe.FindStringSubmatch(trimmed); m != nil {
		p.flushTask()
		num, _ := strconv.Atoi(m[1])
		p.graph.Phases = append(p.graph.Phases, Phase{
			Number: num,
			Name:   strings.TrimSpace(m[2]),
		})
		p.phase = len(p.graph.Phases)
		return
	}

	if m := taskHeaderRe.FindStringSubmatch(trimmed); m != nil {
		p.flushTask()
		p.startTask(n, m[2])
		return
	}

	if p.task == nil {
		if p.skipBlock {
			return
		}
		if p.graph.Name == "" && !strings.HasPrefix(trimmed, "##") {
			if m := planNameRe.FindStringSubmatch(trimmed); m != nil {
				p.graph.Name = strings.TrimSpace(m[1])
			}
		}
		return
	}

	if p.applyField(n, trimmed) {
		return
	}
	p.desc = append(p.desc, trimmed)
}

// startTask begins a new task block from the text after the checkbox
// marker. A header whose first token is not a dotted numeric ID is
// skipped along with its block.
func (p *parser) startTask(line int, rest string) {
	id, title, _ := strings.Cut(strings.TrimSpace(rest), " ")
	if !taskIDRe.MatchString(id) {
		p.warnf(line, "", "task header %q has no parseable id; block skipped", rest)
		p.skipBlock = true
		return
	}
	if p.graph.Tasks[id] != nil {
		p.warnf(line, id, "duplicate task id; block skipped")
		p.skipBlock = true
		return
	}

	p.task = &Task{
		ID:       id,
		Title:    strings.TrimSpace(title),
		Status:   StatusPending,
		Type:     TypeImplement,
		Priority: DefaultPriority,
	}
	p.graph.Tasks[id] = p.task
	p.graph.Order = append(p.graph.Order, id)

	// Phase membership is positional: the nearest preceding phase
	// header, or an implicit phase 1 when none has appeared yet.
	if p.phase == 0 {
		p.graph.Phases = append(p.graph.Phases, Phase{Number: 1})
		p.phase = len(p.graph.Phases)
	}
	ph := &p.graph.Phases[p.phase-1]
	ph.TaskIDs = append(ph.TaskIDs, id)
}

// applyField matches a "label: value" line against the field table.
// Returns false if the line is not a known label, in which case it
// belongs to the description.
func (p *parser) applyField(line int, trimmed string) bool {
	rest := strings.TrimSpace(strings.TrimPrefix(trimmed, "- "))
	for _, spec := range fieldSpecs {
		if !strings.HasPrefix(rest, spec.label+":") {
			continue
		}
		value := strings.TrimSpace(rest[len(spec.label)+1:])
		spec.apply(p, p.task, value, line)
		return true
	}
	return false
}

// flushTask finalizes the current task block, if any.
func (p *parser) flushTask() {
	if p.task != nil {
		p.task.Description = joinDescription(p.desc)
	}
	p.task = nil
	p.desc = nil
	p.skipBlock = false
}

func (p *parser) warnf(line int, taskID, format string, args ...any) {
	p.diags = append(p.diags, Diagnostic{
		Severity: SeverityWarning,
		Line:     line,
		TaskID:   taskID,
		Message:  fmt.Sprintf(format, args...),
	})
}

// splitList splits a comma-separated label value, trimming entries and
// dropping empties. Empty values are omitted, never stored as blanks.
func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// joinDescription joins collected description lines, trimming leading
// and trailing blank lines while preserving interior ones.
func joinDescription(lines []string) string {
	start, end := 0, len(lines)
	for start < end && lines[start] == "" {
		start++
	}
	for end > start && lines[end-1] == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}
