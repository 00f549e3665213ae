/*
	report package turns the outcome of a partitioning run into a
	human or machine readable report.
*/

package report

import (
	"sort"
	"strconv"
)

// Result is implemented by the closed set of report shapes: Assignments and
// AnonymizedAssignments.
type Result interface {
	// RunSummary returns the summary of the run that produced the result.
	RunSummary() Summary

	isResult()
}

// Summary describes a partitioning run.
type Summary struct {
	SuperSteps int            `json:"super_steps" toml:"super_steps"`
	Converged  bool           `json:"converged" toml:"converged"`
	Sizes      map[string]int `json:"sizes" toml:"sizes"`
}

// NewSummary builds a Summary. Partition labels are rendered as decimal
// strings so that every output format can use them as keys.
func NewSummary(superSteps int, converged bool, sizes map[int64]int) Summary {
	s := Summary{
		SuperSteps: superSteps,
		Converged:  converged,
		Sizes:      make(map[string]int, len(sizes)),
	}

	for label, size := range sizes {
		s.Sizes[strconv.FormatInt(label, 10)] = size
	}

	return s
}

// Assignment records the partition of a single vertex.
type Assignment struct {
	VertexID string `json:"vertex_id" toml:"vertex_id"`
	Key      string `json:"key" toml:"key"`
	Label    int64  `json:"label" toml:"label"`
}

// Assignments lists the partition of every vertex, including the key of
// the item each vertex tracks.
type Assignments struct {
	Summary Summary      `json:"summary" toml:"summary"`
	Entries []Assignment `json:"assignments" toml:"assignments"`
}

// NewAssignments returns an Assignments result whose entries are sorted by
// vertex id.
func NewAssignments(summary Summary, entries []Assignment) Assignments {
	sorted := append([]Assignment(nil), entries...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].VertexID < sorted[j].VertexID })

	return Assignments{Summary: summary, Entries: sorted}
}

// RunSummary implements Result.
func (a Assignments) RunSummary() Summary { return a.Summary }

func (Assignments) isResult() {}

// AnonymizedAssignment records the partition of a vertex identified only
// by its id prefixed with "v:".
type AnonymizedAssignment struct {
	Vertex string `json:"v" toml:"v"`
	Label  int64  `json:"label" toml:"label"`
}

// AnonymizedAssignments lists vertex partitions without revealing the keys
// of the tracked items.
type AnonymizedAssignments struct {
	Summary Summary                `json:"summary" toml:"summary"`
	Entries []AnonymizedAssignment `json:"assignments" toml:"assignments"`
}

// RunSummary implements Result.
func (a AnonymizedAssignments) RunSummary() Summary { return a.Summary }

func (AnonymizedAssignments) isResult() {}

// Anonymize strips the item keys from a. Vertex ids are kept and prefixed
// with "v:".
func Anonymize(a Assignments) AnonymizedAssignments {
	out := AnonymizedAssignments{
		Summary: a.Summary,
		Entries: make([]AnonymizedAssignment, len(a.Entries)),
	}

	for i, e := range a.Entries {
		out.Entries[i] = AnonymizedAssignment{Vertex: "v:" + e.VertexID, Label: e.Label}
	}

	return out
}
