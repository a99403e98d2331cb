// Package analysis runs the graph algorithms over a repository snapshot and
// bundles their results into one serialisable report.
package analysis

import (
	"github.com/odvcencio/commitgraph/pkg/graph"
	"github.com/odvcencio/commitgraph/pkg/repo"
)

// Options configures [Analyze].
type Options struct {
	// Layout overrides the default spacing passed to graph.Layout.
	Layout []graph.LayoutOption
}

// Report is everything the presentation layer needs to draw and describe a
// commit graph.
type Report struct {
	Snapshot *repo.Snapshot      `json:"snapshot" yaml:"snapshot"`
	Order    []string            `json:"order" yaml:"order"`
	Layout   *graph.LayoutResult `json:"layout" yaml:"layout"`
	Metrics  *graph.Metrics      `json:"metrics" yaml:"metrics"`
	Branches map[string][]string `json:"branches" yaml:"branches"`
	HasCycle bool                `json:"hasCycle" yaml:"hasCycle"`
}

// Analyze derives order, layout, metrics and branch membership for snap.
// A nil snapshot is treated as empty.
func Analyze(snap *repo.Snapshot, opts Options) *Report {
	if snap == nil {
		snap = &repo.Snapshot{}
	}
	nodes := snap.NodeIDs()
	edges := snap.Edges

	membership := graph.BranchMembership(snap.RefTargets(), edges)
	branches := make(map[string][]string, len(membership))
	for name, set := range membership {
		branches[name] = graph.SortedMembers(set)
	}

	return &Report{
		Snapshot: snap,
		Order:    graph.TopologicalSort(nodes, edges),
		Layout:   graph.Layout(nodes, edges, opts.Layout...),
		Metrics:  graph.ComputeMetrics(nodes, edges),
		Branches: branches,
		HasCycle: graph.DetectCycle(nodes, edges),
	}
}

// Tips returns the branch names pointing at id, sorted.
func (r *Report) Tips(id string) []string {
	var names []string
	for _, name := range r.sortedRefNames() {
		if string(r.Snapshot.Refs[name]) == id {
			names = append(names, name)
		}
	}
	return names
}

// BranchesContaining returns the branches whose history includes id, sorted.
func (r *Report) BranchesContaining(id string) []string {
	var names []string
	for _, name := range r.sortedRefNames() {
		for _, member := range r.Branches[name] {
			if member == id {
				names = append(names, name)
				break
			}
		}
	}
	return names
}

func (r *Report) sortedRefNames() []string {
	set := make(map[string]struct{}, len(r.Snapshot.Refs))
	for name := range r.Snapshot.Refs {
		set[name] = struct{}{}
	}
	return graph.SortedMembers(set)
}
