package repo

import (
	"github.com/odvcencio/commitgraph/pkg/graph"
	"github.com/odvcencio/commitgraph/pkg/object"
)

// SnapshotNode summarises one commit for presentation.
type SnapshotNode struct {
	ID        object.Hash   `json:"id" yaml:"id"`
	ShortID   string        `json:"shortId" yaml:"shortId"`
	Message   string        `json:"message" yaml:"message"`
	Author    string        `json:"author" yaml:"author"`
	Timestamp int64         `json:"timestamp" yaml:"timestamp"`
	Parents   []object.Hash `json:"parents" yaml:"parents"`
}

// Snapshot is the commit graph reachable from every branch, ready to be
// handed to the graph algorithms.
type Snapshot struct {
	Nodes      []SnapshotNode         `json:"nodes" yaml:"nodes"`
	Edges      []graph.Edge           `json:"edges" yaml:"edges"`
	Refs       map[string]object.Hash `json:"refs" yaml:"refs"`
	CurrentRef string                 `json:"currentRef" yaml:"currentRef"`
}

// NodeIDs returns the node IDs in snapshot order.
func (s *Snapshot) NodeIDs() []string {
	ids := make([]string, len(s.Nodes))
	for i, n := range s.Nodes {
		ids[i] = string(n.ID)
	}
	return ids
}

// RefTargets returns the ref table with plain string values.
func (s *Snapshot) RefTargets() map[string]string {
	out := make(map[string]string, len(s.Refs))
	for name, h := range s.Refs {
		out[name] = string(h)
	}
	return out
}

// Node looks up a node by ID.
func (s *Snapshot) Node(id object.Hash) (SnapshotNode, bool) {
	for _, n := range s.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return SnapshotNode{}, false
}

// Snapshot collects every commit reachable from any branch. Branches are
// visited in name order and each history is walked like HistoryFrom; a commit
// shared by several branches appears once. Each node contributes one edge per
// parent found in the store, pointing from the commit to the parent.
func (r *Repository) Snapshot() *Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap := &Snapshot{
		Nodes:      []SnapshotNode{},
		Edges:      []graph.Edge{},
		Refs:       r.refsCopyLocked(),
		CurrentRef: r.head,
	}

	seen := make(map[object.Hash]struct{})
	for _, name := range r.sortedRefNamesLocked() {
		r.walkLocked(r.refs[name], func(h object.Hash, c *object.Commit) bool {
			if _, ok := seen[h]; ok {
				return true
			}
			seen[h] = struct{}{}
			snap.Nodes = append(snap.Nodes, SnapshotNode{
				ID:        h,
				ShortID:   h.Short(),
				Message:   c.Message,
				Author:    c.Author,
				Timestamp: c.Timestamp,
				Parents:   append([]object.Hash{}, c.Parents...),
			})
			for _, p := range c.Parents {
				if _, ok := r.store.GetCommit(p); ok {
					snap.Edges = append(snap.Edges, graph.Edge{From: string(h), To: string(p)})
				}
			}
			return true
		})
	}
	return snap
}
