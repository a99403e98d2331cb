package repo

import (
	"slices"

	"github.com/odvcencio/commitgraph/pkg/object"
)

// ReflogEntry records one movement of a reference. An empty OldHash marks
// creation and an empty NewHash marks deletion.
type ReflogEntry struct {
	Ref       string      `json:"ref" yaml:"ref"`
	OldHash   object.Hash `json:"oldHash" yaml:"oldHash"`
	NewHash   object.Hash `json:"newHash" yaml:"newHash"`
	Timestamp int64       `json:"timestamp" yaml:"timestamp"`
	Reason    string      `json:"reason" yaml:"reason"`
}

func (r *Repository) appendReflogLocked(ref string, oldHash, newHash object.Hash, reason string) {
	if reason == "" {
		reason = "update"
	}
	r.reflog[ref] = append(r.reflog[ref], ReflogEntry{
		Ref:       ref,
		OldHash:   oldHash,
		NewHash:   newHash,
		Timestamp: r.now().Unix(),
		Reason:    reason,
	})
}

// Reflog returns the movements of ref, newest first. "HEAD" reads the log of
// the current branch.
func (r *Repository) Reflog(ref string) []ReflogEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if ref == HeadRef {
		ref = r.head
	}
	entries := slices.Clone(r.reflog[ref])
	slices.Reverse(entries)
	return entries
}
