package repo

import "github.com/odvcencio/commitgraph/pkg/object"

// MergeBase finds a common ancestor of two branches (or any revisions
// ResolveRevision accepts). ok is false when either side does not resolve or
// the histories share nothing.
//
// All ancestors of a are collected first; then b's history is walked in the
// same pre-order as HistoryFrom and the first commit found in a's set is
// returned. With several independent merge points this is a common ancestor
// reachable first in b's walk, not necessarily the unique lowest one.
func (r *Repository) MergeBase(a, b string) (object.Hash, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ha, ok := r.resolveRevisionLocked(a)
	if !ok {
		return "", false
	}
	hb, ok := r.resolveRevisionLocked(b)
	if !ok {
		return "", false
	}
	return r.mergeBaseLocked(ha, hb)
}

// MergeBaseCommits is MergeBase over commit hashes.
func (r *Repository) MergeBaseCommits(a, b object.Hash) (object.Hash, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.mergeBaseLocked(a, b)
}

func (r *Repository) mergeBaseLocked(a, b object.Hash) (object.Hash, bool) {
	if a == "" || b == "" {
		return "", false
	}

	ancestorsA := r.ancestorsLocked(a)
	var base object.Hash
	r.walkLocked(b, func(h object.Hash, _ *object.Commit) bool {
		if _, ok := ancestorsA[h]; ok {
			base = h
			return false
		}
		return true
	})
	return base, base != ""
}

// IsAncestor reports whether ancestor is reachable from descendant through
// parent links. A commit is its own ancestor.
func (r *Repository) IsAncestor(ancestor, descendant object.Hash) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.ancestorsLocked(descendant)[ancestor]
	return ok
}
