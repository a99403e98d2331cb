package repo

import (
	"slices"

	"github.com/odvcencio/commitgraph/pkg/object"
)

// Commit records a new commit on the current branch.
//
//  1. Resolve HEAD to get the parent commit hash (if any)
//  2. Create the Commit with tree hash, parent, author, timestamp, message
//  3. Write the commit to the store
//  4. Move the current branch to the new commit
//
// The tree is not required to exist in the store. Past commits are never
// touched; only the branch pointer moves.
func (r *Repository) Commit(treeHash object.Hash, message, author string) *object.Commit {
	r.mu.Lock()
	defer r.mu.Unlock()

	var parents []object.Hash
	parent, hasParent := r.headCommitLocked()
	if hasParent {
		parents = append(parents, parent)
	}

	c := &object.Commit{
		TreeHash:  treeHash,
		Parents:   parents,
		Author:    author,
		Message:   message,
		Timestamp: r.now().Unix(),
	}
	h := r.store.Put(c)

	reason := "commit"
	if !hasParent {
		reason = "commit (initial)"
	}
	r.setRefLocked(r.head, h, reason)
	return c
}

// History lists commits reachable from HEAD. It is empty when the current
// branch has no commits.
func (r *Repository) History() []*object.Commit {
	r.mu.RLock()
	defer r.mu.RUnlock()

	head, ok := r.headCommitLocked()
	if !ok {
		return nil
	}
	return r.walkLocked(head, nil)
}

// HistoryFrom lists commits reachable from start.
//
// The walk is depth-first pre-order: a commit is emitted on first visit, then
// its parents are explored in the order they are listed. Each commit appears
// once even when several paths reach it. For linear chains this is newest
// first; for merges it is not a strict topological order. Parents missing from
// the store are skipped.
func (r *Repository) HistoryFrom(start object.Hash) []*object.Commit {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.walkLocked(start, nil)
}

// walkLocked runs the pre-order parent walk from start. When visit is
// non-nil it is called for each commit and the walk stops once it returns
// false.
func (r *Repository) walkLocked(start object.Hash, visit func(object.Hash, *object.Commit) bool) []*object.Commit {
	var out []*object.Commit
	visited := make(map[object.Hash]struct{})
	stack := []object.Hash{start}

	for len(stack) > 0 {
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, seen := visited[h]; seen {
			continue
		}
		visited[h] = struct{}{}

		c, ok := r.store.GetCommit(h)
		if !ok {
			continue
		}
		if visit != nil && !visit(h, c) {
			break
		}
		out = append(out, c)

		// Push in reverse so the first-listed parent is popped first.
		parents := slices.Clone(c.Parents)
		slices.Reverse(parents)
		stack = append(stack, parents...)
	}
	return out
}

// ancestorsLocked returns every commit reachable from start, start included.
func (r *Repository) ancestorsLocked(start object.Hash) map[object.Hash]struct{} {
	set := make(map[object.Hash]struct{})
	r.walkLocked(start, func(h object.Hash, _ *object.Commit) bool {
		set[h] = struct{}{}
		return true
	})
	return set
}
