package repo

import "github.com/odvcencio/commitgraph/pkg/object"

// CommitDetail bundles a commit with its resolved tree entries and parents.
type CommitDetail struct {
	Hash    object.Hash        `json:"hash" yaml:"hash"`
	Commit  *object.Commit     `json:"commit" yaml:"commit"`
	Entries []object.TreeEntry `json:"entries" yaml:"entries"`
	Parents []ParentDetail     `json:"parents" yaml:"parents"`
}

// ParentDetail is a parent commit together with its hash.
type ParentDetail struct {
	Hash   object.Hash    `json:"hash" yaml:"hash"`
	Commit *object.Commit `json:"commit" yaml:"commit"`
}

// CommitDetail looks up a commit by revision and resolves its tree and
// parents through the store. A tree missing from the store leaves Entries
// empty; missing parents are skipped.
func (r *Repository) CommitDetail(rev string) (*CommitDetail, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.resolveRevisionLocked(rev)
	if !ok {
		return nil, false
	}
	c, ok := r.store.GetCommit(h)
	if !ok {
		return nil, false
	}

	d := &CommitDetail{
		Hash:    h,
		Commit:  c,
		Entries: []object.TreeEntry{},
		Parents: []ParentDetail{},
	}
	if tree, ok := r.store.GetTree(c.TreeHash); ok {
		d.Entries = tree.Entries()
	}
	for _, p := range c.Parents {
		if pc, ok := r.store.GetCommit(p); ok {
			d.Parents = append(d.Parents, ParentDetail{Hash: p, Commit: pc})
		}
	}
	return d, true
}
