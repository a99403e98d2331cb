package repo

import (
	"strings"

	"github.com/odvcencio/commitgraph/pkg/object"
)

// LookupPath follows a slash-separated path from treeHash and returns the
// entry it names. Directories resolve too. When names repeat inside a tree
// the first entry wins.
func (r *Repository) LookupPath(treeHash object.Hash, relPath string) (object.TreeEntry, bool) {
	relPath = strings.Trim(relPath, "/")
	if relPath == "" {
		return object.TreeEntry{}, false
	}
	parts := strings.Split(relPath, "/")
	current := treeHash

	for i, part := range parts {
		tree, ok := r.store.GetTree(current)
		if !ok {
			return object.TreeEntry{}, false
		}

		var (
			entry object.TreeEntry
			found bool
		)
		for _, te := range tree.Entries() {
			if te.Name == part {
				entry = te
				found = true
				break
			}
		}
		if !found {
			return object.TreeEntry{}, false
		}
		if i == len(parts)-1 {
			return entry, true
		}
		if entry.Kind != object.TypeTree {
			return object.TreeEntry{}, false
		}
		current = entry.Hash
	}
	return object.TreeEntry{}, false
}

// ReadFile returns the blob at relPath in the tree of the commit rev
// resolves to.
func (r *Repository) ReadFile(rev, relPath string) ([]byte, bool) {
	r.mu.RLock()
	h, ok := r.resolveRevisionLocked(rev)
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	c, ok := r.store.GetCommit(h)
	if !ok {
		return nil, false
	}
	entry, ok := r.LookupPath(c.TreeHash, relPath)
	if !ok || entry.Kind == object.TypeTree {
		return nil, false
	}
	blob, ok := r.store.GetBlob(entry.Hash)
	if !ok {
		return nil, false
	}
	return append([]byte(nil), blob.Data...), true
}
