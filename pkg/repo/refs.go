package repo

import (
	"sort"
	"strings"

	"github.com/odvcencio/commitgraph/pkg/object"
)

// HeadRef is the pseudo reference that resolves through the current branch.
const HeadRef = "HEAD"

// minPrefixLen is the shortest abbreviated hash ResolveRevision accepts.
const minPrefixLen = 4

// CurrentBranch returns the name HEAD points at. The branch may not exist yet
// in an empty repository.
func (r *Repository) CurrentBranch() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.head
}

// Head resolves HEAD to a commit hash. ok is false while the current branch
// has no commits.
func (r *Repository) Head() (object.Hash, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.headCommitLocked()
}

func (r *Repository) headCommitLocked() (object.Hash, bool) {
	h, ok := r.refs[r.head]
	return h, ok
}

// ResolveRef returns the commit a branch points at. "HEAD" resolves through
// the current branch.
func (r *Repository) ResolveRef(name string) (object.Hash, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resolveRefLocked(name)
}

func (r *Repository) resolveRefLocked(name string) (object.Hash, bool) {
	if name == HeadRef {
		return r.headCommitLocked()
	}
	h, ok := r.refs[name]
	return h, ok
}

// ResolveRevision accepts a branch name, "HEAD", a full commit hash, or an
// unambiguous hash prefix of at least four characters.
func (r *Repository) ResolveRevision(rev string) (object.Hash, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resolveRevisionLocked(rev)
}

func (r *Repository) resolveRevisionLocked(rev string) (object.Hash, bool) {
	rev = strings.TrimSpace(rev)
	if rev == "" {
		return "", false
	}
	if h, ok := r.resolveRefLocked(rev); ok {
		return h, true
	}
	if _, ok := r.store.GetCommit(object.Hash(rev)); ok {
		return object.Hash(rev), true
	}
	if len(rev) < minPrefixLen {
		return "", false
	}

	var match object.Hash
	for _, h := range r.store.Hashes() {
		if !strings.HasPrefix(string(h), rev) {
			continue
		}
		if _, ok := r.store.GetCommit(h); !ok {
			continue
		}
		if match != "" {
			return "", false
		}
		match = h
	}
	return match, match != ""
}

// ListBranches returns branch names sorted alphabetically.
func (r *Repository) ListBranches() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedRefNamesLocked()
}

func (r *Repository) sortedRefNamesLocked() []string {
	names := make([]string, 0, len(r.refs))
	for name := range r.refs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Refs returns a copy of the ref table.
func (r *Repository) Refs() map[string]object.Hash {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.refsCopyLocked()
}

func (r *Repository) refsCopyLocked() map[string]object.Hash {
	out := make(map[string]object.Hash, len(r.refs))
	for k, v := range r.refs {
		out[k] = v
	}
	return out
}

// setRefLocked moves a ref and records the movement in the reflog.
func (r *Repository) setRefLocked(name string, target object.Hash, reason string) {
	old := r.refs[name]
	r.refs[name] = target
	r.appendReflogLocked(name, old, target, reason)
	r.logger.Debug("ref updated", "ref", name, "old", old.Short(), "new", target.Short(), "reason", reason)
}
