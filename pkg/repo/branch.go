package repo

import (
	"strings"

	"github.com/odvcencio/commitgraph/pkg/object"
)

// CreateBranch creates a branch pointing at the commit HEAD resolves to. It
// reports false, creating nothing, when HEAD has no commit yet or the name is
// blank. An existing branch with the same name is overwritten.
func (r *Repository) CreateBranch(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	head, ok := r.headCommitLocked()
	if !ok {
		return false
	}
	return r.createBranchLocked(name, head)
}

// CreateBranchAt creates a branch pointing at target. The target must be a
// commit in the store; otherwise nothing changes and false is returned. An
// existing branch with the same name is overwritten.
func (r *Repository) CreateBranchAt(name string, target object.Hash) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store.GetCommit(target); !ok {
		return false
	}
	return r.createBranchLocked(name, target)
}

func (r *Repository) createBranchLocked(name string, target object.Hash) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	reason := "branch"
	if _, exists := r.refs[name]; exists {
		reason = "branch: overwrite"
	}
	r.setRefLocked(name, target, reason)
	return true
}

// DeleteBranch removes a branch. It refuses (returns false) when the branch
// is the current one or does not exist. Commits stay in the store.
func (r *Repository) DeleteBranch(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name == r.head {
		return false
	}
	old, ok := r.refs[name]
	if !ok {
		return false
	}
	delete(r.refs, name)
	r.appendReflogLocked(name, old, "", "delete")
	r.logger.Debug("branch deleted", "ref", name, "old", old.Short())
	return true
}

// Checkout makes name the current branch. Only existing branches can be
// checked out; otherwise nothing changes and false is returned.
func (r *Repository) Checkout(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.refs[name]; !ok {
		return false
	}
	if r.head != name {
		r.logger.Debug("checkout", "from", r.head, "to", name)
	}
	r.head = name
	return true
}
