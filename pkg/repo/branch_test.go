package repo

import (
	"testing"

	"github.com/odvcencio/commitgraph/pkg/object"
)

func TestBranch_CreateOnEmptyRepoFails(t *testing.T) {
	r := newTestRepo(t)
	if r.CreateBranch("feature") {
		t.Fatal("CreateBranch on empty repo should report failure")
	}
	if got := r.ListBranches(); len(got) != 0 {
		t.Errorf("ListBranches = %v, want none", got)
	}
}

func TestBranch_CreateListDelete(t *testing.T) {
	r := newTestRepo(t)
	head := commitFile(t, r, "a", "initial commit")

	if !r.CreateBranch("feature") {
		t.Fatal("CreateBranch(feature) failed")
	}
	if h, ok := r.ResolveRef("feature"); !ok || h != head {
		t.Errorf("feature = %s (%v), want %s", h, ok, head)
	}

	branches := r.ListBranches()
	if len(branches) != 2 {
		t.Fatalf("ListBranches: got %d branches, want 2", len(branches))
	}
	if branches[0] != "feature" || branches[1] != "main" {
		t.Errorf("branches = %v, want [feature main]", branches)
	}

	if !r.DeleteBranch("feature") {
		t.Fatal("DeleteBranch(feature) failed")
	}
	branches = r.ListBranches()
	if len(branches) != 1 || branches[0] != "main" {
		t.Errorf("branches after delete = %v, want [main]", branches)
	}
	if !r.Store().Has(head) {
		t.Error("deleting a branch must not remove commits")
	}
}

func TestBranch_DeleteCurrentOrUnknownFails(t *testing.T) {
	r := newTestRepo(t)
	commitFile(t, r, "a", "initial commit")

	if r.DeleteBranch("main") {
		t.Error("DeleteBranch(current) should fail")
	}
	if r.DeleteBranch("ghost") {
		t.Error("DeleteBranch(unknown) should fail")
	}
}

func TestBranch_BlankNameRejected(t *testing.T) {
	r := newTestRepo(t)
	commitFile(t, r, "a", "initial commit")
	if r.CreateBranch("  ") {
		t.Error("CreateBranch with a blank name should fail")
	}
}

func TestBranch_CreateAtExplicitCommit(t *testing.T) {
	r := newTestRepo(t)
	c1 := commitFile(t, r, "1", "one")
	commitFile(t, r, "2", "two")

	if !r.CreateBranchAt("old", c1) {
		t.Fatal("CreateBranchAt(old, c1) failed")
	}
	if h, _ := r.ResolveRef("old"); h != c1 {
		t.Errorf("old = %s, want %s", h, c1)
	}
}

func TestBranch_CreateAtRejectsNonCommit(t *testing.T) {
	r := newTestRepo(t)
	commitFile(t, r, "1", "one")
	tree := writeTree(t, r, "x", "y")

	if r.CreateBranchAt("bad", tree) {
		t.Error("CreateBranchAt with a tree hash should fail")
	}
	if r.CreateBranchAt("bad", "0123456789012345678901234567890123456789") {
		t.Error("CreateBranchAt with an unknown hash should fail")
	}
	if _, ok := r.ResolveRef("bad"); ok {
		t.Error("failed CreateBranchAt must not create the ref")
	}
}

func TestBranch_RecreateOverwrites(t *testing.T) {
	r := newTestRepo(t)
	c1 := commitFile(t, r, "1", "one")
	r.CreateBranch("feature")
	c2 := commitFile(t, r, "2", "two")

	if !r.CreateBranch("feature") {
		t.Fatal("re-creating an existing branch should succeed")
	}
	h, _ := r.ResolveRef("feature")
	if h != c2 {
		t.Errorf("feature = %s, want overwritten target %s (was %s)", h, c2, c1)
	}

	log := r.Reflog("feature")
	if len(log) != 2 || log[0].Reason != "branch: overwrite" || log[0].OldHash != c1 {
		t.Errorf("reflog = %+v", log)
	}
}

func TestCheckout_Existing(t *testing.T) {
	r := newTestRepo(t)
	commitFile(t, r, "1", "one")
	r.CreateBranch("feature")

	if !r.Checkout("feature") {
		t.Fatal("Checkout(feature) failed")
	}
	if r.CurrentBranch() != "feature" {
		t.Errorf("CurrentBranch = %q, want feature", r.CurrentBranch())
	}
}

func TestCheckout_MissingLeavesStateUnchanged(t *testing.T) {
	r := newTestRepo(t)
	if r.Checkout("main") {
		t.Error("Checkout of a branch with no commits should fail")
	}
	commitFile(t, r, "1", "one")
	if r.Checkout("nope") {
		t.Error("Checkout(nope) should fail")
	}
	if r.CurrentBranch() != "main" {
		t.Errorf("CurrentBranch = %q, want main", r.CurrentBranch())
	}
}

func TestBranch_IsolatedCommits(t *testing.T) {
	r := newTestRepo(t)
	base := commitFile(t, r, "1", "one")
	r.CreateBranch("feature")
	r.Checkout("feature")
	next := commitFile(t, r, "2", "two")

	mainHash, _ := r.ResolveRef("main")
	if mainHash != base {
		t.Errorf("main moved: got %s, want %s", mainHash, base)
	}
	featureHash, _ := r.ResolveRef("feature")
	if featureHash != next {
		t.Errorf("feature = %s, want %s", featureHash, next)
	}
}

func TestResolveRevision(t *testing.T) {
	r := newTestRepo(t)
	c := commitFile(t, r, "1", "one")

	cases := []string{"main", "HEAD", string(c), string(c)[:8]}
	for _, rev := range cases {
		h, ok := r.ResolveRevision(rev)
		if !ok || h != c {
			t.Errorf("ResolveRevision(%q) = %s (%v), want %s", rev, h, ok, c)
		}
	}

	for _, rev := range []string{"", "abc", "zzzzzzzz", string(c)[:3]} {
		if _, ok := r.ResolveRevision(rev); ok {
			t.Errorf("ResolveRevision(%q) should fail", rev)
		}
	}
}

func TestResolveRevisionIgnoresNonCommitPrefix(t *testing.T) {
	r := newTestRepo(t)
	blob := r.Put(object.NewBlob([]byte("data")))
	if _, ok := r.ResolveRevision(string(blob)[:10]); ok {
		t.Error("a blob prefix must not resolve as a revision")
	}
}
