// Package diff compares the file trees of two commits.
package diff

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/odvcencio/commitgraph/pkg/object"
	"github.com/odvcencio/commitgraph/pkg/repo"
)

// ErrUnknownRevision is returned when a revision does not name a commit.
var ErrUnknownRevision = errors.New("unknown revision")

// ChangeType classifies what happened to a file between two trees.
type ChangeType int

const (
	Added    ChangeType = iota // File exists only in the after tree.
	Removed                    // File exists only in the before tree.
	Modified                   // File exists in both trees with different content.
)

func (t ChangeType) String() string {
	switch t {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Modified:
		return "modified"
	}
	return fmt.Sprintf("ChangeType(%d)", int(t))
}

// MarshalText encodes the change type by name.
func (t ChangeType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Line is one line of a file diff. Op is '+', '-' or ' '.
type Line struct {
	Op   byte   `json:"-" yaml:"-"`
	Text string `json:"text" yaml:"text"`
}

// FileDiff holds the change to a single path.
type FileDiff struct {
	Path   string      `json:"path" yaml:"path"`
	Type   ChangeType  `json:"type" yaml:"type"`
	Before object.Hash `json:"before,omitempty" yaml:"before,omitempty"` // empty for Added.
	After  object.Hash `json:"after,omitempty" yaml:"after,omitempty"`   // empty for Removed.
	Lines  []Line      `json:"-" yaml:"-"`
}

// Trees compares two flattened trees by path and returns the changes sorted
// by path. When a path repeats inside one tree the first occurrence counts.
func Trees(before, after []repo.TreeFile) []FileDiff {
	beforeMap := indexFiles(before)
	afterMap := indexFiles(after)

	var out []FileDiff
	for p, bh := range beforeMap {
		ah, ok := afterMap[p]
		switch {
		case !ok:
			out = append(out, FileDiff{Path: p, Type: Removed, Before: bh})
		case ah != bh:
			out = append(out, FileDiff{Path: p, Type: Modified, Before: bh, After: ah})
		}
	}
	for p, ah := range afterMap {
		if _, ok := beforeMap[p]; !ok {
			out = append(out, FileDiff{Path: p, Type: Added, After: ah})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

func indexFiles(files []repo.TreeFile) map[string]object.Hash {
	m := make(map[string]object.Hash, len(files))
	for _, f := range files {
		if _, dup := m[f.Path]; !dup {
			m[f.Path] = f.Hash
		}
	}
	return m
}

// Lines computes a line-level diff of two file contents.
func Lines(before, after []byte) []Line {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(string(before), string(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out []Line
	for _, d := range diffs {
		op := byte(' ')
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			op = '+'
		case diffmatchpatch.DiffDelete:
			op = '-'
		}
		for _, text := range splitLines(d.Text) {
			out = append(out, Line{Op: op, Text: text})
		}
	}
	return out
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// Revisions diffs the trees of two revisions. With withLines set, every
// change carries its line diff, read from the repository's blobs.
func Revisions(r *repo.Repository, from, to string, withLines bool) ([]FileDiff, error) {
	before, err := filesAt(r, from)
	if err != nil {
		return nil, err
	}
	after, err := filesAt(r, to)
	if err != nil {
		return nil, err
	}
	changes := Trees(before, after)
	if withLines {
		fillLines(r, changes)
	}
	return changes, nil
}

// Commit diffs a commit against its first parent. A root commit is diffed
// against the empty tree.
func Commit(r *repo.Repository, rev string, withLines bool) ([]FileDiff, error) {
	d, ok := r.CommitDetail(rev)
	if !ok {
		return nil, fmt.Errorf("diff %q: %w", rev, ErrUnknownRevision)
	}
	var before []repo.TreeFile
	if len(d.Parents) > 0 {
		before, _ = r.FlattenTree(d.Parents[0].Commit.TreeHash)
	}
	after, _ := r.FlattenTree(d.Commit.TreeHash)

	changes := Trees(before, after)
	if withLines {
		fillLines(r, changes)
	}
	return changes, nil
}

func filesAt(r *repo.Repository, rev string) ([]repo.TreeFile, error) {
	h, ok := r.ResolveRevision(rev)
	if !ok {
		return nil, fmt.Errorf("diff %q: %w", rev, ErrUnknownRevision)
	}
	c, ok := r.Store().GetCommit(h)
	if !ok {
		return nil, fmt.Errorf("diff %q: %w", rev, ErrUnknownRevision)
	}
	files, _ := r.FlattenTree(c.TreeHash)
	return files, nil
}

func fillLines(r *repo.Repository, changes []FileDiff) {
	for i := range changes {
		c := &changes[i]
		c.Lines = Lines(blobData(r, c.Before), blobData(r, c.After))
	}
}

func blobData(r *repo.Repository, h object.Hash) []byte {
	if h == "" {
		return nil
	}
	b, ok := r.Store().GetBlob(h)
	if !ok {
		return nil
	}
	return b.Data
}
