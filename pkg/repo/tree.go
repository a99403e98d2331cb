package repo

import (
	"path"
	"sort"
	"strings"

	"github.com/odvcencio/commitgraph/pkg/object"
)

// TreeFile is a single file in a flattened tree.
type TreeFile struct {
	Path string      `json:"path" yaml:"path"`
	Hash object.Hash `json:"hash" yaml:"hash"`
}

// WriteFiles stores a blob per file and the trees holding them, returning
// the root tree hash.
//
// Paths use forward slashes (e.g. "pkg/util/util.go"). Files are grouped by
// directory and subtrees are created recursively. Entries are added in
// sorted name order so the result does not depend on map iteration.
func (r *Repository) WriteFiles(files map[string][]byte) object.Hash {
	clean := make(map[string][]byte, len(files))
	for p, data := range files {
		p = strings.Trim(p, "/")
		if p != "" {
			clean[p] = data
		}
	}
	return r.writeTreeDir(clean, "")
}

func (r *Repository) writeTreeDir(files map[string][]byte, prefix string) object.Hash {
	direct := make(map[string][]byte)
	subdirs := make(map[string]struct{})

	for p, data := range files {
		rel := p
		if prefix != "" {
			if !strings.HasPrefix(p, prefix+"/") {
				continue
			}
			rel = p[len(prefix)+1:]
		}
		if dir, _, nested := strings.Cut(rel, "/"); nested {
			subdirs[dir] = struct{}{}
			continue
		}
		direct[rel] = data
	}

	names := make([]string, 0, len(direct)+len(subdirs))
	for name := range direct {
		names = append(names, name)
	}
	for name := range subdirs {
		// A name cannot be both a file and a directory.
		if _, isFile := direct[name]; !isFile {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	tree := object.NewTree()
	for _, name := range names {
		if data, isFile := direct[name]; isFile {
			blob := r.store.Put(object.NewBlob(data))
			tree.AddEntry(object.TreeModeFile, name, blob, object.TypeBlob)
			continue
		}
		child := name
		if prefix != "" {
			child = prefix + "/" + name
		}
		tree.AddEntry(object.TreeModeDir, name, r.writeTreeDir(files, child), object.TypeTree)
	}
	return r.store.Put(tree)
}

// FlattenTree walks a tree recursively and returns every blob entry with its
// full path, in tree order. Subtrees missing from the store are skipped.
func (r *Repository) FlattenTree(h object.Hash) ([]TreeFile, bool) {
	if _, ok := r.store.GetTree(h); !ok {
		return nil, false
	}
	return r.flattenTreeRec(h, "", map[object.Hash]bool{}), true
}

func (r *Repository) flattenTreeRec(h object.Hash, prefix string, onPath map[object.Hash]bool) []TreeFile {
	tree, ok := r.store.GetTree(h)
	if !ok || onPath[h] {
		return nil
	}
	onPath[h] = true
	defer delete(onPath, h)

	var result []TreeFile
	for _, entry := range tree.Entries() {
		full := entry.Name
		if prefix != "" {
			full = path.Join(prefix, entry.Name)
		}
		if entry.Kind == object.TypeTree {
			result = append(result, r.flattenTreeRec(entry.Hash, full, onPath)...)
			continue
		}
		result = append(result, TreeFile{Path: full, Hash: entry.Hash})
	}
	return result
}
