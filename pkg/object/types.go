package object

// Hash is a 40-character hex-encoded BLAKE2b-160 digest.
type Hash string

// Short returns the abbreviated form of h used for display.
func (h Hash) Short() string {
	if len(h) <= ShortHashLen {
		return string(h)
	}
	return string(h[:ShortHashLen])
}

// ObjectType identifies the kind of object stored.
type ObjectType string

const (
	TypeBlob   ObjectType = "blob"
	TypeTree   ObjectType = "tree"
	TypeCommit ObjectType = "commit"
)

const (
	// Tree mode constants compatible with Git's canonical mode strings.
	TreeModeDir        = "40000"
	TreeModeFile       = "100644"
	TreeModeExecutable = "100755"
)

// Object is implemented by every record the Store can hold.
type Object interface {
	Type() ObjectType
	Hash() Hash
}

// Blob holds raw file data.
type Blob struct {
	Data []byte
}

// NewBlob returns a Blob holding a private copy of data.
func NewBlob(data []byte) *Blob {
	return &Blob{Data: MarshalBlob(&Blob{Data: data})}
}

func (b *Blob) Type() ObjectType { return TypeBlob }

// Hash fingerprints the blob over (kind, content).
func (b *Blob) Hash() Hash { return HashObject(TypeBlob, MarshalBlob(b)) }

// TreeEntry is one named pointer inside a tree.
type TreeEntry struct {
	Mode string     `json:"mode" yaml:"mode"`
	Name string     `json:"name" yaml:"name"`
	Hash Hash       `json:"hash" yaml:"hash"`
	Kind ObjectType `json:"kind" yaml:"kind"` // TypeBlob or TypeTree
}

// Tree is an ordered list of entries. Entries keep insertion order and names
// are not required to be unique. AddEntry is the only mutation.
type Tree struct {
	entries []TreeEntry
	hash    Hash
}

// NewTree returns a tree holding entries in the given order.
func NewTree(entries ...TreeEntry) *Tree {
	t := &Tree{entries: append([]TreeEntry(nil), entries...)}
	t.rehash()
	return t
}

func (t *Tree) Type() ObjectType { return TypeTree }

// Hash returns the fingerprint over (kind, entries) as of the last append.
func (t *Tree) Hash() Hash {
	if t.hash == "" {
		t.rehash()
	}
	return t.hash
}

// Entries returns a copy of the entry list.
func (t *Tree) Entries() []TreeEntry {
	return append([]TreeEntry(nil), t.entries...)
}

// Len reports the number of entries.
func (t *Tree) Len() int { return len(t.entries) }

// AddEntry appends an entry and recomputes the tree's fingerprint.
func (t *Tree) AddEntry(mode, name string, target Hash, kind ObjectType) Hash {
	t.entries = append(t.entries, TreeEntry{Mode: mode, Name: name, Hash: target, Kind: kind})
	t.rehash()
	return t.hash
}

func (t *Tree) rehash() {
	t.hash = HashObject(TypeTree, MarshalTree(t))
}

// clone returns an independent copy. The store keeps clones so later appends
// on the caller's tree never change what an old fingerprint resolves to.
func (t *Tree) clone() *Tree {
	return &Tree{entries: t.Entries(), hash: t.Hash()}
}

// Commit points to a tree and zero or more parents. Commits are treated as
// immutable: their fingerprint is derived from every field.
type Commit struct {
	TreeHash  Hash   `json:"tree" yaml:"tree"`
	Parents   []Hash `json:"parents" yaml:"parents"`
	Author    string `json:"author" yaml:"author"`
	Message   string `json:"message" yaml:"message"`
	Timestamp int64  `json:"timestamp" yaml:"timestamp"` // Unix seconds
}

func (c *Commit) Type() ObjectType { return TypeCommit }

// Hash fingerprints the commit over its tree, parents, author, timestamp and
// message.
func (c *Commit) Hash() Hash { return HashObject(TypeCommit, MarshalCommit(c)) }

// IsRoot reports whether the commit has no parents.
func (c *Commit) IsRoot() bool { return len(c.Parents) == 0 }

// IsMerge reports whether the commit has two or more parents.
func (c *Commit) IsMerge() bool { return len(c.Parents) > 1 }
