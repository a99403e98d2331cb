package object

import (
	"sort"
	"sync"
)

// Store is an in-memory content-addressed object store keyed by fingerprint.
// Objects are never removed or mutated in place. Store is safe for
// concurrent use.
type Store struct {
	mu      sync.RWMutex
	objects map[Hash]Object
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{objects: make(map[Hash]Object)}
}

// Put stores obj under its current fingerprint and returns it. Putting the
// same content twice leaves a single entry. Objects are copied on the way
// in, so later AddEntry calls on the caller's tree do not affect the stored
// one.
func (s *Store) Put(obj Object) Hash {
	obj = cloneObject(obj)
	h := obj.Hash()

	s.mu.Lock()
	s.objects[h] = obj
	s.mu.Unlock()
	return h
}

func cloneObject(obj Object) Object {
	switch o := obj.(type) {
	case *Blob:
		return NewBlob(o.Data)
	case *Tree:
		return o.clone()
	case *Commit:
		c := *o
		c.Parents = append([]Hash(nil), o.Parents...)
		return &c
	default:
		return obj
	}
}

// Get looks up an object by fingerprint and returns a copy of it, so
// changes made by the caller never reach the stored object. A missing
// object is reported with ok == false.
func (s *Store) Get(h Hash) (Object, bool) {
	s.mu.RLock()
	obj, ok := s.objects[h]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return cloneObject(obj), true
}

// Has reports whether the store contains an object with the given hash.
func (s *Store) Has(h Hash) bool {
	s.mu.RLock()
	_, ok := s.objects[h]
	s.mu.RUnlock()
	return ok
}

// Len reports the total number of stored objects.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

// CountByType returns the number of stored objects of each kind.
func (s *Store) CountByType() map[ObjectType]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[ObjectType]int, 3)
	for _, obj := range s.objects {
		counts[obj.Type()]++
	}
	return counts
}

// Hashes returns every stored fingerprint in sorted order.
func (s *Store) Hashes() []Hash {
	s.mu.RLock()
	out := make([]Hash, 0, len(s.objects))
	for h := range s.objects {
		out = append(out, h)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ---------------------------------------------------------------------------
// Typed convenience methods
// ---------------------------------------------------------------------------

// PutBlob stores data as a Blob and returns its hash.
func (s *Store) PutBlob(data []byte) Hash {
	return s.Put(NewBlob(data))
}

// GetBlob returns the Blob stored under h, if h names a blob.
func (s *Store) GetBlob(h Hash) (*Blob, bool) {
	obj, ok := s.Get(h)
	if !ok {
		return nil, false
	}
	b, ok := obj.(*Blob)
	return b, ok
}

// GetTree returns the Tree stored under h, if h names a tree.
func (s *Store) GetTree(h Hash) (*Tree, bool) {
	obj, ok := s.Get(h)
	if !ok {
		return nil, false
	}
	t, ok := obj.(*Tree)
	return t, ok
}

// GetCommit returns the Commit stored under h, if h names a commit.
func (s *Store) GetCommit(h Hash) (*Commit, bool) {
	obj, ok := s.Get(h)
	if !ok {
		return nil, false
	}
	c, ok := obj.(*Commit)
	return c, ok
}
