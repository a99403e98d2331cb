package repo

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/odvcencio/commitgraph/pkg/object"
)

// DefaultBranch is the reference HEAD names in a fresh repository.
const DefaultBranch = "main"

// Repository owns an object store, a ref table mapping branch names to commit
// hashes, and the name of the current reference (HEAD).
//
// Mutations (Commit, CreateBranch, CreateBranchAt, Checkout, DeleteBranch)
// take an exclusive lock. Queries share a read lock and observe a consistent
// snapshot, so a Repository can be handed to concurrent readers.
type Repository struct {
	mu sync.RWMutex

	store  *object.Store
	refs   map[string]object.Hash
	head   string
	reflog map[string][]ReflogEntry

	id     uuid.UUID
	now    func() time.Time
	logger *log.Logger
}

// Option configures a Repository.
type Option func(*Repository)

// WithDefaultBranch sets the reference HEAD starts on.
func WithDefaultBranch(name string) Option {
	return func(r *Repository) {
		if name != "" {
			r.head = name
		}
	}
}

// WithClock overrides the time source used for commit timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) {
		if now != nil {
			r.now = now
		}
	}
}

// WithLogger attaches a logger. Ref movements are logged at debug level.
func WithLogger(l *log.Logger) Option {
	return func(r *Repository) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates an empty repository with HEAD on [DefaultBranch].
func New(opts ...Option) *Repository {
	r := &Repository{
		store:  object.NewStore(),
		refs:   make(map[string]object.Hash),
		head:   DefaultBranch,
		reflog: make(map[string][]ReflogEntry),
		id:     uuid.New(),
		now:    time.Now,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With("repo", r.id.String()[:8])
	return r
}

// ID returns the repository instance identifier.
func (r *Repository) ID() string { return r.id.String() }

// Store exposes the object store so callers can add blobs and trees before
// committing.
func (r *Repository) Store() *object.Store { return r.store }

// Put stores obj and returns its hash.
func (r *Repository) Put(obj object.Object) object.Hash {
	return r.store.Put(obj)
}

// Get looks up an object by hash.
func (r *Repository) Get(h object.Hash) (object.Object, bool) {
	return r.store.Get(h)
}
