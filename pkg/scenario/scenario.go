// Package scenario replays a scripted history, read from TOML, onto a
// repository.
//
// A scenario file is a list of steps:
//
//	start = "2024-01-01T00:00:00Z"
//	author = "Alice"
//
//	[[step]]
//	op = "commit"
//	message = "Initial commit"
//	[step.files]
//	"README.md" = "hello"
//	"src/main.go" = "package main"
//
//	[[step]]
//	op = "branch"
//	name = "feature"
//	at = "@Initial commit"
//
//	[[step]]
//	op = "checkout"
//	name = "feature"
//
// Paths containing "/" produce nested trees. The scenario clock starts at
// start and advances one minute before each commit, so replaying the same
// file always yields the same fingerprints.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/odvcencio/commitgraph/pkg/object"
	"github.com/odvcencio/commitgraph/pkg/repo"
)

// Step operations.
const (
	OpCommit   = "commit"
	OpBranch   = "branch"
	OpCheckout = "checkout"
	OpDelete   = "delete"
)

// DefaultAuthor signs commits when neither the step nor the scenario names
// an author.
const DefaultAuthor = "commitgraph"

var (
	ErrUnknownOp  = errors.New("unknown step op")
	ErrRejected   = errors.New("operation rejected")
	ErrUnresolved = errors.New("revision not found")
)

// DefaultStart is the scenario clock origin when the file sets none.
var DefaultStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Scenario is a decoded scenario file.
type Scenario struct {
	Start  time.Time `toml:"start"`
	Author string    `toml:"author"`
	Steps  []Step    `toml:"step"`

	clock *Clock
}

// Step is one scripted operation.
type Step struct {
	Op      string            `toml:"op"`
	Name    string            `toml:"name"`
	Message string            `toml:"message"`
	Author  string            `toml:"author"`
	At      string            `toml:"at"`
	Files   map[string]string `toml:"files"`
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a scenario and checks every step names a known op.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if _, err := toml.Decode(string(data), &s); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if s.Start.IsZero() {
		s.Start = DefaultStart
	}
	if s.Author == "" {
		s.Author = DefaultAuthor
	}
	for i, st := range s.Steps {
		switch st.Op {
		case OpCommit:
		case OpBranch, OpCheckout, OpDelete:
			if strings.TrimSpace(st.Name) == "" {
				return nil, fmt.Errorf("step %d: %s: name is required", i+1, st.Op)
			}
		default:
			return nil, fmt.Errorf("step %d: %w %q", i+1, ErrUnknownOp, st.Op)
		}
	}
	s.clock = NewClock(s.Start)
	return &s, nil
}

// Clock is a manual time source. Now is safe to hand to repo.WithClock.
type Clock struct {
	now time.Time
}

func NewClock(start time.Time) *Clock { return &Clock{now: start.UTC()} }

func (c *Clock) Now() time.Time { return c.now }

func (c *Clock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// Clock returns the scenario clock.
func (s *Scenario) Clock() *Clock {
	if s.clock == nil {
		s.clock = NewClock(s.Start)
	}
	return s.clock
}

// NewRepository creates an empty repository driven by the scenario clock.
// The clock restarts at Start, so every replay yields the same fingerprints.
func (s *Scenario) NewRepository(opts ...repo.Option) *repo.Repository {
	s.clock = NewClock(s.Start)
	return repo.New(append(opts, repo.WithClock(s.clock.Now))...)
}

// Run replays the scenario into a fresh repository.
func (s *Scenario) Run(opts ...repo.Option) (*repo.Repository, error) {
	r := s.NewRepository(opts...)
	if _, err := s.Apply(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Apply replays every step onto r and returns the commits it made, keyed by
// message; a repeated message maps to its latest commit. Replay stops at the
// first failing step.
func (s *Scenario) Apply(r *repo.Repository) (map[string]object.Hash, error) {
	made := make(map[string]object.Hash)
	for i, st := range s.Steps {
		if err := s.applyStep(r, st, made); err != nil {
			return made, fmt.Errorf("step %d (%s): %w", i+1, st.Op, err)
		}
	}
	return made, nil
}

func (s *Scenario) applyStep(r *repo.Repository, st Step, made map[string]object.Hash) error {
	switch st.Op {
	case OpCommit:
		tree := writeFiles(r, st.Files)
		author := st.Author
		if author == "" {
			author = s.Author
		}
		s.Clock().Advance(time.Minute)
		c := r.Commit(tree, st.Message, author)
		made[st.Message] = c.Hash()
		return nil

	case OpBranch:
		if st.At == "" {
			if !r.CreateBranch(st.Name) {
				return fmt.Errorf("branch %q: %w", st.Name, ErrRejected)
			}
			return nil
		}
		target, err := resolveAt(r, st.At, made)
		if err != nil {
			return err
		}
		if !r.CreateBranchAt(st.Name, target) {
			return fmt.Errorf("branch %q at %s: %w", st.Name, target.Short(), ErrRejected)
		}
		return nil

	case OpCheckout:
		if !r.Checkout(st.Name) {
			return fmt.Errorf("checkout %q: %w", st.Name, ErrRejected)
		}
		return nil

	case OpDelete:
		if !r.DeleteBranch(st.Name) {
			return fmt.Errorf("delete %q: %w", st.Name, ErrRejected)
		}
		return nil
	}
	return fmt.Errorf("%w %q", ErrUnknownOp, st.Op)
}

// resolveAt maps "@message" to a commit made earlier in the scenario and
// anything else through Repository.ResolveRevision.
func resolveAt(r *repo.Repository, at string, made map[string]object.Hash) (object.Hash, error) {
	if msg, ok := strings.CutPrefix(at, "@"); ok {
		h, found := made[msg]
		if !found {
			return "", fmt.Errorf("commit with message %q: %w", msg, ErrUnresolved)
		}
		return h, nil
	}
	h, ok := r.ResolveRevision(at)
	if !ok {
		return "", fmt.Errorf("%q: %w", at, ErrUnresolved)
	}
	return h, nil
}

func writeFiles(r *repo.Repository, files map[string]string) object.Hash {
	data := make(map[string][]byte, len(files))
	for p, content := range files {
		data[p] = []byte(content)
	}
	return r.WriteFiles(data)
}
