// Package server exposes a repository as a read-only JSON API.
//
// Routes:
//
//	GET /api/snapshot
//	GET /api/stats
//	GET /api/commits/{id}
//	GET /api/commits/{id}/files
//	GET /api/commits/{id}/raw?path=<path>
//	GET /api/history?start=<rev>
//	GET /api/merge-base?a=<rev>&b=<rev>
//	GET /api/diff?to=<rev>[&from=<rev>]
//	GET /api/analysis
//	GET /api/path?from=<rev>&to=<rev>
//	GET /api/reflog/{ref}
//
// Lookups that find nothing answer 404 with {"error": "..."}.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/odvcencio/commitgraph/pkg/analysis"
	"github.com/odvcencio/commitgraph/pkg/diff"
	"github.com/odvcencio/commitgraph/pkg/graph"
	"github.com/odvcencio/commitgraph/pkg/object"
	"github.com/odvcencio/commitgraph/pkg/repo"
)

// Server serves one repository. Handlers only read, so requests run
// concurrently under the repository's read lock.
type Server struct {
	repo   *repo.Repository
	layout []graph.LayoutOption
	logger *log.Logger
	router chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithLayout sets the spacing used by /api/analysis.
func WithLayout(opts ...graph.LayoutOption) Option {
	return func(s *Server) { s.layout = opts }
}

// New builds the router for r.
func New(r *repo.Repository, opts ...Option) *Server {
	s := &Server{repo: r, logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Use(s.repositoryID)

	r.Route("/api", func(r chi.Router) {
		r.Get("/snapshot", s.handleSnapshot)
		r.Get("/stats", s.handleStats)
		r.Get("/commits/{id}", s.handleCommit)
		r.Get("/commits/{id}/files", s.handleFiles)
		r.Get("/commits/{id}/raw", s.handleRaw)
		r.Get("/history", s.handleHistory)
		r.Get("/merge-base", s.handleMergeBase)
		r.Get("/diff", s.handleDiff)
		r.Get("/analysis", s.handleAnalysis)
		r.Get("/path", s.handlePath)
		r.Get("/reflog/{ref}", s.handleReflog)
	})
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Microsecond),
		)
	})
}

func (s *Server) repositoryID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Repository-ID", s.repo.ID())
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleSnapshot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.repo.Snapshot())
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.repo.Statistics())
}

func (s *Server) handleCommit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	d, ok := s.repo.CommitDetail(id)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("commit %q not found", id))
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleFiles(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	d, ok := s.repo.CommitDetail(id)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("commit %q not found", id))
		return
	}
	files, ok := s.repo.FlattenTree(d.Commit.TreeHash)
	if !ok {
		files = []repo.TreeFile{}
	}
	writeJSON(w, http.StatusOK, files)
}

func (s *Server) handleRaw(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p := r.URL.Query().Get("path")
	data, ok := s.repo.ReadFile(id, p)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("file %q not found at %q", p, id))
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

type historyEntry struct {
	Hash   object.Hash    `json:"hash"`
	Commit *object.Commit `json:"commit"`
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	if start == "" {
		start = repo.HeadRef
	}
	h, ok := s.repo.ResolveRevision(start)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("revision %q not found", start))
		return
	}
	commits := s.repo.HistoryFrom(h)
	out := make([]historyEntry, len(commits))
	for i, c := range commits {
		out[i] = historyEntry{Hash: c.Hash(), Commit: c}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleMergeBase(w http.ResponseWriter, r *http.Request) {
	a, b := r.URL.Query().Get("a"), r.URL.Query().Get("b")
	if a == "" || b == "" {
		writeError(w, http.StatusBadRequest, "query parameters a and b are required")
		return
	}
	base, ok := s.repo.MergeBase(a, b)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("no merge base for %q and %q", a, b))
		return
	}
	writeJSON(w, http.StatusOK, map[string]object.Hash{"mergeBase": base})
}

// handleDiff lists changed paths. Without from, to is diffed against its
// first parent.
func (s *Server) handleDiff(w http.ResponseWriter, r *http.Request) {
	from, to := r.URL.Query().Get("from"), r.URL.Query().Get("to")
	if to == "" {
		writeError(w, http.StatusBadRequest, "query parameter to is required")
		return
	}
	var (
		changes []diff.FileDiff
		err     error
	)
	if from == "" {
		changes, err = diff.Commit(s.repo, to, false)
	} else {
		changes, err = diff.Revisions(s.repo, from, to, false)
	}
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if changes == nil {
		changes = []diff.FileDiff{}
	}
	writeJSON(w, http.StatusOK, changes)
}

func (s *Server) handleAnalysis(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, analysis.Analyze(s.repo.Snapshot(), analysis.Options{Layout: s.layout}))
}

func (s *Server) handlePath(w http.ResponseWriter, r *http.Request) {
	from, to := r.URL.Query().Get("from"), r.URL.Query().Get("to")
	if from == "" || to == "" {
		writeError(w, http.StatusBadRequest, "query parameters from and to are required")
		return
	}
	hf, ok := s.repo.ResolveRevision(from)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("revision %q not found", from))
		return
	}
	ht, ok := s.repo.ResolveRevision(to)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("revision %q not found", to))
		return
	}
	path, ok := graph.ShortestPath(string(hf), string(ht), s.repo.Snapshot().Edges)
	if !ok {
		writeError(w, http.StatusNotFound, "no path")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"path": path, "length": len(path) - 1})
}

func (s *Server) handleReflog(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")
	entries := s.repo.Reflog(ref)
	if len(entries) == 0 {
		writeError(w, http.StatusNotFound, fmt.Sprintf("no reflog for %q", ref))
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
