package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/odvcencio/commitgraph/pkg/repo"
	"github.com/odvcencio/commitgraph/pkg/scenario"
)

// loadRepository replays the --scenario file into a fresh repository.
func loadRepository(cmd *cobra.Command, flags *globalFlags) (*repo.Repository, error) {
	if strings.TrimSpace(flags.scenario) == "" {
		return nil, fmt.Errorf("--scenario is required")
	}
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	s, err := scenario.Load(flags.scenario)
	if err != nil {
		return nil, err
	}
	opts := append(cfg.RepoOptions(), repo.WithLogger(logger))
	r, err := s.Run(opts...)
	if err != nil {
		return nil, fmt.Errorf("replay %s: %w", flags.scenario, err)
	}
	stats := r.Statistics()
	logger.Debug("scenario replayed",
		"file", flags.scenario,
		"steps", len(s.Steps),
		"commits", stats.TotalCommits,
		"branches", stats.BranchCount,
	)
	return r, nil
}

// resolveArg resolves a revision argument or fails with a readable error.
func resolveArg(r *repo.Repository, rev string) (string, error) {
	h, ok := r.ResolveRevision(rev)
	if !ok {
		return "", fmt.Errorf("unknown revision %q", rev)
	}
	return string(h), nil
}
