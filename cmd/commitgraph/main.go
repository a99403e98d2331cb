package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/odvcencio/commitgraph/pkg/config"
)

var version = "0.1.0-dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	verbose  bool
	config   string
	scenario string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:          "commitgraph",
		Short:        "Inspect content-addressed commit graphs",
		Long:         `commitgraph replays a scripted history into an in-memory object store and reports on the resulting commit DAG: history, merge bases, layout, metrics and shortest paths.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.config)
			if err != nil {
				return err
			}
			level, _ := cfg.Level()
			if flags.verbose {
				level = debugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level))
			ctx = withConfig(ctx, cfg)
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&flags.config, "config", "c", config.FileName, "path to config file")
	root.PersistentFlags().StringVarP(&flags.scenario, "scenario", "s", "", "scenario file to replay")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newLogCmd(flags))
	root.AddCommand(newStatsCmd(flags))
	root.AddCommand(newShowCmd(flags))
	root.AddCommand(newDiffCmd(flags))
	root.AddCommand(newBranchCmd(flags))
	root.AddCommand(newReflogCmd(flags))
	root.AddCommand(newMergeBaseCmd(flags))
	root.AddCommand(newSnapshotCmd(flags))
	root.AddCommand(newAnalyzeCmd(flags))
	root.AddCommand(newPathCmd(flags))
	root.AddCommand(newDotCmd(flags))
	root.AddCommand(newServeCmd(flags))

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "commitgraph %s\n", version)
		},
	}
}
