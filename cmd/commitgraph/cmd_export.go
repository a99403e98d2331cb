package main

import (
	"github.com/spf13/cobra"

	"github.com/odvcencio/commitgraph/pkg/analysis"
	"github.com/odvcencio/commitgraph/pkg/export"
)

// exportFlags select where and how a command writes its document.
type exportFlags struct {
	output string
	format string
}

func (f *exportFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "write to file (format from extension: .json, .yaml, .yml, optional .zst)")
	cmd.Flags().StringVarP(&f.format, "format", "f", "json", "stdout format: json or yaml")
}

func (f *exportFlags) write(cmd *cobra.Command, v any) error {
	if f.output != "" {
		if err := export.WriteFile(f.output, v); err != nil {
			return err
		}
		printFile(cmd.ErrOrStderr(), f.output)
		return nil
	}
	format, err := export.ParseFormat(f.format)
	if err != nil {
		return err
	}
	return export.Write(cmd.OutOrStdout(), v, export.Options{Format: format})
}

func newSnapshotCmd(flags *globalFlags) *cobra.Command {
	var ef exportFlags
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Export every commit reachable from any branch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadRepository(cmd, flags)
			if err != nil {
				return err
			}
			return ef.write(cmd, r.Snapshot())
		},
	}
	ef.register(cmd)
	return cmd
}

func newAnalyzeCmd(flags *globalFlags) *cobra.Command {
	var ef exportFlags
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Export order, layout, metrics and branch membership",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadRepository(cmd, flags)
			if err != nil {
				return err
			}
			cfg := configFromContext(cmd.Context())
			rep := analysis.Analyze(r.Snapshot(), analysis.Options{Layout: cfg.LayoutOptions()})
			if rep.HasCycle {
				loggerFromContext(cmd.Context()).Warn("commit graph contains a cycle")
			}
			return ef.write(cmd, rep)
		},
	}
	ef.register(cmd)
	return cmd
}
