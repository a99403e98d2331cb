package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/odvcencio/commitgraph/pkg/analysis"
	"github.com/odvcencio/commitgraph/pkg/render"
)

func newDotCmd(flags *globalFlags) *cobra.Command {
	var detailed, positions bool
	var svgPath string

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Render the commit graph as Graphviz DOT or SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadRepository(cmd, flags)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			cfg := configFromContext(ctx)

			rep := analysis.Analyze(r.Snapshot(), analysis.Options{Layout: cfg.LayoutOptions()})
			dot := render.ToDOT(rep, render.Options{Detailed: detailed, Positions: positions})
			if svgPath == "" {
				fmt.Fprint(cmd.OutOrStdout(), dot)
				return nil
			}

			logger := loggerFromContext(ctx)
			logger.Debug("rendering svg", "nodes", len(rep.Order))
			svg, err := render.RenderSVG(ctx, dot)
			if err != nil {
				return err
			}
			if err := os.WriteFile(svgPath, svg, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", svgPath, err)
			}
			printSuccess(cmd.ErrOrStderr(), "rendered %d commits", len(rep.Order))
			printFile(cmd.ErrOrStderr(), svgPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&detailed, "detailed", false, "include author and branch membership in labels")
	cmd.Flags().BoolVar(&positions, "positions", false, "pin nodes to computed layout coordinates")
	cmd.Flags().StringVar(&svgPath, "svg", "", "render SVG to this file instead of printing DOT")
	return cmd
}
