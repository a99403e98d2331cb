package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/odvcencio/commitgraph/pkg/graph"
	"github.com/odvcencio/commitgraph/pkg/object"
)

func newPathCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "path <from> <to>",
		Short: "Shortest path between two commits, ignoring edge direction",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadRepository(cmd, flags)
			if err != nil {
				return err
			}
			from, err := resolveArg(r, args[0])
			if err != nil {
				return err
			}
			to, err := resolveArg(r, args[1])
			if err != nil {
				return err
			}

			path, ok := graph.ShortestPath(from, to, r.Snapshot().Edges)
			if !ok {
				return fmt.Errorf("no path between %q and %q", args[0], args[1])
			}
			shorts := make([]string, len(path))
			for i, id := range path {
				shorts[i] = styleHash.Render(object.Hash(id).Short())
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, strings.Join(shorts, " "+styleDim.Render(iconArrow)+" "))
			fmt.Fprintf(out, "%d edges\n", len(path)-1)
			return nil
		},
	}
}
