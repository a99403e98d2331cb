package main

import (
	"github.com/spf13/cobra"
)

func newStatsCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Count objects and branches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadRepository(cmd, flags)
			if err != nil {
				return err
			}

			s := r.Statistics()
			out := cmd.OutOrStdout()
			printTitle(out, "Repository "+r.ID()[:8])
			printKeyNumber(out, "objects", s.TotalObjects)
			printKeyNumber(out, "commits", s.TotalCommits)
			printKeyNumber(out, "trees", s.TotalTrees)
			printKeyNumber(out, "blobs", s.TotalBlobs)
			printKeyNumber(out, "branches", s.BranchCount)
			printKeyValue(out, "current", s.CurrentRef)
			return nil
		},
	}
}
