package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMergeBaseCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "merge-base <a> <b>",
		Short: "Find a common ancestor of two revisions",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadRepository(cmd, flags)
			if err != nil {
				return err
			}

			base, ok := r.MergeBase(args[0], args[1])
			if !ok {
				return fmt.Errorf("no merge base for %q and %q", args[0], args[1])
			}
			fmt.Fprintln(cmd.OutOrStdout(), base)
			return nil
		},
	}
}
