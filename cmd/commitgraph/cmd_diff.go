package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/odvcencio/commitgraph/pkg/diff"
	"github.com/odvcencio/commitgraph/pkg/repo"
)

func newDiffCmd(flags *globalFlags) *cobra.Command {
	var stat bool

	cmd := &cobra.Command{
		Use:   "diff [from] [to]",
		Short: "Show file changes between commits",
		Long: `With no arguments, diff HEAD against its first parent. With one revision,
diff that commit against its first parent. With two, diff from against to.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadRepository(cmd, flags)
			if err != nil {
				return err
			}

			var changes []diff.FileDiff
			switch len(args) {
			case 0:
				changes, err = diff.Commit(r, repo.HeadRef, !stat)
			case 1:
				changes, err = diff.Commit(r, args[0], !stat)
			default:
				changes, err = diff.Revisions(r, args[0], args[1], !stat)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if stat {
				fmt.Fprint(out, diff.FormatSummary(changes))
				return nil
			}
			for _, c := range changes {
				fmt.Fprint(out, diff.FormatLineDiff(c))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&stat, "stat", false, "list changed paths only")
	return cmd
}
