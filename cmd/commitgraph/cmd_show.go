package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/odvcencio/commitgraph/pkg/object"
	"github.com/odvcencio/commitgraph/pkg/repo"
)

func newShowCmd(flags *globalFlags) *cobra.Command {
	var recursive bool

	cmd := &cobra.Command{
		Use:   "show [revision]",
		Short: "Show a commit with its tree and parents",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadRepository(cmd, flags)
			if err != nil {
				return err
			}

			rev := repo.HeadRef
			if len(args) == 1 {
				rev = args[0]
			}
			d, ok := r.CommitDetail(rev)
			if !ok {
				return fmt.Errorf("unknown revision %q", rev)
			}

			out := cmd.OutOrStdout()
			writeLogEntry(out, d.Commit, buildDecoration(tipsByHash(r)[d.Hash], r.CurrentBranch()), false)

			fmt.Fprintf(out, "tree %s\n", styleHash.Render(string(d.Commit.TreeHash)))
			if recursive {
				files, _ := r.FlattenTree(d.Commit.TreeHash)
				for _, f := range files {
					fmt.Fprintf(out, "  %s\t%s\n", styleHash.Render(f.Hash.Short()), f.Path)
				}
			} else {
				writeEntries(out, d.Entries)
			}
			for _, p := range d.Parents {
				fmt.Fprintf(out, "parent %s %s\n", styleHash.Render(p.Hash.Short()), firstLine(p.Commit.Message))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "list every file in the tree with its full path")
	return cmd
}

func writeEntries(out io.Writer, entries []object.TreeEntry) {
	for _, e := range entries {
		hash := styleDim.Render("-")
		if e.Hash != "" {
			hash = styleHash.Render(e.Hash.Short())
		}
		kind := e.Kind
		if kind == "" {
			kind = object.TypeBlob
		}
		fmt.Fprintf(out, "  %s %s %s\t%s\n", e.Mode, kind, hash, e.Name)
	}
}
