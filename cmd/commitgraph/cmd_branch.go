package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/odvcencio/commitgraph/pkg/object"
)

// newBranchCmd lists, creates or deletes branches. The repository is
// replayed from the scenario on every run, so a create or delete is shown
// together with the resulting branch list.
func newBranchCmd(flags *globalFlags) *cobra.Command {
	var deleteBranch string

	cmd := &cobra.Command{
		Use:   "branch [name [revision]]",
		Short: "List, create, or delete branches",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadRepository(cmd, flags)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			switch {
			case deleteBranch != "":
				if len(args) > 0 {
					return fmt.Errorf("--delete takes no positional arguments")
				}
				if !r.DeleteBranch(deleteBranch) {
					return fmt.Errorf("cannot delete branch %q: unknown or current branch", deleteBranch)
				}
				printSuccess(out, "deleted branch '%s'", deleteBranch)

			case len(args) == 2:
				target, err := resolveArg(r, args[1])
				if err != nil {
					return err
				}
				if !r.CreateBranchAt(args[0], object.Hash(target)) {
					return fmt.Errorf("cannot create branch %q at %q", args[0], args[1])
				}
				printSuccess(out, "created branch '%s' at %s", args[0], object.Hash(target).Short())

			case len(args) == 1:
				if !r.CreateBranch(args[0]) {
					return fmt.Errorf("cannot create branch %q: no commits yet or invalid name", args[0])
				}
				head, _ := r.Head()
				printSuccess(out, "created branch '%s' at %s", args[0], head.Short())
			}

			current := r.CurrentBranch()
			refs := r.Refs()
			for _, name := range r.ListBranches() {
				if name == current {
					fmt.Fprintf(out, "%s %s %s\n", iconCurrent, styleRef.Render(name), styleHash.Render(refs[name].Short()))
					continue
				}
				fmt.Fprintf(out, "  %s %s\n", name, styleHash.Render(refs[name].Short()))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&deleteBranch, "delete", "d", "", "delete the named branch")
	return cmd
}

func newReflogCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "reflog [ref]",
		Short: "Show reference movements",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadRepository(cmd, flags)
			if err != nil {
				return err
			}

			ref := "HEAD"
			if len(args) == 1 {
				ref = args[0]
			}
			entries := r.Reflog(ref)
			if len(entries) == 0 {
				return fmt.Errorf("no reflog for %q", ref)
			}

			out := cmd.OutOrStdout()
			for i, e := range entries {
				target := e.NewHash.Short()
				if target == "" {
					target = "deleted"
				}
				fmt.Fprintf(out, "%s %s@{%d}: %s\n", styleHash.Render(target), e.Ref, i, e.Reason)
			}
			return nil
		},
	}
}
