package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/odvcencio/commitgraph/pkg/object"
	"github.com/odvcencio/commitgraph/pkg/repo"
)

func newLogCmd(flags *globalFlags) *cobra.Command {
	var oneline bool
	var limit int

	cmd := &cobra.Command{
		Use:   "log [revision]",
		Short: "Show commit history",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadRepository(cmd, flags)
			if err != nil {
				return err
			}

			start := repo.HeadRef
			if len(args) == 1 {
				start = args[0]
			}
			h, err := resolveArg(r, start)
			if err != nil {
				if start == repo.HeadRef {
					fmt.Fprintln(cmd.OutOrStdout(), "no commits yet")
					return nil
				}
				return err
			}

			commits := r.HistoryFrom(object.Hash(h))
			if limit > 0 && len(commits) > limit {
				commits = commits[:limit]
			}

			out := cmd.OutOrStdout()
			tips := tipsByHash(r)
			current := r.CurrentBranch()
			for _, c := range commits {
				writeLogEntry(out, c, buildDecoration(tips[c.Hash()], current), oneline)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&oneline, "oneline", false, "show each commit on a single line")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of commits to show (0 = all)")
	return cmd
}

func writeLogEntry(out io.Writer, c *object.Commit, decoration string, oneline bool) {
	h := c.Hash()
	if oneline {
		line := styleHash.Render(h.Short())
		if decoration != "" {
			line += " " + decoration
		}
		fmt.Fprintf(out, "%s %s\n", line, firstLine(c.Message))
		return
	}

	header := "commit " + styleHash.Render(string(h))
	if decoration != "" {
		header += " " + decoration
	}
	fmt.Fprintln(out, header)
	if c.IsMerge() {
		shorts := make([]string, len(c.Parents))
		for i, p := range c.Parents {
			shorts[i] = p.Short()
		}
		fmt.Fprintf(out, "Merge:  %s\n", strings.Join(shorts, " "))
	}
	fmt.Fprintf(out, "Author: %s\n", c.Author)
	fmt.Fprintf(out, "Date:   %s\n", time.Unix(c.Timestamp, 0).UTC().Format("2006-01-02 15:04:05"))
	fmt.Fprintln(out)
	for _, line := range strings.Split(c.Message, "\n") {
		fmt.Fprintf(out, "    %s\n", line)
	}
	fmt.Fprintln(out)
}

// tipsByHash inverts the ref table.
func tipsByHash(r *repo.Repository) map[object.Hash][]string {
	out := make(map[object.Hash][]string)
	for name, h := range r.Refs() {
		out[h] = append(out[h], name)
	}
	for _, names := range out {
		sort.Strings(names)
	}
	return out
}

// buildDecoration renders "(HEAD -> main, feature)" for the branches
// pointing at a commit.
func buildDecoration(names []string, current string) string {
	if len(names) == 0 {
		return ""
	}
	parts := make([]string, 0, len(names))
	for _, name := range names {
		if name == current {
			parts = append([]string{"HEAD -> " + name}, parts...)
			continue
		}
		parts = append(parts, name)
	}
	return styleRef.Render("(" + strings.Join(parts, ", ") + ")")
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
