package diff

import (
	"fmt"
	"strings"
)

// FormatSummary produces one line per changed path.
//
// Output format:
//
//	+ path     (added)
//	~ path     (modified)
//	- path     (removed)
func FormatSummary(changes []FileDiff) string {
	var b strings.Builder
	for _, c := range changes {
		fmt.Fprintf(&b, "%c %s     (%s)\n", marker(c.Type), c.Path, c.Type)
	}
	return b.String()
}

// FormatLineDiff produces unified-diff-style output for one file. Unchanged
// lines are omitted.
//
//	--- a/path
//	+++ b/path
//	-old line
//	+new line
func FormatLineDiff(c FileDiff) string {
	var b strings.Builder
	from, to := "a/"+c.Path, "b/"+c.Path
	switch c.Type {
	case Added:
		from = "/dev/null"
	case Removed:
		to = "/dev/null"
	}
	fmt.Fprintf(&b, "--- %s\n+++ %s\n", from, to)
	for _, l := range c.Lines {
		if l.Op == ' ' {
			continue
		}
		fmt.Fprintf(&b, "%c%s\n", l.Op, l.Text)
	}
	return b.String()
}

func marker(t ChangeType) byte {
	switch t {
	case Added:
		return '+'
	case Removed:
		return '-'
	}
	return '~'
}
