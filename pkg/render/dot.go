// Package render turns an analysis report into Graphviz DOT and SVG.
package render

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/odvcencio/commitgraph/pkg/analysis"
	"github.com/odvcencio/commitgraph/pkg/object"
)

// Options configures [ToDOT].
type Options struct {
	// Detailed adds author and branch membership to node labels.
	Detailed bool
	// Positions pins nodes to the report's layout coordinates.
	Positions bool
}

// pointsPerInch converts layout units to Graphviz pos coordinates.
const pointsPerInch = 72.0

// ToDOT emits a top-to-bottom digraph with one box per commit, labelled with
// its short id and message, and one plaintext node per branch pointing at
// its tip. Nodes follow the report's topological order.
func ToDOT(rep *analysis.Report, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"monospace\", fontsize=12, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, id := range rep.Order {
		attrs := []string{fmt.Sprintf("label=%q", nodeLabel(rep, id, opts.Detailed))}
		if opts.Positions {
			if p, ok := rep.Layout.Position(id); ok {
				cx := p.X + rep.Layout.Config.NodeWidth/2
				cy := -(p.Y + rep.Layout.Config.NodeHeight/2)
				attrs = append(attrs, fmt.Sprintf("pos=\"%.1f,%.1f!\"", cx, cy))
				attrs = append(attrs, fmt.Sprintf("width=%.2f, height=%.2f",
					rep.Layout.Config.NodeWidth/pointsPerInch, rep.Layout.Config.NodeHeight/pointsPerInch))
			}
		}
		if len(rep.Tips(id)) > 0 {
			attrs = append(attrs, "penwidth=2")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", id, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range rep.Snapshot.Edges {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	var names []string
	for name, h := range rep.Snapshot.Refs {
		if h != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if len(names) > 0 {
		buf.WriteString("\n")
	}
	for _, name := range names {
		ref := "ref:" + name
		label := name
		if name == rep.Snapshot.CurrentRef {
			label = "HEAD -> " + name
		}
		fmt.Fprintf(&buf, "  %q [shape=plaintext, style=\"\", label=%q];\n", ref, label)
		fmt.Fprintf(&buf, "  %q -> %q [style=dashed, arrowhead=none];\n", ref, string(rep.Snapshot.Refs[name]))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeLabel(rep *analysis.Report, id string, detailed bool) string {
	short := object.Hash(id).Short()
	var msg, author string
	if n, ok := rep.Snapshot.Node(object.Hash(id)); ok {
		msg = firstLine(n.Message)
		author = n.Author
	}
	label := short + " " + msg
	if !detailed {
		return label
	}
	parts := []string{label}
	if author != "" {
		parts = append(parts, "author: "+author)
	}
	if branches := rep.BranchesContaining(id); len(branches) > 0 {
		parts = append(parts, "on: "+strings.Join(branches, ", "))
	}
	return strings.Join(parts, "\n")
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
