package graph

// Edge is a directed connection. In a commit graph From is the child commit
// and To is its parent.
type Edge struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// adjacency indexes edges by source node, preserving edge order.
type adjacency map[string][]string

func buildAdjacency(edges []Edge) adjacency {
	adj := make(adjacency, len(edges))
	for _, e := range edges {
		adj[e.From] = append(adj[e.From], e.To)
	}
	return adj
}

// collectNodes returns nodes followed by any edge endpoint not already listed,
// in first-seen order and without duplicates.
func collectNodes(nodes []string, edges []Edge) []string {
	seen := make(map[string]struct{}, len(nodes))
	out := make([]string, 0, len(nodes))
	add := func(id string) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	for _, n := range nodes {
		add(n)
	}
	for _, e := range edges {
		add(e.From)
		add(e.To)
	}
	return out
}
