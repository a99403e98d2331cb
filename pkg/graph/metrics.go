package graph

// Metrics summarises the shape of a graph.
type Metrics struct {
	NodeCount    int            `json:"nodeCount" yaml:"nodeCount"`
	EdgeCount    int            `json:"edgeCount" yaml:"edgeCount"`
	InDegree     map[string]int `json:"inDegree" yaml:"inDegree"`
	OutDegree    map[string]int `json:"outDegree" yaml:"outDegree"`
	Roots        []string       `json:"roots" yaml:"roots"`   // in-degree 0
	Leaves       []string       `json:"leaves" yaml:"leaves"` // out-degree 0
	MaxDepth     int            `json:"maxDepth" yaml:"maxDepth"`
	AvgInDegree  float64        `json:"avgInDegree" yaml:"avgInDegree"`
	AvgOutDegree float64        `json:"avgOutDegree" yaml:"avgOutDegree"`
}

// ComputeMetrics derives degree counts, roots, leaves and the longest
// root-to-leaf path (MaxDepth, counted in edges).
//
// The depth walk starts a fresh depth-first search from every root and does
// not memoize, so heavily shared suffixes are walked once per path that
// reaches them. That is fine for repository-sized histories but grows
// exponentially with diamond density.
func ComputeMetrics(nodes []string, edges []Edge) *Metrics {
	all := collectNodes(nodes, edges)
	m := &Metrics{
		NodeCount: len(all),
		EdgeCount: len(edges),
		InDegree:  make(map[string]int, len(all)),
		OutDegree: make(map[string]int, len(all)),
		Roots:     []string{},
		Leaves:    []string{},
	}
	for _, id := range all {
		m.InDegree[id] = 0
		m.OutDegree[id] = 0
	}
	for _, e := range edges {
		m.OutDegree[e.From]++
		m.InDegree[e.To]++
	}
	for _, id := range all {
		if m.InDegree[id] == 0 {
			m.Roots = append(m.Roots, id)
		}
		if m.OutDegree[id] == 0 {
			m.Leaves = append(m.Leaves, id)
		}
	}
	if m.NodeCount > 0 {
		m.AvgInDegree = float64(m.EdgeCount) / float64(m.NodeCount)
		m.AvgOutDegree = m.AvgInDegree
	}

	adj := buildAdjacency(edges)
	for _, root := range m.Roots {
		if d := longestPathFrom(root, adj); d > m.MaxDepth {
			m.MaxDepth = d
		}
	}
	return m
}

// longestPathFrom walks every path from root with an explicit stack. Nodes on
// the current path are skipped so a malformed cyclic input still terminates.
func longestPathFrom(root string, adj adjacency) int {
	type frame struct {
		id    string
		depth int
		next  int
	}

	best := 0
	onPath := map[string]bool{root: true}
	stack := []frame{{id: root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.depth > best {
			best = top.depth
		}
		children := adj[top.id]
		if top.next >= len(children) {
			delete(onPath, top.id)
			stack = stack[:len(stack)-1]
			continue
		}
		child := children[top.next]
		top.next++
		if onPath[child] {
			continue
		}
		onPath[child] = true
		stack = append(stack, frame{id: child, depth: top.depth + 1})
	}
	return best
}
