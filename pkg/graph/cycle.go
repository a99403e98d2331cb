package graph

// DetectCycle reports whether the directed graph contains a cycle.
//
// It uses depth-first search with white/gray/black coloring: reaching a gray
// node (one still on the current path) closes a cycle. The search restarts
// from every white node, so disconnected components are covered.
func DetectCycle(nodes []string, edges []Edge) bool {
	const (
		white = iota
		gray
		black
	)

	adj := buildAdjacency(edges)
	color := make(map[string]int)

	type frame struct {
		id   string
		next int
	}

	for _, start := range collectNodes(nodes, edges) {
		if color[start] != white {
			continue
		}
		color[start] = gray
		stack := []frame{{id: start}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			children := adj[top.id]
			if top.next >= len(children) {
				color[top.id] = black
				stack = stack[:len(stack)-1]
				continue
			}
			child := children[top.next]
			top.next++

			switch color[child] {
			case gray:
				return true
			case white:
				color[child] = gray
				stack = append(stack, frame{id: child})
			}
		}
	}
	return false
}
