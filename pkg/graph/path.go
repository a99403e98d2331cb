package graph

// ShortestPath finds a path with the fewest edges between from and to,
// treating every edge as undirected. Each queued state carries its full path
// prefix, so the first path that reaches to is returned. ok is false when to
// is unreachable. A path from a node to itself is that single node.
func ShortestPath(from, to string, edges []Edge) (path []string, ok bool) {
	if from == to {
		return []string{from}, true
	}

	neighbors := make(map[string][]string, len(edges))
	for _, e := range edges {
		neighbors[e.From] = append(neighbors[e.From], e.To)
		neighbors[e.To] = append(neighbors[e.To], e.From)
	}

	visited := map[string]struct{}{from: {}}
	queue := [][]string{{from}}
	for len(queue) > 0 {
		prefix := queue[0]
		queue = queue[1:]

		for _, next := range neighbors[prefix[len(prefix)-1]] {
			if _, seen := visited[next]; seen {
				continue
			}
			p := make([]string, len(prefix)+1)
			copy(p, prefix)
			p[len(prefix)] = next
			if next == to {
				return p, true
			}
			visited[next] = struct{}{}
			queue = append(queue, p)
		}
	}
	return nil, false
}
