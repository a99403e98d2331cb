package graph

import "slices"

// TopologicalSort orders nodes so that every edge source precedes its target:
// in a commit graph children come before parents, newest first.
//
// It runs Kahn's algorithm over the dependency direction (To before From),
// collecting nodes whose dependencies are all emitted, and reverses the result.
// Ties between nodes that become ready together are broken by discovery order
// (the order of nodes, then edges) inside Kahn's queue, not by timestamp.
// The final reverse flips that, so tied nodes come out in reverse discovery
// order: tips A and B of a shared parent R sort as [B, A, R]. Isolated nodes
// and nodes that only appear in edges are included.
//
// If the graph contains a cycle, the nodes on it never become ready and are
// left out of the result; use [DetectCycle] to check first.
func TopologicalSort(nodes []string, edges []Edge) []string {
	all := collectNodes(nodes, edges)

	dependents := make(map[string][]string, len(all))
	inDegree := make(map[string]int, len(all))
	for _, e := range edges {
		dependents[e.To] = append(dependents[e.To], e.From)
		inDegree[e.From]++
	}

	queue := make([]string, 0, len(all))
	for _, n := range all {
		if inDegree[n] == 0 {
			queue = append(queue, n)
		}
	}

	order := make([]string, 0, len(all))
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		order = append(order, curr)

		for _, next := range dependents[curr] {
			inDegree[next]--
			if inDegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	slices.Reverse(order)
	return order
}
