package graph

import "sort"

// BranchMembership returns, for each named reference, the set of nodes
// reachable from its target by following edges From → To. A node reachable
// from several references appears in every one of their sets. References
// whose target is empty yield an empty set.
func BranchMembership(refs map[string]string, edges []Edge) map[string]map[string]struct{} {
	adj := buildAdjacency(edges)
	out := make(map[string]map[string]struct{}, len(refs))

	for name, tip := range refs {
		members := make(map[string]struct{})
		out[name] = members
		if tip == "" {
			continue
		}

		stack := []string{tip}
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if _, seen := members[id]; seen {
				continue
			}
			members[id] = struct{}{}
			stack = append(stack, adj[id]...)
		}
	}
	return out
}

// SortedMembers flattens a membership set into a sorted slice.
func SortedMembers(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
