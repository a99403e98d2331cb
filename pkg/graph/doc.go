// Package graph provides algorithms over plain node/edge collections.
//
// Nothing here knows about objects or repositories: a graph is a slice of
// node IDs plus a slice of [Edge] values. For commit graphs an edge points
// from a commit to one of its parents, so From is the later commit and To
// the earlier one.
//
// # Algorithms
//
//   - [TopologicalSort]: Kahn's algorithm, newest (edge sources) first
//   - [Layout]: layered coordinate assignment with curved edge routes
//   - [ShortestPath]: breadth-first search treating edges as undirected
//   - [DetectCycle]: white/gray/black depth-first search
//   - [ComputeMetrics]: degrees, roots, leaves and maximum depth
//   - [BranchMembership]: reachable node sets per named reference
//
// All traversals use explicit stacks or queues so deep histories do not
// grow the goroutine stack.
package graph
