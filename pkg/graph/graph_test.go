package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chain returns A→B→C (A is the newest commit).
func chain() ([]string, []Edge) {
	return []string{"A", "B", "C"}, []Edge{{From: "A", To: "B"}, {From: "B", To: "C"}}
}

// diamond returns M→L, M→R, L→B, R→B with B as the root commit.
func diamond() ([]string, []Edge) {
	nodes := []string{"M", "L", "R", "B"}
	edges := []Edge{
		{From: "M", To: "L"},
		{From: "M", To: "R"},
		{From: "L", To: "B"},
		{From: "R", To: "B"},
	}
	return nodes, edges
}

func indexOf(order []string) map[string]int {
	idx := make(map[string]int, len(order))
	for i, id := range order {
		idx[id] = i
	}
	return idx
}

func TestTopologicalSortChain(t *testing.T) {
	nodes, edges := chain()
	assert.Equal(t, []string{"A", "B", "C"}, TopologicalSort(nodes, edges))
}

func TestTopologicalSortChildrenBeforeParents(t *testing.T) {
	nodes, edges := diamond()
	order := TopologicalSort(nodes, edges)
	require.Len(t, order, 4)

	idx := indexOf(order)
	for _, e := range edges {
		assert.Less(t, idx[e.From], idx[e.To], "edge %s→%s", e.From, e.To)
	}
}

func TestTopologicalSortTieOrder(t *testing.T) {
	edges := []Edge{{From: "A", To: "R"}, {From: "B", To: "R"}}
	assert.Equal(t, []string{"B", "A", "R"}, TopologicalSort([]string{"A", "B", "R"}, edges))

	// Ready roots keep node order in the queue and come out reversed.
	assert.Equal(t, []string{"z", "y", "x"}, TopologicalSort([]string{"x", "y", "z"}, nil))
}

func TestTopologicalSortIncludesIsolatedAndEdgeOnlyNodes(t *testing.T) {
	order := TopologicalSort([]string{"lonely"}, []Edge{{From: "x", To: "y"}})
	assert.ElementsMatch(t, []string{"lonely", "x", "y"}, order)
	idx := indexOf(order)
	assert.Less(t, idx["x"], idx["y"])
}

func TestTopologicalSortEmpty(t *testing.T) {
	assert.Empty(t, TopologicalSort(nil, nil))
}

func TestTopologicalSortDropsCycle(t *testing.T) {
	order := TopologicalSort([]string{"a", "b", "c"}, []Edge{{From: "a", To: "b"}, {From: "b", To: "a"}})
	assert.Equal(t, []string{"c"}, order)
}

func TestLayoutLayers(t *testing.T) {
	nodes, edges := diamond()
	res := Layout(nodes, edges)

	require.Len(t, res.Layers, 3)
	assert.Equal(t, []string{"M"}, res.Layers[0])
	assert.ElementsMatch(t, []string{"L", "R"}, res.Layers[1])
	assert.Equal(t, []string{"B"}, res.Layers[2])

	for _, e := range edges {
		from, ok := res.Position(e.From)
		require.True(t, ok)
		to, ok := res.Position(e.To)
		require.True(t, ok)
		assert.Greater(t, to.Layer, from.Layer, "parent %s must sit below child %s", e.To, e.From)
		assert.Greater(t, to.Y, from.Y)
	}
}

func TestLayoutLongestPathLayering(t *testing.T) {
	// A reaches C both directly and through B: C must sit below B.
	edges := []Edge{{From: "A", To: "B"}, {From: "B", To: "C"}, {From: "A", To: "C"}}
	res := Layout([]string{"A", "B", "C"}, edges)

	c, ok := res.Position("C")
	require.True(t, ok)
	assert.Equal(t, 2, c.Layer)
}

func TestLayoutCentredSpacing(t *testing.T) {
	nodes, edges := diamond()
	res := Layout(nodes, edges)
	cfg := DefaultLayoutConfig()

	l, _ := res.Position("L")
	r, _ := res.Position("R")
	m, _ := res.Position("M")

	assert.InDelta(t, cfg.NodeWidth+cfg.HorizontalGap, abs(r.X-l.X), 1e-9)
	// Single-node layers and the two-node layer share the same centre line.
	assert.InDelta(t, m.X+cfg.NodeWidth/2, (l.X+r.X+cfg.NodeWidth)/2, 1e-9)
	assert.InDelta(t, 0, m.X+cfg.NodeWidth/2, 1e-9)
	assert.InDelta(t, cfg.NodeHeight+cfg.VerticalGap, l.Y-m.Y, 1e-9)

	assert.InDelta(t, 2*cfg.NodeWidth+cfg.HorizontalGap, res.Width, 1e-9)
	assert.InDelta(t, 3*cfg.NodeHeight+2*cfg.VerticalGap, res.Height, 1e-9)
}

func TestLayoutOptionsScaleSpacing(t *testing.T) {
	nodes, edges := chain()
	small := Layout(nodes, edges, WithNodeSize(10, 10), WithGaps(0, 5))
	big := Layout(nodes, edges, WithNodeSize(10, 10), WithGaps(0, 50))

	assert.Equal(t, 10.0, small.Config.NodeWidth)
	assert.Equal(t, 0.0, small.Config.HorizontalGap)

	c1, _ := small.Position("C")
	c2, _ := big.Position("C")
	assert.InDelta(t, 2*(10+5), c1.Y, 1e-9)
	assert.InDelta(t, 2*(10+50), c2.Y, 1e-9)
}

func TestLayoutWithConfig(t *testing.T) {
	cfg := LayoutConfig{NodeWidth: 1, NodeHeight: 2, HorizontalGap: 3, VerticalGap: 4}
	res := Layout([]string{"x"}, nil, WithConfig(cfg))
	assert.Equal(t, cfg, res.Config)
}

func TestLayoutEdgeRoutes(t *testing.T) {
	nodes, edges := chain()
	res := Layout(nodes, edges)
	cfg := res.Config
	require.Len(t, res.Edges, 2)

	route := res.Edges[0]
	a, _ := res.Position("A")
	b, _ := res.Position("B")
	assert.Equal(t, Point{X: a.X + cfg.NodeWidth/2, Y: a.Y + cfg.NodeHeight}, route.Start)
	assert.Equal(t, Point{X: b.X + cfg.NodeWidth/2, Y: b.Y}, route.End)

	mid := (route.Start.Y + route.End.Y) / 2
	assert.Equal(t, Point{X: route.Start.X, Y: mid}, route.Control1)
	assert.Equal(t, Point{X: route.End.X, Y: mid}, route.Control2)
}

func TestLayoutEmpty(t *testing.T) {
	res := Layout(nil, nil)
	assert.Empty(t, res.Nodes)
	assert.Empty(t, res.Layers)
	assert.Zero(t, res.Width)
	assert.Zero(t, res.Height)
}

func TestShortestPathChain(t *testing.T) {
	_, edges := chain()
	path, ok := ShortestPath("A", "C", edges)
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B", "C"}, path)
}

func TestShortestPathIgnoresDirection(t *testing.T) {
	_, edges := chain()
	path, ok := ShortestPath("C", "A", edges)
	require.True(t, ok)
	assert.Equal(t, []string{"C", "B", "A"}, path)
}

func TestShortestPathPicksFewestEdges(t *testing.T) {
	edges := []Edge{
		{From: "A", To: "B"}, {From: "B", To: "C"}, {From: "C", To: "D"},
		{From: "A", To: "D"},
	}
	path, ok := ShortestPath("A", "D", edges)
	require.True(t, ok)
	assert.Equal(t, []string{"A", "D"}, path)
}

func TestShortestPathUnreachable(t *testing.T) {
	_, edges := chain()
	path, ok := ShortestPath("A", "D", edges)
	assert.False(t, ok)
	assert.Nil(t, path)
}

func TestShortestPathSameNode(t *testing.T) {
	path, ok := ShortestPath("A", "A", nil)
	require.True(t, ok)
	assert.Equal(t, []string{"A"}, path)
}

func TestDetectCycle(t *testing.T) {
	nodes, edges := diamond()
	assert.False(t, DetectCycle(nodes, edges))

	assert.True(t, DetectCycle([]string{"a", "b"}, []Edge{{From: "a", To: "b"}, {From: "b", To: "a"}}))
	assert.True(t, DetectCycle([]string{"a"}, []Edge{{From: "a", To: "a"}}))
}

func TestDetectCycleDisconnectedComponent(t *testing.T) {
	nodes := []string{"a", "b", "x", "y", "z"}
	edges := []Edge{
		{From: "a", To: "b"},
		{From: "x", To: "y"}, {From: "y", To: "z"}, {From: "z", To: "x"},
	}
	assert.True(t, DetectCycle(nodes, edges))
}

func TestDetectCycleSharedDescendantIsNotCycle(t *testing.T) {
	// Reaching a fully processed node again is a cross edge, not a cycle.
	edges := []Edge{{From: "a", To: "c"}, {From: "b", To: "c"}, {From: "a", To: "b"}}
	assert.False(t, DetectCycle([]string{"a", "b", "c"}, edges))
}

func TestComputeMetrics(t *testing.T) {
	nodes, edges := diamond()
	m := ComputeMetrics(append(nodes, "solo"), edges)

	assert.Equal(t, 5, m.NodeCount)
	assert.Equal(t, 4, m.EdgeCount)
	assert.Equal(t, 2, m.OutDegree["M"])
	assert.Equal(t, 2, m.InDegree["B"])
	assert.Equal(t, 0, m.InDegree["solo"])
	assert.Equal(t, []string{"M", "solo"}, m.Roots)
	assert.Equal(t, []string{"B", "solo"}, m.Leaves)
	assert.Equal(t, 2, m.MaxDepth)
	assert.InDelta(t, 0.8, m.AvgInDegree, 1e-9)
	assert.InDelta(t, 0.8, m.AvgOutDegree, 1e-9)
}

func TestComputeMetricsEmpty(t *testing.T) {
	m := ComputeMetrics(nil, nil)
	assert.Zero(t, m.NodeCount)
	assert.Zero(t, m.AvgInDegree)
	assert.Zero(t, m.MaxDepth)
	assert.Empty(t, m.Roots)
}

func TestComputeMetricsLongestOfManyPaths(t *testing.T) {
	edges := []Edge{
		{From: "r", To: "a"}, {From: "a", To: "b"}, {From: "b", To: "c"},
		{From: "r", To: "c"},
	}
	m := ComputeMetrics([]string{"r", "a", "b", "c"}, edges)
	assert.Equal(t, 3, m.MaxDepth)
}

func TestComputeMetricsTerminatesOnCycle(t *testing.T) {
	edges := []Edge{{From: "r", To: "a"}, {From: "a", To: "b"}, {From: "b", To: "a"}}
	m := ComputeMetrics([]string{"r", "a", "b"}, edges)
	assert.Equal(t, 2, m.MaxDepth)
}

func TestBranchMembership(t *testing.T) {
	// main: C4 → C2 → C1, feature: C3 → C2 → C1
	edges := []Edge{
		{From: "C2", To: "C1"},
		{From: "C3", To: "C2"},
		{From: "C4", To: "C2"},
	}
	refs := map[string]string{"main": "C4", "feature": "C3", "empty": ""}
	got := BranchMembership(refs, edges)

	assert.Equal(t, []string{"C1", "C2", "C4"}, SortedMembers(got["main"]))
	assert.Equal(t, []string{"C1", "C2", "C3"}, SortedMembers(got["feature"]))
	assert.Empty(t, got["empty"])

	// Shared history is listed under both branches.
	assert.Contains(t, got["main"], "C2")
	assert.Contains(t, got["feature"], "C2")
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
