package graph

// Default layout dimensions, in abstract units (pixels for most renderers).
const (
	DefaultNodeWidth     = 180.0
	DefaultNodeHeight    = 60.0
	DefaultHorizontalGap = 40.0
	DefaultVerticalGap   = 80.0
)

// LayoutConfig holds the spacing used by [Layout].
type LayoutConfig struct {
	NodeWidth     float64 `json:"nodeWidth" yaml:"nodeWidth"`
	NodeHeight    float64 `json:"nodeHeight" yaml:"nodeHeight"`
	HorizontalGap float64 `json:"horizontalGap" yaml:"horizontalGap"`
	VerticalGap   float64 `json:"verticalGap" yaml:"verticalGap"`
}

// DefaultLayoutConfig returns the default spacing.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		NodeWidth:     DefaultNodeWidth,
		NodeHeight:    DefaultNodeHeight,
		HorizontalGap: DefaultHorizontalGap,
		VerticalGap:   DefaultVerticalGap,
	}
}

// LayoutOption overrides part of the default [LayoutConfig].
type LayoutOption func(*LayoutConfig)

// WithNodeSize sets the width and height of every node box.
func WithNodeSize(width, height float64) LayoutOption {
	return func(c *LayoutConfig) {
		c.NodeWidth = width
		c.NodeHeight = height
	}
}

// WithGaps sets the space between neighbouring boxes in a layer and between
// consecutive layers.
func WithGaps(horizontal, vertical float64) LayoutOption {
	return func(c *LayoutConfig) {
		c.HorizontalGap = horizontal
		c.VerticalGap = vertical
	}
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg LayoutConfig) LayoutOption {
	return func(c *LayoutConfig) { *c = cfg }
}

// Point is a 2D coordinate.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// NodePosition is the top-left corner of a node box plus its layer.
type NodePosition struct {
	ID    string  `json:"id" yaml:"id"`
	X     float64 `json:"x" yaml:"x"`
	Y     float64 `json:"y" yaml:"y"`
	Layer int     `json:"layer" yaml:"layer"`
}

// EdgeRoute is a cubic curve from the bottom centre of the From box to the
// top centre of the To box. Both control points sit on the vertical midpoint.
type EdgeRoute struct {
	From     string `json:"from" yaml:"from"`
	To       string `json:"to" yaml:"to"`
	Start    Point  `json:"start" yaml:"start"`
	Control1 Point  `json:"control1" yaml:"control1"`
	Control2 Point  `json:"control2" yaml:"control2"`
	End      Point  `json:"end" yaml:"end"`
}

// LayoutResult is the output of [Layout].
type LayoutResult struct {
	Config LayoutConfig   `json:"config" yaml:"config"`
	Nodes  []NodePosition `json:"nodes" yaml:"nodes"`
	Edges  []EdgeRoute    `json:"edges" yaml:"edges"`
	Layers [][]string     `json:"layers" yaml:"layers"`
	Width  float64        `json:"width" yaml:"width"`
	Height float64        `json:"height" yaml:"height"`
}

// Position returns the placement of id.
func (l *LayoutResult) Position(id string) (NodePosition, bool) {
	for _, p := range l.Nodes {
		if p.ID == id {
			return p, true
		}
	}
	return NodePosition{}, false
}

// Layout assigns hierarchical coordinates.
//
// Layers are derived from the [TopologicalSort] order: a node with no
// incoming edge sits on layer 0 and every edge target sits strictly below its
// source (layer = 1 + max layer of its sources). Within a layer nodes keep
// topological order and are spaced evenly around x = 0, so each layer is
// centred on the same vertical axis. Layer k has y = k * (NodeHeight +
// VerticalGap).
func Layout(nodes []string, edges []Edge, opts ...LayoutOption) *LayoutResult {
	cfg := DefaultLayoutConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	order := TopologicalSort(nodes, edges)
	adj := buildAdjacency(edges)

	layerOf := make(map[string]int, len(order))
	maxLayer := -1
	for _, id := range order {
		l := layerOf[id]
		if l > maxLayer {
			maxLayer = l
		}
		for _, to := range adj[id] {
			if l+1 > layerOf[to] {
				layerOf[to] = l + 1
			}
		}
	}

	layers := make([][]string, maxLayer+1)
	for _, id := range order {
		l := layerOf[id]
		layers[l] = append(layers[l], id)
	}

	res := &LayoutResult{
		Config: cfg,
		Nodes:  make([]NodePosition, 0, len(order)),
		Layers: layers,
	}
	pos := make(map[string]NodePosition, len(order))
	stepX := cfg.NodeWidth + cfg.HorizontalGap
	stepY := cfg.NodeHeight + cfg.VerticalGap

	for l, ids := range layers {
		rowWidth := float64(len(ids))*cfg.NodeWidth + float64(len(ids)-1)*cfg.HorizontalGap
		if rowWidth > res.Width {
			res.Width = rowWidth
		}
		left := -rowWidth / 2
		for i, id := range ids {
			p := NodePosition{
				ID:    id,
				X:     left + float64(i)*stepX,
				Y:     float64(l) * stepY,
				Layer: l,
			}
			pos[id] = p
			res.Nodes = append(res.Nodes, p)
		}
	}
	if len(layers) > 0 {
		res.Height = float64(len(layers))*cfg.NodeHeight + float64(len(layers)-1)*cfg.VerticalGap
	}

	for _, e := range edges {
		from, okFrom := pos[e.From]
		to, okTo := pos[e.To]
		if !okFrom || !okTo {
			continue
		}
		start := Point{X: from.X + cfg.NodeWidth/2, Y: from.Y + cfg.NodeHeight}
		end := Point{X: to.X + cfg.NodeWidth/2, Y: to.Y}
		midY := (start.Y + end.Y) / 2
		res.Edges = append(res.Edges, EdgeRoute{
			From:     e.From,
			To:       e.To,
			Start:    start,
			Control1: Point{X: start.X, Y: midY},
			Control2: Point{X: end.X, Y: midY},
			End:      end,
		})
	}

	return res
}
