package menu

import "math"

// Edge names the screen edge an offset is measured from.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

// String returns the CSS-style property name for the edge.
func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	}
	return "unknown"
}

type coordKind int

const (
	coordStart coordKind = iota
	coordEnd
	coordNumber
)

// Coord is one axis of an anchor: an absolute coordinate or an edge
// keyword. The zero value is the start keyword.
type Coord struct {
	kind  coordKind
	value float64
}

// At anchors the axis at an absolute coordinate.
func At(v float64) Coord {
	return Coord{kind: coordNumber, value: v}
}

// Start anchors the axis at its near edge (left or top).
func Start() Coord {
	return Coord{kind: coordStart}
}

// End anchors the axis at its far edge (right or bottom).
func End() Coord {
	return Coord{kind: coordEnd}
}

// Anchor is the requested popup placement. It is supplied fresh on
// every open and never retained across sessions.
type Anchor struct {
	X Coord
	Y Coord
}

// Offset pins one axis of the popup to a screen edge.
type Offset struct {
	Edge  Edge
	Value float64
}

// Position is a resolved placement: one offset per axis.
type Position struct {
	X Offset
	Y Offset
}

// Resolve translates the anchor into concrete edge offsets. A numeric
// coordinate pins the near edge (left or top) at that value, start pins
// the near edge at 0, and end pins the far edge at 0. Non-finite
// numerics degrade to start; no clamping or collision handling is
// performed. The positioner is a coordinate translator, not a layout
// solver, so callers own on-screen placement.
func (a Anchor) Resolve() Position {
	return Position{
		X: a.X.resolve(EdgeLeft, EdgeRight),
		Y: a.Y.resolve(EdgeTop, EdgeBottom),
	}
}

func (c Coord) resolve(near, far Edge) Offset {
	switch c.kind {
	case coordNumber:
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return Offset{Edge: near}
		}
		return Offset{Edge: near, Value: c.value}
	case coordEnd:
		return Offset{Edge: far}
	default:
		return Offset{Edge: near}
	}
}

// Rect converts the position into the top-left cell of a popup with the
// given size on a screen of the given size. Far-edge offsets are
// measured from the far side. The result may fall off screen.
func (p Position) Rect(width, height, screenWidth, screenHeight int) (x, y int) {
	x = int(p.X.Value)
	if p.X.Edge == EdgeRight {
		x = screenWidth - width - int(p.X.Value)
	}
	y = int(p.Y.Value)
	if p.Y.Edge == EdgeBottom {
		y = screenHeight - height - int(p.Y.Value)
	}
	return x, y
}
