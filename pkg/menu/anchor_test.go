package menu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveNumericCoordinate(t *testing.T) {
	pos := Anchor{X: At(100), Y: Start()}.Resolve()
	assert.Equal(t, Offset{Edge: EdgeLeft, Value: 100}, pos.X)
	assert.Equal(t, Offset{Edge: EdgeTop, Value: 0}, pos.Y)
}

func TestResolveKeywords(t *testing.T) {
	pos := Anchor{X: Start(), Y: End()}.Resolve()
	assert.Equal(t, Offset{Edge: EdgeLeft, Value: 0}, pos.X)
	assert.Equal(t, Offset{Edge: EdgeBottom, Value: 0}, pos.Y)

	pos = Anchor{X: End(), Y: Start()}.Resolve()
	assert.Equal(t, Offset{Edge: EdgeRight, Value: 0}, pos.X)
	assert.Equal(t, Offset{Edge: EdgeTop, Value: 0}, pos.Y)
}

func TestResolveZeroAnchorIsStart(t *testing.T) {
	pos := Anchor{}.Resolve()
	assert.Equal(t, Offset{Edge: EdgeLeft, Value: 0}, pos.X)
	assert.Equal(t, Offset{Edge: EdgeTop, Value: 0}, pos.Y)
}

func TestResolveNonFiniteDegradesToStart(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		pos := Anchor{X: At(v), Y: At(v)}.Resolve()
		assert.Equal(t, Offset{Edge: EdgeLeft, Value: 0}, pos.X)
		assert.Equal(t, Offset{Edge: EdgeTop, Value: 0}, pos.Y)
	}
}

func TestResolveDoesNotClamp(t *testing.T) {
	pos := Anchor{X: At(-50), Y: At(9999)}.Resolve()
	assert.Equal(t, float64(-50), pos.X.Value)
	assert.Equal(t, float64(9999), pos.Y.Value)
}

func TestPositionRectNearEdges(t *testing.T) {
	pos := Anchor{X: At(10), Y: At(5)}.Resolve()
	x, y := pos.Rect(20, 6, 80, 24)
	assert.Equal(t, 10, x)
	assert.Equal(t, 5, y)
}

func TestPositionRectFarEdges(t *testing.T) {
	pos := Anchor{X: End(), Y: End()}.Resolve()
	x, y := pos.Rect(20, 6, 80, 24)
	assert.Equal(t, 60, x)
	assert.Equal(t, 18, y)
}

func TestEdgeNames(t *testing.T) {
	assert.Equal(t, "left", EdgeLeft.String())
	assert.Equal(t, "right", EdgeRight.String())
	assert.Equal(t, "top", EdgeTop.String())
	assert.Equal(t, "bottom", EdgeBottom.String())
}
