package geom2d_test

import (
	"testing"

	"github.com/katalvlaran/layerpath/geom2d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// NextParallelIntersection
//----------------------------------------------------------------------------//

// TestNextParallelIntersection_Square probes a square from a corner
// anchor with a horizontal reference line. The parallel lines at
// offset 400 are y=400 and y=-400; walking backward crosses y=400 on
// the near vertical edge, walking forward only after rounding the far
// corner.
func TestNextParallelIntersection_Square(t *testing.T) {
	// Square on [1100,2100]x[0,1000], counter-clockwise.
	poly := square(1100, 0, 1000)
	anchor := geom2d.VertexAnchor(poly, 0) // (1100,0)
	toward := geom2d.Point{X: 1000, Y: 0}  // reference line along y=0

	back, ok := geom2d.NextParallelIntersection(anchor, toward, 400, false)
	require.True(t, ok)
	assert.Equal(t, geom2d.Point{X: 1100, Y: 400}, back.Point)
	assert.Equal(t, 3, back.EdgeIdx)

	fwd, ok := geom2d.NextParallelIntersection(anchor, toward, 400, true)
	require.True(t, ok)
	assert.Equal(t, geom2d.Point{X: 2100, Y: 400}, fwd.Point)
	assert.Equal(t, 1, fwd.EdgeIdx)
}

// TestNextParallelIntersection_MidEdgeAnchor anchors in the middle of
// an edge; the interpolated crossing still lands exactly at the offset.
func TestNextParallelIntersection_MidEdgeAnchor(t *testing.T) {
	poly := square(0, 0, 1000)
	anchor := geom2d.Anchor{Poly: poly, EdgeIdx: 0, Point: geom2d.Point{X: 500, Y: 0}}
	toward := geom2d.Point{X: 500, Y: -100} // reference line pointing down

	// Parallel lines are x=100 and x=900. Forward walk (toward vertex 1
	// at (1000,0)) crosses x=900 on the bottom edge.
	fwd, ok := geom2d.NextParallelIntersection(anchor, toward, 400, true)
	require.True(t, ok)
	assert.Equal(t, geom2d.Point{X: 900, Y: 0}, fwd.Point)
	assert.Equal(t, 0, fwd.EdgeIdx)

	back, ok := geom2d.NextParallelIntersection(anchor, toward, 400, false)
	require.True(t, ok)
	assert.Equal(t, geom2d.Point{X: 100, Y: 0}, back.Point)
	assert.Equal(t, 0, back.EdgeIdx)
}

// TestNextParallelIntersection_NoCrossing asks for an offset larger
// than the polygon itself; a full loop finds nothing.
func TestNextParallelIntersection_NoCrossing(t *testing.T) {
	poly := square(0, 0, 1000)
	anchor := geom2d.VertexAnchor(poly, 0)
	toward := geom2d.Point{X: -100, Y: 0}

	_, ok := geom2d.NextParallelIntersection(anchor, toward, 5000, true)
	assert.False(t, ok)
	_, ok = geom2d.NextParallelIntersection(anchor, toward, 5000, false)
	assert.False(t, ok)
}

// TestNextParallelIntersection_Degenerate rejects a zero reference line
// and non-positive offsets.
func TestNextParallelIntersection_Degenerate(t *testing.T) {
	poly := square(0, 0, 1000)
	anchor := geom2d.VertexAnchor(poly, 0)

	_, ok := geom2d.NextParallelIntersection(anchor, anchor.Point, 400, true)
	assert.False(t, ok)
	_, ok = geom2d.NextParallelIntersection(anchor, geom2d.Point{X: -100, Y: 0}, 0, true)
	assert.False(t, ok)
}
