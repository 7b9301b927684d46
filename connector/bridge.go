package connector

import (
	"math"

	"github.com/katalvlaran/layerpath/geom2d"
)

// bridge tries to grow the nearest connection from current into a full
// two-rail bridge of LineWidth spacing.
//
// Steps:
//  1. Nearest connection must exist and lie within MaxDist.
//  2. Search a second connection offset by one full line width.
//  3. If that misses, probe at half the line width; a hit means the
//     region can host a bridge, so retry the full-width search from the
//     original connection (the first rail is then the full-width
//     result, the second rail the half-width probe).
//  4. Still nothing: the contour is too small to support a bridge from
//     this connection and no bridge is reported.
//  5. Normalize rail order so that A is the left rail relative to the
//     bridge direction, for both outlines and holes.
func (c *connector) bridge(current geom2d.Polygon) (Bridge, bool) {
	first, ok := c.connection(current)
	if !ok || first.Distance2() > c.opts.MaxDist*c.opts.MaxDist {
		return Bridge{}, false
	}

	second, hasSecond := c.secondConnection(first, c.opts.LineWidth)
	hasFirst := true
	if !hasSecond {
		second, hasSecond = c.secondConnection(first, c.opts.LineWidth/2)
		if hasSecond {
			first, hasFirst = c.secondConnection(first, c.opts.LineWidth)
		}
	}
	if !hasFirst || !hasSecond {
		return Bridge{}, false
	}
	if first.ToIdx != second.ToIdx {
		panic("connector: bridge rails must connect the same pair of polygons")
	}

	result := Bridge{A: first, B: second}
	// Rail A must be the left rail: if B's anchor falls on the positive
	// (left) side of A's direction, swap.
	aVec := result.A.To.Point.Sub(result.A.From.Point)
	shift := aVec.Turn90CCW()
	if shift.Dot(result.B.From.Point.Sub(result.A.From.Point)) > 0 {
		result.A, result.B = result.B, result.A
	}

	return result, true
}

// secondConnection searches for the best connection whose anchors are
// offset by the given perpendicular distance from first, on the same
// pair of polygons.
//
// From each of first's anchors the boundary is probed in both traversal
// directions for the offset-parallel crossing, giving up to four
// combinations. A combination whose two anchors fall on opposite sides
// of first's line is rejected; among the rest the one with the lowest
// secondConnectionCost wins, subject to the acceptance bound
// MaxDist² + 2·(offset+slack)².
func (c *connector) secondConnection(first Connection, offset geom2d.Coord) (Connection, bool) {
	const forward = true
	fromA, okFromA := geom2d.NextParallelIntersection(first.From, first.To.Point, offset, forward)
	if !okFromA {
		// Then there is not going to be a B either.
		return Connection{}, false
	}
	fromB, okFromB := geom2d.NextParallelIntersection(first.From, first.To.Point, offset, !forward)

	toA, okToA := geom2d.NextParallelIntersection(first.To, first.From.Point, offset, forward)
	if !okToA {
		return Connection{}, false
	}
	toB, okToB := geom2d.NextParallelIntersection(first.To, first.From.Point, offset, !forward)

	shift := first.From.Point.Sub(first.To.Point).Turn90CCW()

	var best Connection
	bestCost := geom2d.Coord(math.MaxInt64)
	fromCands := [2]struct {
		anchor geom2d.Anchor
		ok     bool
	}{{fromA, okFromA}, {fromB, okFromB}}
	toCands := [2]struct {
		anchor geom2d.Anchor
		ok     bool
	}{{toA, okToA}, {toB, okToB}}

	for _, from := range fromCands {
		if !from.ok {
			continue
		}
		for _, to := range toCands {
			if !to.ok {
				continue
			}
			fromProj := from.anchor.Point.Sub(first.To.Point).Dot(shift)
			toProj := to.anchor.Point.Sub(first.To.Point).Dot(shift)
			if fromProj == 0 || toProj == 0 || (fromProj > 0) != (toProj > 0) {
				// Ends lie on different sides of the first connection.
				continue
			}
			cost := secondConnectionCost(first, from.anchor.Point, to.anchor.Point)
			if cost < bestCost {
				best = Connection{From: from.anchor, To: to.anchor, ToIdx: first.ToIdx}
				bestCost = cost
			}
		}
	}

	bound := c.opts.MaxDist*c.opts.MaxDist + 2*(offset+anchorSlack)*(offset+anchorSlack)
	if bestCost > bound {
		return Connection{}, false
	}

	return best, true
}

// secondConnectionCost scores a candidate second connection with
// anchors at from and to: the squared rail length plus the squared
// offset of the new source anchor plus the linear offset of the new
// target anchor. Note the mix of squared and linear terms; do not
// normalize it without revisiting the acceptance bound in
// secondConnection, which is tuned against this scale.
func secondConnectionCost(first Connection, from, to geom2d.Point) geom2d.Coord {
	return from.Sub(to).Size2() +
		from.Sub(first.From.Point).Size2() +
		to.Sub(first.To.Point).Size()
}
