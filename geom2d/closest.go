package geom2d

import "math"

// ClosestAnchorPair returns the globally closest pair of boundary
// points between polygons a and b, as anchors on their respective
// polygons. For two non-crossing boundaries the closest pair always
// involves a vertex of one boundary and a point on an edge of the
// other, so it suffices to project every vertex of a onto every edge of
// b and vice versa.
//
// Ties keep the first pair found, which makes the result deterministic
// for a given vertex order.
//
// Returns ErrDegeneratePolygon if either polygon has fewer than 2
// vertices.
//
// Complexity: O(n·m) time, O(1) memory.
func ClosestAnchorPair(a, b Polygon) (Anchor, Anchor, error) {
	if len(a) < 2 || len(b) < 2 {
		return Anchor{}, Anchor{}, ErrDegeneratePolygon
	}

	var bestA, bestB Anchor
	bestDist2 := Coord(math.MaxInt64)

	// Vertices of a against edges of b.
	for i, v := range a {
		for j := range b {
			e0, e1 := b.Edge(j)
			q := ClosestPointOnSegment(v, e0, e1)
			if d2 := q.Sub(v).Size2(); d2 < bestDist2 {
				bestDist2 = d2
				bestA = VertexAnchor(a, i)
				bestB = Anchor{Poly: b, EdgeIdx: j, Point: q}
			}
		}
	}
	// Vertices of b against edges of a.
	for i, v := range b {
		for j := range a {
			e0, e1 := a.Edge(j)
			q := ClosestPointOnSegment(v, e0, e1)
			if d2 := q.Sub(v).Size2(); d2 < bestDist2 {
				bestDist2 = d2
				bestA = Anchor{Poly: a, EdgeIdx: j, Point: q}
				bestB = VertexAnchor(b, i)
			}
		}
	}

	return bestA, bestB, nil
}
