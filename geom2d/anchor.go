package geom2d

// Anchor identifies a specific position on a polygon boundary: the
// index of the edge the position lies on (EdgeIdx, meaning on the edge
// from vertex EdgeIdx to vertex EdgeIdx+1), and the resolved
// coordinate, which may equal a vertex or lie strictly inside the edge.
//
// Anchor carries the polygon by value (a slice header). Algorithms that
// pool polygons replace pool slots wholesale and never mutate a pooled
// vertex list in place, so an Anchor stays valid for as long as its
// originating snapshot is in use; it never aliases mutable storage.
type Anchor struct {
	Poly    Polygon
	EdgeIdx int
	Point   Point
}

// VertexAnchor returns the anchor sitting exactly on vertex i of p.
func VertexAnchor(p Polygon, i int) Anchor {
	i = p.Wrap(i)
	return Anchor{Poly: p, EdgeIdx: i, Point: p[i]}
}
