package geom2d

// Polygon is an ordered sequence of points forming an implicitly closed
// loop: an edge connects the last point back to the first. Edge i runs
// from vertex i to vertex (i+1) mod len.
type Polygon []Point

// Clone returns a deep copy of the polygon. Mutating the copy never
// affects the original.
func (p Polygon) Clone() Polygon {
	if p == nil {
		return nil
	}
	q := make(Polygon, len(p))
	copy(q, p)
	return q
}

// Wrap normalizes a vertex index onto [0, len).
func (p Polygon) Wrap(i int) int {
	n := len(p)
	return ((i % n) + n) % n
}

// Edge returns the endpoints of edge i (i is taken modulo len).
func (p Polygon) Edge(i int) (Point, Point) {
	return p[p.Wrap(i)], p[p.Wrap(i+1)]
}

// Area2 returns the doubled signed area of the polygon (shoelace
// formula). Positive means counter-clockwise winding in the y-up
// convention.
func (p Polygon) Area2() Coord {
	var area2 Coord
	for i, v := range p {
		w := p[p.Wrap(i+1)]
		area2 += v.Cross(w)
	}
	return area2
}

// IsClockwise reports whether the polygon winds clockwise.
func (p Polygon) IsClockwise() bool {
	return p.Area2() < 0
}

// ClonePolygons deep-copies a whole set of contours.
func ClonePolygons(polys []Polygon) []Polygon {
	out := make([]Polygon, len(polys))
	for i, p := range polys {
		out[i] = p.Clone()
	}
	return out
}
