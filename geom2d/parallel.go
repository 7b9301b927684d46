package geom2d

// NextParallelIntersection walks the boundary of anchor's polygon,
// starting at the anchor and moving forward (increasing vertex indices)
// or backward, and returns the first boundary point whose perpendicular
// distance from the reference line anchor.Point→toward reaches the
// given offset — i.e. the first crossing of either line parallel to the
// reference line at that offset. The crossing point is interpolated
// exactly on the crossing edge.
//
// The second return value is false when a full loop around the boundary
// finds no crossing, or when the reference line is degenerate
// (toward equals the anchor point).
//
// Complexity: O(n) time, O(1) memory.
func NextParallelIntersection(anchor Anchor, toward Point, offset Coord, forward bool) (Anchor, bool) {
	poly := anchor.Poly
	n := len(poly)
	if n < 2 || offset <= 0 {
		return Anchor{}, false
	}

	s := anchor.Point
	st := toward.Sub(s)
	stLen := st.Size()
	if stLen == 0 {
		return Anchor{}, false
	}
	// Signed perpendicular distance of v from the reference line, scaled
	// by |st|: st × (v-s). The parallel lines sit where |st × (v-s)|
	// equals offset·|st|.
	target := offset * stLen

	prev := s
	prevProj := Coord(0)
	for k := 0; k < n; k++ {
		var idx int
		if forward {
			idx = poly.Wrap(anchor.EdgeIdx + 1 + k)
		} else {
			idx = poly.Wrap(anchor.EdgeIdx - k)
		}
		next := poly[idx]
		nextProj := st.Cross(next.Sub(s))
		if nextProj >= target || nextProj <= -target {
			// The segment prev→next crosses a parallel line; interpolate
			// the crossing point at proj == ±target.
			tgt := target
			if nextProj < 0 {
				tgt = -target
			}
			num := tgt - prevProj
			den := nextProj - prevProj
			if den < 0 {
				num, den = -num, -den
			}
			d := next.Sub(prev)
			at := Point{
				X: prev.X + divRound(d.X*num, den),
				Y: prev.Y + divRound(d.Y*num, den),
			}
			edgeIdx := idx
			if forward {
				edgeIdx = poly.Wrap(idx - 1)
			}
			return Anchor{Poly: poly, EdgeIdx: edgeIdx, Point: at}, true
		}
		prev = next
		prevProj = nextProj
	}

	return Anchor{}, false
}
