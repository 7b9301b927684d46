package connector

import (
	"github.com/katalvlaran/layerpath/geom2d"
)

// spliceAlongBridge builds the single closed contour that joins the
// bridge's two polygons. It enforces the following orientations:
//
//	<<<<<<X......X<<<<<<< partner
//	      ^      v
//	      ^ A  B v bridge
//	      ^      v
//	>>>>>>X......X>>>>>>> source
//
// The source polygon is walked from rail B's anchor to rail A's anchor
// along the arc not covered by the bridge, then the partner polygon
// from rail A's anchor to rail B's anchor likewise; the two bridge
// rails implicitly close the loop. This works the same whether the
// contours are outlines or holes.
func spliceAlongBridge(bridge Bridge) geom2d.Polygon {
	capacity := len(bridge.A.From.Poly) + len(bridge.A.To.Poly) + 4
	merged := make(geom2d.Polygon, 0, capacity)
	merged = appendSegment(merged, bridge.B.From, bridge.A.From)
	merged = appendSegment(merged, bridge.A.To, bridge.B.To)
	return merged
}

// appendSegment emits the boundary arc of one polygon from the start
// anchor to the end anchor, walking the direction away from the bridge:
//
//	<<<<<<<.start     end.<<<<<<<<
//	       ^             v
//	       ^             v
//	>>>>>>>.end.....start.>>>>>>>
//
// The emitted run begins and ends with the exact anchor coordinates
// (which may not be original vertices) around the unmodified original
// vertices strictly between them.
func appendSegment(dst geom2d.Polygon, start, end geom2d.Anchor) geom2d.Polygon {
	poly := start.Poly
	n := len(poly)
	// Both anchors of one segment must depart from the one polygon the
	// segment walks; anything else is a programming error upstream.
	if n == 0 || len(end.Poly) != n || &end.Poly[0] != &poly[0] {
		panic("connector: segment anchors must lie on the same polygon")
	}
	// Walking from start in the direction in which end→start is the
	// in-between arc covers exactly the arc not under the bridge.
	dir := polygonDirection(poly, end, start)

	dst = append(dst, start.Point)
	firstIter := true
	for k := 0; k < n; k++ {
		var idx int
		if dir > 0 {
			idx = poly.Wrap(start.EdgeIdx + 1 + k)
		} else {
			idx = poly.Wrap(start.EdgeIdx - k)
		}
		stop := end.EdgeIdx
		if dir > 0 {
			stop = poly.Wrap(end.EdgeIdx + 1)
		}
		// Don't break before adding anything when both anchors share
		// one boundary edge.
		if !firstIter && idx == stop {
			break
		}
		firstIter = false
		dst = append(dst, poly[idx])
	}
	dst = append(dst, end.Point)

	return dst
}

// polygonDirection reports the traversal direction (+1 with the stored
// vertex order, -1 against it) that leads from anchor `from` to anchor
// `to` the short way around poly.
//
// When both anchors lie on the same edge, whichever anchor sits farther
// from the edge's starting vertex decides. Otherwise the side with
// fewer skipped vertices wins — a naive proxy that can mis-select on
// shapes whose vertex density differs wildly between the two arcs.
func polygonDirection(poly geom2d.Polygon, from, to geom2d.Anchor) int {
	if from.EdgeIdx == to.EdgeIdx {
		edgeStart := poly[poly.Wrap(from.EdgeIdx)]
		fromDist2 := from.Point.Sub(edgeStart).Size2()
		toDist2 := to.Point.Sub(edgeStart).Size2()
		if toDist2 > fromDist2 {
			return 1
		}
		return -1
	}
	n := len(poly)
	between := poly.Wrap(to.EdgeIdx - from.EdgeIdx)
	if between > n/2 {
		return -1
	}
	return 1
}
