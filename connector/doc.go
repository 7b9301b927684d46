// Package connector merges disjoint closed contours of one layer into
// fewer, longer closed contours by inserting short two-rail bridges
// between nearby contours. Printing the merged contours as one
// continuous extrusion path saves nozzle travel and retractions.
//
// What:
//
//   - Connect takes a set of closed polygons plus two scalar settings —
//     MaxDist (maximum bridgeable gap) and LineWidth (target bridge
//     width, normally the extrusion line width) — and returns a new set
//     of polygons, merged where possible, independent of the caller's
//     storage. It also returns the accepted bridges, kept purely for
//     diagnostics and scoring; the algorithm never consults them.
//
// How:
//
//	The driver loop pops one contour from a working pool, searches the
//	remaining pool for the globally nearest anchor pair, and tries to
//	grow that connection into a bridge: a second anchor pair offset by
//	exactly one line width, so the two rails enclose a printable strip.
//	If the full-width search misses, a half-width probe decides whether
//	a full-width retry is worth it. A found bridge gets its rails
//	normalized (rail A is always on the geometric left of the bridge
//	direction), the two contours are spliced along the arcs away from
//	the bridge, and the merged contour atomically replaces the partner
//	in the pool. A contour with no acceptable bridge settles unchanged
//	into the output.
//
// Heuristics, preserved deliberately:
//
//   - The second-connection cost mixes two squared distance terms with
//     one linear term; it is kept exactly as-is and isolated in
//     secondConnectionCost so it can be replaced or property-tested on
//     its own.
//   - Arc selection between two anchors counts skipped vertices and
//     walks the majority side; this is a naive proxy for "the side away
//     from the bridge" and can mis-select on pathological shapes.
//   - A contour too small to host a full-width second rail simply
//     settles; fitting a bridge from the contour's extrema is a known,
//     unimplemented extension.
//
// Everything is single-threaded and allocation happens only on the
// working pool and the result; there is no I/O, no cancellation, and no
// locking.
//
// Complexity: O(k² · n·m) worst case for k contours with n·m boundary
// vertex products per closest-pair query.
//
// Errors:
//
//   - ErrNoPolygons: the input set is empty.
//   - ErrInvalidOptions: MaxDist or LineWidth is not positive.
//   - geom2d.ErrDegeneratePolygon: an input contour has < 2 vertices.
package connector
