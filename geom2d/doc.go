// Package geom2d provides fixed-point 2D primitives and the boundary
// queries used by print-path planning algorithms.
//
// What:
//
//   - Coord / Point: integer (sub-millimeter unit) 2D coordinates with
//     exact vector arithmetic — Add, Sub, Dot, Cross, Size2, Turn90CCW.
//   - Polygon: an ordered vertex list forming an implicitly closed loop;
//     winding (clockwise / counter-clockwise) is significant.
//   - Anchor: a position on a polygon boundary — the index of the edge
//     it lies on plus the resolved coordinate, which may sit strictly
//     inside an edge.
//   - ClosestAnchorPair: globally closest pair of boundary points
//     between two polygons.
//   - NextParallelIntersection: next boundary point, walking from an
//     anchor, at which a line parallel to a given reference line at a
//     given perpendicular offset crosses the boundary.
//
// Why:
//
//   - Long boundary walks accumulate no floating-point drift: every
//     coordinate is an integer, and intersections are interpolated with
//     integer-rational arithmetic rounded once.
//   - The two boundary queries are exactly the primitives a contour
//     merger needs: "where are two contours closest" and "where does an
//     offset-parallel rail meet the boundary again".
//
// Complexity:
//
//   - ClosestAnchorPair:        O(n·m) over the two vertex counts.
//   - NextParallelIntersection: O(n) single boundary walk.
//
// Errors:
//
//   - ErrDegeneratePolygon: a queried polygon has fewer than 2 vertices.
package geom2d
