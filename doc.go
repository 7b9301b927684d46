// Package layerpath is an in-memory toolkit of 2D path-geometry
// algorithms for print-path planning — the stage between sliced layer
// outlines and the final extrusion path.
//
// 🚀 What is layerpath?
//
//	A pure-Go library that brings together:
//		• Fixed-point 2D primitives: points, closed polygons, boundary anchors
//		• Boundary queries: closest anchor pair, offset-parallel intersections
//		• Polygon connector: greedy merging of nearby contours via printable bridges
//		• Path ordering: nearest-neighbor ordering of per-layer items
//
// ✨ Why choose layerpath?
//
//   - Deterministic – all coordinates are fixed-point integers, no float drift
//   - Rock-solid guarantees – inputs are deep-copied, callers keep their data
//   - Pure Go – no cgo, no hidden deps
//   - Isolated heuristics – direction/cost functions are small pure functions
//
// Everything is organized under three subpackages:
//
//	geom2d/    — Point, Polygon, Anchor and the boundary query primitives
//	connector/ — the polygon connector (contour merging via two-rail bridges)
//	pathorder/ — nearest-neighbor ordering of located items
//
// Quick ASCII example:
//
//	┌───┐ ┌───┐        ┌───┐─┌───┐
//	│   │ │   │   ⇒    │         │
//	└───┘ └───┘        └───┘─└───┘
//
// two nearby contours become one contour joined by a two-rail bridge.
//
//	go get github.com/katalvlaran/layerpath
package layerpath
