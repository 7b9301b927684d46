// Package pathorder orders located items to minimize travel between
// them, for planners that visit several per-layer features in sequence.
//
// What:
//
//   - Item pairs a fixed-point location with an arbitrary payload.
//   - Optimize returns a visiting order over the items: starting from a
//     given position, repeatedly travel to the nearest unvisited item.
//
// Why:
//
//   - Printing several islands, skirts or towers in nearest-first order
//     cuts most of the travel without the cost of an exact tour solver.
//
// The result is deterministic: distance ties keep the lower index.
//
// Complexity: O(n²) time, O(n) memory.
package pathorder
