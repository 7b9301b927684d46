package pathorder

import (
	"math"

	"github.com/katalvlaran/layerpath/geom2d"
)

// Item is a payload pinned to a location on the build plate.
type Item[T any] struct {
	Location geom2d.Point
	Value    T
}

// Optimize returns indices into items in greedy nearest-neighbor order:
// the first visited item is the one closest to start, the next is the
// one closest to that item's location, and so on until every item is
// visited. Empty input yields an empty order.
//
// Complexity: O(n²) time, O(n) memory.
func Optimize[T any](items []Item[T], start geom2d.Point) []int {
	order := make([]int, 0, len(items))
	if len(items) == 0 {
		return order
	}

	remaining := make([]int, len(items))
	for i := range items {
		remaining[i] = i
	}

	last := start
	for len(remaining) > 0 {
		shortest := geom2d.Coord(math.MaxInt64)
		pick := 0
		for listIdx, itemIdx := range remaining {
			d := items[itemIdx].Location.Sub(last).Size()
			if d < shortest {
				shortest = d
				pick = listIdx
			}
		}
		itemIdx := remaining[pick]
		order = append(order, itemIdx)
		last = items[itemIdx].Location
		remaining = append(remaining[:pick], remaining[pick+1:]...)
	}

	return order
}
