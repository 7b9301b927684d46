package pathorder_test

import (
	"testing"

	"github.com/katalvlaran/layerpath/geom2d"
	"github.com/katalvlaran/layerpath/pathorder"
	"github.com/stretchr/testify/assert"
)

// at is a shorthand for an item pinned at (x, y).
func at(name string, x, y geom2d.Coord) pathorder.Item[string] {
	return pathorder.Item[string]{Location: geom2d.Point{X: x, Y: y}, Value: name}
}

// TestOptimize_NearestFirst orders three colinear items from a start
// position: always travel to the closest unvisited one.
func TestOptimize_NearestFirst(t *testing.T) {
	items := []pathorder.Item[string]{
		at("far", 5000, 0),
		at("near", 1000, 0),
		at("mid", 3000, 0),
	}

	order := pathorder.Optimize(items, geom2d.Point{X: 0, Y: 0})
	assert.Equal(t, []int{1, 2, 0}, order)
}

// TestOptimize_StartMatters: the same items from the opposite end are
// visited in reverse.
func TestOptimize_StartMatters(t *testing.T) {
	items := []pathorder.Item[string]{
		at("a", 1000, 0),
		at("b", 3000, 0),
		at("c", 5000, 0),
	}

	fromLeft := pathorder.Optimize(items, geom2d.Point{X: 0, Y: 0})
	fromRight := pathorder.Optimize(items, geom2d.Point{X: 6000, Y: 0})

	assert.Equal(t, []int{0, 1, 2}, fromLeft)
	assert.Equal(t, []int{2, 1, 0}, fromRight)
}

// TestOptimize_TiesKeepLowerIndex: equidistant items resolve by index,
// keeping the result deterministic.
func TestOptimize_TiesKeepLowerIndex(t *testing.T) {
	items := []pathorder.Item[string]{
		at("right", 1000, 0),
		at("left", -1000, 0),
	}

	order := pathorder.Optimize(items, geom2d.Point{X: 0, Y: 0})
	assert.Equal(t, []int{0, 1}, order)
}

// TestOptimize_Empty returns an empty order for no items.
func TestOptimize_Empty(t *testing.T) {
	order := pathorder.Optimize[string](nil, geom2d.Point{})
	assert.Empty(t, order)
}

// TestOptimize_EveryItemOnce: the order is a permutation of the item
// indices.
func TestOptimize_EveryItemOnce(t *testing.T) {
	items := []pathorder.Item[int]{}
	for i := 0; i < 10; i++ {
		items = append(items, pathorder.Item[int]{
			Location: geom2d.Point{X: geom2d.Coord(i * i * 137 % 7000), Y: geom2d.Coord(i * 911 % 5000)},
			Value:    i,
		})
	}

	order := pathorder.Optimize(items, geom2d.Point{})
	seen := make(map[int]bool, len(order))
	for _, idx := range order {
		seen[idx] = true
	}
	assert.Len(t, order, len(items))
	assert.Len(t, seen, len(items))
}
