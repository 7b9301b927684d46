package connector

import (
	"math"

	"github.com/katalvlaran/layerpath/geom2d"
)

// Connect merges as many of the given closed contours as possible by
// bridging nearby pairs, and returns the resulting contours together
// with the accepted bridges (diagnostics only).
//
// The input is deep-copied into a working pool, so the caller's
// polygons are never touched. The loop pops one contour at a time:
// a contour that finds a bridge is spliced with its partner and the
// merged contour replaces the partner in the pool (the pool shrinks by
// exactly one per accepted bridge); a contour that finds none settles
// unchanged into the output. The loop therefore terminates after at
// most len(polys) iterations.
//
// Returns ErrNoPolygons for an empty input, ErrInvalidOptions for
// non-positive settings, and geom2d.ErrDegeneratePolygon if any input
// contour has fewer than 2 vertices.
//
// Complexity: O(k²·V²) worst case (k contours, V vertices per
// boundary), Memory: O(total vertices).
func Connect(polys []geom2d.Polygon, opts Options) ([]geom2d.Polygon, []Bridge, error) {
	if len(polys) == 0 {
		return nil, nil, ErrNoPolygons
	}
	if err := opts.Validate(); err != nil {
		return nil, nil, err
	}
	for _, p := range polys {
		if len(p) < 2 {
			return nil, nil, geom2d.ErrDegeneratePolygon
		}
	}

	c := &connector{
		opts: opts,
		pool: geom2d.ClonePolygons(polys),
	}
	out := c.connect()

	return out, c.bridges, nil
}

// connector owns the working pool for the duration of one merge run.
type connector struct {
	opts Options
	pool []geom2d.Polygon
	// bridges is the append-only log of accepted bridges, retained only
	// for scoring; the algorithm itself never reads it.
	bridges []Bridge
}

// connect runs the driver loop until the pool is empty.
func (c *connector) connect() []geom2d.Polygon {
	out := make([]geom2d.Polygon, 0, len(c.pool))

	for len(c.pool) > 0 {
		current := c.pool[len(c.pool)-1]
		c.pool = c.pool[:len(c.pool)-1]

		bridge, ok := c.bridge(current)
		if !ok {
			out = append(out, current)
			continue
		}
		c.bridges = append(c.bridges, bridge)
		// Compute the merged contour fully, then replace the partner
		// pool entry in a single step; current is absorbed.
		merged := spliceAlongBridge(bridge)
		c.pool[bridge.A.ToIdx] = merged
	}

	return out
}

// connection finds the globally closest anchor pair between current and
// any pool candidate. A candidate closer than LineWidth (plus slack) is
// accepted immediately without scanning the rest of the pool — such a
// pair is close enough to be locally optimal anyway.
func (c *connector) connection(current geom2d.Polygon) (Connection, bool) {
	best := Connection{ToIdx: -1}
	bestDist2 := geom2d.Coord(math.MaxInt64)
	earlyExit := (c.opts.LineWidth + anchorSlack) * (c.opts.LineWidth + anchorSlack)

	for i, candidate := range c.pool {
		from, to, err := geom2d.ClosestAnchorPair(current, candidate)
		if err != nil {
			continue
		}
		d2 := to.Point.Sub(from.Point).Size2()
		if d2 < bestDist2 {
			best = Connection{From: from, To: to, ToIdx: i}
			bestDist2 = d2
			if d2 < earlyExit {
				return best, true
			}
		}
	}

	if best.ToIdx < 0 {
		return Connection{}, false
	}

	return best, true
}
