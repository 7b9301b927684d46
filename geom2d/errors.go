package geom2d

import "errors"

// ErrDegeneratePolygon indicates a polygon with fewer than 2 vertices
// was passed to a boundary query that needs at least one edge.
var ErrDegeneratePolygon = errors.New("geom2d: polygon must have at least 2 vertices")
