// Package connector defines the options, connection and bridge types
// for the polygon connector.
package connector

import (
	"github.com/katalvlaran/layerpath/geom2d"
)

// anchorSlack is the fixed tolerance, in coordinate units, added to
// distance bounds: the early-exit radius of the connection search and
// the acceptance bound of the second-connection search.
const anchorSlack geom2d.Coord = 10

// Options contains the tunable parameters of a merge run.
type Options struct {
	// MaxDist is the maximum bridgeable gap between two contours.
	MaxDist geom2d.Coord
	// LineWidth is the target bridge width, normally equal to the
	// extrusion line width.
	LineWidth geom2d.Coord
}

// DefaultOptions returns Options sized for a typical 0.4 mm nozzle with
// micrometer coordinates: LineWidth=400, MaxDist=600.
func DefaultOptions() Options {
	return Options{
		MaxDist:   600,
		LineWidth: 400,
	}
}

// Validate reports ErrInvalidOptions unless both parameters are positive.
func (o Options) Validate() error {
	if o.MaxDist <= 0 || o.LineWidth <= 0 {
		return ErrInvalidOptions
	}
	return nil
}

// Connection is an ordered pair of boundary anchors: From on one
// polygon, To on another. ToIdx is the stable index of To's polygon in
// the working pool; From always lies on the contour currently being
// connected, which has already been taken off the pool.
type Connection struct {
	From, To geom2d.Anchor
	ToIdx    int
}

// Distance2 returns the squared distance between the two anchor points.
func (c Connection) Distance2() geom2d.Coord {
	return c.To.Point.Sub(c.From.Point).Size2()
}

// Bridge is a pair of connections between the same two polygons,
// forming the two rails of a short connecting structure of the target
// line width. After normalization A is the left rail and B the right
// rail when facing from A.From toward A.To.
type Bridge struct {
	A, B Connection
}
