package connector

import "errors"

var (
	// ErrNoPolygons indicates Connect was called with no input contours.
	ErrNoPolygons = errors.New("connector: input must contain at least one polygon")
	// ErrInvalidOptions indicates MaxDist or LineWidth is not positive.
	ErrInvalidOptions = errors.New("connector: MaxDist and LineWidth must be positive")
)
