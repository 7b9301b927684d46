package geom2d

import "math"

// Coord is the fixed-point coordinate unit. One Coord is a fixed
// sub-millimeter fraction (conventionally a micrometer), so all
// arithmetic stays in exact integers.
type Coord = int64

// Point holds a 2D fixed-point coordinate value. X increases to the
// right, Y increases up the page (mathematical convention), which gives
// meaning to clockwise and counter-clockwise winding.
type Point struct {
	X, Y Coord
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Dot returns the dot product p·q.
func (p Point) Dot(q Point) Coord {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product p×q (the z-component of the 3D
// cross product). Positive means q points to the left of p.
func (p Point) Cross(q Point) Coord {
	return p.X*q.Y - p.Y*q.X
}

// Size2 returns the squared length |p|². Prefer it over Size wherever a
// comparison suffices: it is exact.
func (p Point) Size2() Coord {
	return p.X*p.X + p.Y*p.Y
}

// Size returns the length |p| rounded to the nearest Coord.
func (p Point) Size() Coord {
	return Coord(math.Round(math.Sqrt(float64(p.Size2()))))
}

// Turn90CCW returns p rotated 90° counter-clockwise: (x,y) → (-y,x).
func (p Point) Turn90CCW() Point {
	return Point{-p.Y, p.X}
}

// ClosestPointOnSegment returns the point on segment a→b closest to p,
// computed with integer projection and rounded once.
func ClosestPointOnSegment(p, a, b Point) Point {
	ab := b.Sub(a)
	den := ab.Size2()
	if den == 0 {
		return a
	}
	num := p.Sub(a).Dot(ab)
	if num <= 0 {
		return a
	}
	if num >= den {
		return b
	}
	return Point{
		X: a.X + divRound(ab.X*num, den),
		Y: a.Y + divRound(ab.Y*num, den),
	}
}

// divRound divides num by den (den > 0), rounding to nearest.
func divRound(num, den Coord) Coord {
	if num >= 0 {
		return (num + den/2) / den
	}
	return -((-num + den/2) / den)
}
