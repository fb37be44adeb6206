// Package geom provides the 2D collision primitives used by the simulation:
// half-plane side tests, point-in-triangle containment, and circle/segment
// intersection. It contains no external dependencies to keep the physics
// pure and testable, and it has no fallible paths: degenerate inputs
// (vertical or horizontal lines, zero-length segments) are resolved by
// explicit branches rather than errors.
package geom

import "math"

// Vec2 is a planar point or vector. It is a plain value type with no
// identity.
type Vec2 struct {
	X, Y float32
}

// V is a shorthand constructor for Vec2.
func V(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float32 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// Rotate returns v rotated counter-clockwise by angle radians.
func Rotate(v Vec2, angle float32) Vec2 {
	s, c := math.Sincos(float64(angle))
	sf, cf := float32(s), float32(c)
	return Vec2{X: v.X*cf - v.Y*sf, Y: v.X*sf + v.Y*cf}
}

// Clamp restricts a float32 value to be within [lo, hi].
func Clamp(val, lo, hi float32) float32 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// isRight reports whether p lies to the right of the directed line a→b.
// Vertical and horizontal lines are special-cased so the slope computation
// never divides by zero.
func isRight(p, a, b Vec2) bool {
	if a.X == b.X {
		return p.X > a.X
	}
	if a.Y == b.Y {
		return p.Y > a.Y
	}

	// Solve y = mx + c for line ab and compare p.Y against the line's y
	// at p.X.
	m := (b.Y - a.Y) / (b.X - a.X)
	c := a.Y - m*a.X
	return p.Y > m*p.X+c
}

// TriangleContains reports whether p lies inside the triangle v1,v2,v3 using
// the classic same-side test: p is inside iff, for every edge, it falls on
// the same side as the opposite vertex. Works for either winding. Points
// exactly on an edge may land either way depending on rounding.
func TriangleContains(p, v1, v2, v3 Vec2) bool {
	s1 := isRight(p, v1, v2) != isRight(v3, v1, v2)
	s2 := isRight(p, v1, v3) != isRight(v2, v1, v3)
	s3 := isRight(p, v2, v3) != isRight(v1, v2, v3)

	return !s1 && !s2 && !s3
}

// CircleIntersectsSegment reports whether the circle at c with radius r
// touches the line segment ab. The center is projected onto the infinite
// line through a and b, the projection parameter is clamped to the segment,
// and the distance to that closest point is compared against r. A degenerate
// segment (a == b) collapses to a point-distance test.
func CircleIntersectsSegment(c Vec2, r float32, a, b Vec2) bool {
	line := b.Sub(a)
	length := line.Len()

	var closest Vec2
	switch {
	case length == 0:
		closest = a
	default:
		t := c.Sub(a).Dot(line.Scale(1 / length))
		switch {
		case t < 0:
			closest = a
		case t > length:
			closest = b
		default:
			closest = a.Add(line.Scale(t / length))
		}
	}

	return c.Sub(closest).Len() <= r
}

// CircleIntersectsTriangle reports whether the circle at c with radius r
// overlaps the triangle v1,v2,v3: either the center is inside the triangle
// or the circle crosses one of its edges.
func CircleIntersectsTriangle(c Vec2, r float32, v1, v2, v3 Vec2) bool {
	return TriangleContains(c, v1, v2, v3) ||
		CircleIntersectsSegment(c, r, v1, v2) ||
		CircleIntersectsSegment(c, r, v1, v3) ||
		CircleIntersectsSegment(c, r, v2, v3)
}
