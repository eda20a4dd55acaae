package geometry

import (
	"errors"
	"math"
)

// ErrNegativeRadius is returned by NewCircle for a radius below zero.
var ErrNegativeRadius = errors.New("geometry: circle radius must be non-negative")

// Circle is the disc of the given radius around Center. Collision
// predicates are boundary-inclusive.
type Circle struct {
	Center Vector
	Radius float64
}

// NewCircle validates the radius and returns the circle.
func NewCircle(center Vector, radius float64) (Circle, error) {
	if radius < 0 {
		return Circle{}, ErrNegativeRadius
	}
	return Circle{Center: center, Radius: radius}, nil
}

// Kind implements Shape.
func (Circle) Kind() Kind { return KindCircle }

// ContainsPoint reports whether p lies inside or on the circle.
func (c Circle) ContainsPoint(p Vector) bool {
	return c.Center.Sub(p).Length() <= c.Radius
}

// CollidesVector reports whether p lies inside or on the circle.
func (c Circle) CollidesVector(p Vector) bool {
	return c.ContainsPoint(p)
}

// CollidesCircle reports whether the circles overlap or touch.
func (c Circle) CollidesCircle(o Circle) bool {
	return c.Center.DistanceTo(o.Center) <= c.Radius+o.Radius
}

// CollidesRectangle reports whether the circle overlaps the rectangle,
// tested against the rectangle point closest to the center.
func (c Circle) CollidesRectangle(r Rectangle) bool {
	return c.ContainsPoint(r.ClampPoint(c.Center))
}

// CollidesLine reports whether the line passes within the radius.
func (c Circle) CollidesLine(l Line) bool {
	return l.CollidesCircle(c)
}

// CollidesSegment reports whether the segment passes within the radius.
func (c Circle) CollidesSegment(s LineSegment) bool {
	return s.CollidesCircle(c)
}

// DistanceToVector returns the distance from p to the circle's boundary,
// or 0 when p is inside the circle.
func (c Circle) DistanceToVector(p Vector) float64 {
	return math.Max(0, c.Center.DistanceTo(p)-c.Radius)
}

// DistanceToCircle returns the gap between the two circles' boundaries,
// or 0 when they overlap.
func (c Circle) DistanceToCircle(o Circle) float64 {
	return math.Max(0, c.Center.DistanceTo(o.Center)-c.Radius-o.Radius)
}
