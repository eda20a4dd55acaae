package geometry

import "errors"

// ErrNegativeSize is returned by NewRectangle for a negative size component.
var ErrNegativeSize = errors.New("geometry: rectangle size must be non-negative")

// Rectangle is an axis-aligned box spanning [Origin, Origin+Size].
type Rectangle struct {
	Origin Vector
	Size   Vector
}

// NewRectangle validates the size and returns the rectangle.
func NewRectangle(origin, size Vector) (Rectangle, error) {
	if size.X < 0 || size.Y < 0 {
		return Rectangle{}, ErrNegativeSize
	}
	return Rectangle{Origin: origin, Size: size}, nil
}

// BoundsOf returns the smallest axis-aligned rectangle enclosing all points.
// It panics on an empty slice. A single point yields a zero-size rectangle.
func BoundsOf(points ...Vector) Rectangle {
	if len(points) == 0 {
		panic("geometry: BoundsOf needs at least one point")
	}
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return Rectangle{Origin: min, Size: max.Sub(min)}
}

// Kind implements Shape.
func (Rectangle) Kind() Kind { return KindRectangle }

// Max returns the corner opposite Origin.
func (r Rectangle) Max() Vector {
	return r.Origin.Add(r.Size)
}

// Center returns the rectangle's center point.
func (r Rectangle) Center() Vector {
	return r.Origin.Add(r.Size.Scale(0.5))
}

// Corners returns the four corners in anti-clockwise order from Origin.
func (r Rectangle) Corners() [4]Vector {
	max := r.Max()
	return [4]Vector{
		r.Origin,
		{max.X, r.Origin.Y},
		max,
		{r.Origin.X, max.Y},
	}
}

func (r Rectangle) xRange() Range {
	return Range{Low: r.Origin.X, High: r.Origin.X + r.Size.X}
}

func (r Rectangle) yRange() Range {
	return Range{Low: r.Origin.Y, High: r.Origin.Y + r.Size.Y}
}

// ClampPoint returns p clamped componentwise into the rectangle.
func (r Rectangle) ClampPoint(p Vector) Vector {
	return Vector{
		X: r.xRange().Clamp(p.X),
		Y: r.yRange().Clamp(p.Y),
	}
}

// ContainsPoint reports whether p lies inside or on the rectangle.
func (r Rectangle) ContainsPoint(p Vector) bool {
	return r.xRange().Contains(p.X) && r.yRange().Contains(p.Y)
}

// CollidesVector reports whether p lies inside or on the rectangle.
func (r Rectangle) CollidesVector(p Vector) bool {
	return r.ContainsPoint(p)
}

// CollidesRectangle reports whether the rectangles overlap or touch,
// via independent interval tests on each axis.
func (r Rectangle) CollidesRectangle(o Rectangle) bool {
	return r.xRange().Overlaps(o.xRange()) && r.yRange().Overlaps(o.yRange())
}

// CollidesCircle reports whether the circle overlaps the rectangle.
func (r Rectangle) CollidesCircle(c Circle) bool {
	return c.CollidesRectangle(r)
}

// CollidesLine reports whether the infinite line passes through the
// rectangle. The line misses only if all four corners sit strictly on one
// side of it.
func (r Rectangle) CollidesLine(l Line) bool {
	if l.degenerate() {
		return r.ContainsPoint(l.Origin)
	}
	var pos, neg bool
	for _, corner := range r.Corners() {
		d := l.Direction.Cross(corner.Sub(l.Origin))
		switch {
		case d > 0:
			pos = true
		case d < 0:
			neg = true
		default:
			return true
		}
	}
	return pos && neg
}

// CollidesSegment reports whether the segment passes through or touches
// the rectangle.
func (r Rectangle) CollidesSegment(s LineSegment) bool {
	if !r.CollidesLine(s.line()) {
		return false
	}
	if !r.xRange().Overlaps(NewRange(s.Start.X, s.End.X)) {
		return false
	}
	return r.yRange().Overlaps(NewRange(s.Start.Y, s.End.Y))
}

// CollidesOriented reports whether the rectangle overlaps the oriented
// rectangle.
func (r Rectangle) CollidesOriented(o OrientedRectangle) bool {
	return o.CollidesRectangle(r)
}
