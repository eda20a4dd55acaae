package geometry

// LineSegment is the finite segment between Start and End. Zero-length
// segments are legal and behave as single points.
type LineSegment struct {
	Start Vector
	End   Vector
}

// Kind implements Shape.
func (LineSegment) Kind() Kind { return KindLineSegment }

func (s LineSegment) vector() Vector {
	return s.End.Sub(s.Start)
}

func (s LineSegment) line() Line {
	return Line{Origin: s.Start, Direction: s.vector()}
}

// Length returns the segment length.
func (s LineSegment) Length() float64 {
	return s.vector().Length()
}

// ClosestPointTo returns the point on the segment nearest to p.
func (s LineSegment) ClosestPointTo(p Vector) Vector {
	d := s.vector()
	ls := d.LengthSquared()
	if ls == 0 {
		return s.Start
	}
	t := Clamp(p.Sub(s.Start).Dot(d)/ls, 0, 1)
	return s.Start.Add(d.Scale(t))
}

// ContainsPoint reports whether p lies on the segment, within Epsilon of
// its supporting line and inside the [Start, End] span.
func (s LineSegment) ContainsPoint(p Vector) bool {
	d := s.vector()
	if d.Equals(Vector{}) {
		return s.Start.Equals(p)
	}
	if !s.line().ContainsPoint(p) {
		return false
	}
	t := p.Sub(s.Start).Dot(d) / d.LengthSquared()
	return t >= 0 && t <= 1
}

// CollidesVector reports whether p lies on the segment.
func (s LineSegment) CollidesVector(p Vector) bool {
	return s.ContainsPoint(p)
}

// CollidesLine reports whether the infinite line crosses or touches the
// segment.
func (s LineSegment) CollidesLine(l Line) bool {
	return l.CollidesSegment(s)
}

// CollidesSegment reports whether the two segments intersect or touch.
// Each segment must straddle the other's supporting line; collinear
// segments additionally need overlapping spans.
func (s LineSegment) CollidesSegment(o LineSegment) bool {
	axisA := s.line()
	if axisA.degenerate() {
		return o.ContainsPoint(s.Start)
	}
	axisB := o.line()
	if axisB.degenerate() {
		return s.ContainsPoint(o.Start)
	}
	if axisA.onOneSide(o) || axisB.onOneSide(s) {
		return false
	}
	if axisA.Direction.IsParallel(axisB.Direction) {
		d := axisA.Direction.Normalize()
		spanA := NewRange(d.Dot(s.Start), d.Dot(s.End))
		spanB := NewRange(d.Dot(o.Start), d.Dot(o.End))
		return spanA.Overlaps(spanB)
	}
	return true
}

// CollidesCircle reports whether the segment passes within the circle's
// radius, endpoints included.
func (s LineSegment) CollidesCircle(c Circle) bool {
	return c.ContainsPoint(s.ClosestPointTo(c.Center))
}
