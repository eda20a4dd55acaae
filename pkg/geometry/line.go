package geometry

// Line is an infinite line through Origin along Direction. Direction need
// not be unit length. A zero Direction degenerates the line to its origin
// point, and every predicate treats it that way.
type Line struct {
	Origin    Vector
	Direction Vector
}

// Kind implements Shape.
func (Line) Kind() Kind { return KindLine }

func (l Line) degenerate() bool {
	return l.Direction.Equals(Vector{})
}

// ContainsPoint reports whether p lies on the line, within Epsilon.
func (l Line) ContainsPoint(p Vector) bool {
	if l.degenerate() {
		return l.Origin.Equals(p)
	}
	return EqualEpsilon(p.Sub(l.Origin).Cross(l.Direction), 0)
}

// onOneSide reports whether both endpoints of s lie strictly on the same
// side of the line.
func (l Line) onOneSide(s LineSegment) bool {
	d1 := l.Direction.Cross(s.Start.Sub(l.Origin))
	d2 := l.Direction.Cross(s.End.Sub(l.Origin))
	return d1*d2 > 0
}

// CollidesVector reports whether p lies on the line.
func (l Line) CollidesVector(p Vector) bool {
	return l.ContainsPoint(p)
}

// CollidesLine reports whether the two lines intersect or coincide.
// Parallel lines collide only when coincident.
func (l Line) CollidesLine(m Line) bool {
	if l.degenerate() {
		return m.ContainsPoint(l.Origin)
	}
	if m.degenerate() {
		return l.ContainsPoint(m.Origin)
	}
	if l.Direction.IsParallel(m.Direction) {
		return l.ContainsPoint(m.Origin)
	}
	return true
}

// CollidesSegment reports whether the line crosses or touches the segment.
func (l Line) CollidesSegment(s LineSegment) bool {
	if l.degenerate() {
		return s.ContainsPoint(l.Origin)
	}
	return !l.onOneSide(s)
}

// CollidesCircle reports whether the perpendicular distance from the
// circle's center to the line is at most the radius.
func (l Line) CollidesCircle(c Circle) bool {
	toCenter := c.Center.Sub(l.Origin)
	nearest := l.Origin.Add(toCenter.Project(l.Direction))
	return c.ContainsPoint(nearest)
}
