package geometry

// OrientedRectangle is a rectangle of the given half extents rotated by
// Rotation radians about its Center.
//
// Collision tests map the other shape into the rectangle's local
// (unrotated) frame and delegate to the axis-aligned Rectangle predicates.
type OrientedRectangle struct {
	Center      Vector
	HalfExtents Vector
	Rotation    float64
}

// NewOrientedRectangle validates the half extents and returns the rectangle.
func NewOrientedRectangle(center, halfExtents Vector, rotation float64) (OrientedRectangle, error) {
	if halfExtents.X < 0 || halfExtents.Y < 0 {
		return OrientedRectangle{}, ErrNegativeSize
	}
	return OrientedRectangle{Center: center, HalfExtents: halfExtents, Rotation: rotation}, nil
}

// Kind implements Shape.
func (OrientedRectangle) Kind() Kind { return KindOrientedRectangle }

// localRect is the equivalent axis-aligned rectangle in the local frame,
// centered on the origin.
func (o OrientedRectangle) localRect() Rectangle {
	return Rectangle{Origin: o.HalfExtents.Negate(), Size: o.HalfExtents.Scale(2)}
}

// ToLocal maps a world-space point into the rectangle's unrotated frame.
func (o OrientedRectangle) ToLocal(p Vector) Vector {
	return p.Sub(o.Center).Rotate(-o.Rotation)
}

// FromLocal maps a local-frame point back into world space.
func (o OrientedRectangle) FromLocal(p Vector) Vector {
	return p.Rotate(o.Rotation).Add(o.Center)
}

// Corners returns the four world-space corners in anti-clockwise order.
func (o OrientedRectangle) Corners() [4]Vector {
	h := o.HalfExtents
	return [4]Vector{
		o.FromLocal(Vector{-h.X, -h.Y}),
		o.FromLocal(Vector{h.X, -h.Y}),
		o.FromLocal(Vector{h.X, h.Y}),
		o.FromLocal(Vector{-h.X, h.Y}),
	}
}

// Edges returns the four world-space edges in anti-clockwise order.
func (o OrientedRectangle) Edges() [4]LineSegment {
	c := o.Corners()
	return [4]LineSegment{
		{c[0], c[1]},
		{c[1], c[2]},
		{c[2], c[3]},
		{c[3], c[0]},
	}
}

// BoundingRect returns the world-space axis-aligned bounding box.
func (o OrientedRectangle) BoundingRect() Rectangle {
	c := o.Corners()
	return BoundsOf(c[0], c[1], c[2], c[3])
}

// CircumscribedCircle returns the smallest circle containing the rectangle.
func (o OrientedRectangle) CircumscribedCircle() Circle {
	return Circle{Center: o.Center, Radius: o.HalfExtents.Length()}
}

// ContainsPoint reports whether p lies inside or on the rectangle.
func (o OrientedRectangle) ContainsPoint(p Vector) bool {
	return o.localRect().ContainsPoint(o.ToLocal(p))
}

// CollidesVector reports whether p lies inside or on the rectangle.
func (o OrientedRectangle) CollidesVector(p Vector) bool {
	return o.ContainsPoint(p)
}

// CollidesCircle reports whether the circle overlaps the rectangle.
// Rotation preserves distances, so the local-frame test is exact.
func (o OrientedRectangle) CollidesCircle(c Circle) bool {
	local := Circle{Center: o.ToLocal(c.Center), Radius: c.Radius}
	return o.localRect().CollidesCircle(local)
}

// CollidesLine reports whether the infinite line passes through the
// rectangle.
func (o OrientedRectangle) CollidesLine(l Line) bool {
	local := Line{
		Origin:    o.ToLocal(l.Origin),
		Direction: l.Direction.Rotate(-o.Rotation),
	}
	return o.localRect().CollidesLine(local)
}

// CollidesSegment reports whether the segment passes through or touches
// the rectangle.
func (o OrientedRectangle) CollidesSegment(s LineSegment) bool {
	local := LineSegment{Start: o.ToLocal(s.Start), End: o.ToLocal(s.End)}
	return o.localRect().CollidesSegment(local)
}

// CollidesRectangle reports whether the oriented rectangle overlaps the
// axis-aligned one. Separation is checked along both shapes' axes: the
// world axes via bounding boxes, and the local axes via the rectangle's
// corners mapped into the local frame.
func (o OrientedRectangle) CollidesRectangle(r Rectangle) bool {
	if !r.CollidesRectangle(o.BoundingRect()) {
		return false
	}
	c := r.Corners()
	localBounds := BoundsOf(o.ToLocal(c[0]), o.ToLocal(c[1]), o.ToLocal(c[2]), o.ToLocal(c[3]))
	return o.localRect().CollidesRectangle(localBounds)
}

// CollidesOriented reports whether the two oriented rectangles overlap,
// checking separation along each rectangle's own axes.
func (o OrientedRectangle) CollidesOriented(q OrientedRectangle) bool {
	qc := q.Corners()
	qInO := BoundsOf(o.ToLocal(qc[0]), o.ToLocal(qc[1]), o.ToLocal(qc[2]), o.ToLocal(qc[3]))
	if !o.localRect().CollidesRectangle(qInO) {
		return false
	}
	oc := o.Corners()
	oInQ := BoundsOf(q.ToLocal(oc[0]), q.ToLocal(oc[1]), q.ToLocal(oc[2]), q.ToLocal(oc[3]))
	return q.localRect().CollidesRectangle(oInQ)
}

// DistanceTo returns the approximate distance from p to the rectangle,
// measured against the circumscribed circle. The approximation
// under-reports near the flats and is exact only at the corners.
func (o OrientedRectangle) DistanceTo(p Vector) float64 {
	return o.CircumscribedCircle().DistanceToVector(p)
}
