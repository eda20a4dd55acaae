package geometry

// Range is a closed numeric interval [Low, High].
type Range struct {
	Low  float64
	High float64
}

// NewRange builds a Range from two bounds in either order.
func NewRange(a, b float64) Range {
	if a > b {
		a, b = b, a
	}
	return Range{Low: a, High: b}
}

// Overlaps reports whether r and s share at least one point.
func (r Range) Overlaps(s Range) bool {
	return OverlapsInterval(r.Low, r.High, s.Low, s.High)
}

// Contains reports whether value lies inside r.
func (r Range) Contains(value float64) bool {
	return r.Low <= value && value <= r.High
}

// Clamp restricts value into r.
func (r Range) Clamp(value float64) float64 {
	return Clamp(value, r.Low, r.High)
}
