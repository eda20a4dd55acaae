package geometry

import "fmt"

// PairError reports a query asked of a shape pairing with no defined
// result.
type PairError struct {
	Op string
	A  Kind
	B  Kind
}

func (e *PairError) Error() string {
	return fmt.Sprintf("geometry: no %s defined between %s and %s", e.Op, e.A, e.B)
}

// Collides reports whether the two shapes intersect or touch. Every
// pairing of the shape kinds is supported; the predicate is symmetric in
// its arguments. An unknown Shape implementation yields a PairError.
func Collides(a, b Shape) (bool, error) {
	// Collision is symmetric, so canonicalize the pair by kind order and
	// dispatch once.
	if a.Kind() > b.Kind() {
		a, b = b, a
	}
	switch s := a.(type) {
	case Vector:
		switch t := b.(type) {
		case Vector:
			return s.Equals(t), nil
		case Line:
			return t.CollidesVector(s), nil
		case LineSegment:
			return t.CollidesVector(s), nil
		case Circle:
			return t.CollidesVector(s), nil
		case Rectangle:
			return t.CollidesVector(s), nil
		case OrientedRectangle:
			return t.CollidesVector(s), nil
		}
	case Line:
		switch t := b.(type) {
		case Line:
			return s.CollidesLine(t), nil
		case LineSegment:
			return s.CollidesSegment(t), nil
		case Circle:
			return s.CollidesCircle(t), nil
		case Rectangle:
			return t.CollidesLine(s), nil
		case OrientedRectangle:
			return t.CollidesLine(s), nil
		}
	case LineSegment:
		switch t := b.(type) {
		case LineSegment:
			return s.CollidesSegment(t), nil
		case Circle:
			return s.CollidesCircle(t), nil
		case Rectangle:
			return t.CollidesSegment(s), nil
		case OrientedRectangle:
			return t.CollidesSegment(s), nil
		}
	case Circle:
		switch t := b.(type) {
		case Circle:
			return s.CollidesCircle(t), nil
		case Rectangle:
			return s.CollidesRectangle(t), nil
		case OrientedRectangle:
			return t.CollidesCircle(s), nil
		}
	case Rectangle:
		switch t := b.(type) {
		case Rectangle:
			return s.CollidesRectangle(t), nil
		case OrientedRectangle:
			return t.CollidesRectangle(s), nil
		}
	case OrientedRectangle:
		if t, ok := b.(OrientedRectangle); ok {
			return s.CollidesOriented(t), nil
		}
	}
	return false, &PairError{Op: "collision", A: a.Kind(), B: b.Kind()}
}

// Distance returns the separation between the two shapes' boundaries, 0
// when they overlap. It is defined for vector and circle pairings, and for
// oriented rectangles through their circumscribed circle (an approximation
// that under-reports near the flats). Other pairings yield a PairError.
func Distance(a, b Shape) (float64, error) {
	if a.Kind() > b.Kind() {
		a, b = b, a
	}
	switch s := a.(type) {
	case Vector:
		switch t := b.(type) {
		case Vector:
			return s.DistanceTo(t), nil
		case Circle:
			return t.DistanceToVector(s), nil
		case OrientedRectangle:
			return t.DistanceTo(s), nil
		}
	case Circle:
		switch t := b.(type) {
		case Circle:
			return s.DistanceToCircle(t), nil
		case OrientedRectangle:
			return s.DistanceToCircle(t.CircumscribedCircle()), nil
		}
	case OrientedRectangle:
		if t, ok := b.(OrientedRectangle); ok {
			return s.CircumscribedCircle().DistanceToCircle(t.CircumscribedCircle()), nil
		}
	}
	return 0, &PairError{Op: "distance", A: a.Kind(), B: b.Kind()}
}
