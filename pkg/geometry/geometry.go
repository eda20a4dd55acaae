// Package geometry provides 2D geometric primitives — vectors, lines,
// segments, circles, axis-aligned and oriented rectangles — together with
// pairwise collision and distance queries over them.
//
// All types are plain immutable values: every operation returns a new value
// and never mutates its receiver, so shapes can be shared freely between
// goroutines.
package geometry

// Kind identifies the concrete type behind a Shape.
type Kind uint8

const (
	KindVector Kind = iota
	KindLine
	KindLineSegment
	KindCircle
	KindRectangle
	KindOrientedRectangle
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindVector:
		return "vector"
	case KindLine:
		return "line"
	case KindLineSegment:
		return "segment"
	case KindCircle:
		return "circle"
	case KindRectangle:
		return "rectangle"
	case KindOrientedRectangle:
		return "oriented-rectangle"
	default:
		return "unknown"
	}
}

// Shape is implemented by every geometric type that can take part in the
// pairwise Collides and Distance queries.
type Shape interface {
	Kind() Kind
}
