package scene

import (
	"errors"
	"fmt"

	"github.com/flatgeom/flatgeom/pkg/geometry"
)

// ErrUnknownShapeType is returned when a document names a shape type this
// package does not know.
var ErrUnknownShapeType = errors.New("scene: unknown shape type")

// ShapeDoc is the flat JSON/YAML representation of a shape. Type selects
// the geometry and decides which of the remaining fields apply:
//
//	vector              x, y
//	line                x, y (origin), x2, y2 (direction)
//	segment             x, y (start), x2, y2 (end)
//	circle              x, y (center), radius
//	rectangle           x, y (origin), width, height
//	oriented-rectangle  x, y (center), width, height (full extents), rotation
type ShapeDoc struct {
	Type     string  `json:"type" yaml:"type"`
	X        float64 `json:"x" yaml:"x"`
	Y        float64 `json:"y" yaml:"y"`
	X2       float64 `json:"x2,omitempty" yaml:"x2,omitempty"`
	Y2       float64 `json:"y2,omitempty" yaml:"y2,omitempty"`
	Radius   float64 `json:"radius,omitempty" yaml:"radius,omitempty"`
	Width    float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Height   float64 `json:"height,omitempty" yaml:"height,omitempty"`
	Rotation float64 `json:"rotation,omitempty" yaml:"rotation,omitempty"`
}

// Decode turns the document into a geometry shape, running the shape
// constructors' validation.
func (d ShapeDoc) Decode() (geometry.Shape, error) {
	switch d.Type {
	case geometry.KindVector.String():
		return geometry.Vec(d.X, d.Y), nil
	case geometry.KindLine.String():
		return geometry.Line{
			Origin:    geometry.Vec(d.X, d.Y),
			Direction: geometry.Vec(d.X2, d.Y2),
		}, nil
	case geometry.KindLineSegment.String():
		return geometry.LineSegment{
			Start: geometry.Vec(d.X, d.Y),
			End:   geometry.Vec(d.X2, d.Y2),
		}, nil
	case geometry.KindCircle.String():
		return geometry.NewCircle(geometry.Vec(d.X, d.Y), d.Radius)
	case geometry.KindRectangle.String():
		return geometry.NewRectangle(geometry.Vec(d.X, d.Y), geometry.Vec(d.Width, d.Height))
	case geometry.KindOrientedRectangle.String():
		return geometry.NewOrientedRectangle(
			geometry.Vec(d.X, d.Y),
			geometry.Vec(d.Width/2, d.Height/2),
			d.Rotation,
		)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShapeType, d.Type)
	}
}

// EncodeShape is the inverse of ShapeDoc.Decode.
func EncodeShape(s geometry.Shape) (ShapeDoc, error) {
	switch v := s.(type) {
	case geometry.Vector:
		return ShapeDoc{Type: v.Kind().String(), X: v.X, Y: v.Y}, nil
	case geometry.Line:
		return ShapeDoc{
			Type: v.Kind().String(),
			X:    v.Origin.X,
			Y:    v.Origin.Y,
			X2:   v.Direction.X,
			Y2:   v.Direction.Y,
		}, nil
	case geometry.LineSegment:
		return ShapeDoc{
			Type: v.Kind().String(),
			X:    v.Start.X,
			Y:    v.Start.Y,
			X2:   v.End.X,
			Y2:   v.End.Y,
		}, nil
	case geometry.Circle:
		return ShapeDoc{
			Type:   v.Kind().String(),
			X:      v.Center.X,
			Y:      v.Center.Y,
			Radius: v.Radius,
		}, nil
	case geometry.Rectangle:
		return ShapeDoc{
			Type:   v.Kind().String(),
			X:      v.Origin.X,
			Y:      v.Origin.Y,
			Width:  v.Size.X,
			Height: v.Size.Y,
		}, nil
	case geometry.OrientedRectangle:
		return ShapeDoc{
			Type:     v.Kind().String(),
			X:        v.Center.X,
			Y:        v.Center.Y,
			Width:    v.HalfExtents.X * 2,
			Height:   v.HalfExtents.Y * 2,
			Rotation: v.Rotation,
		}, nil
	default:
		return ShapeDoc{}, fmt.Errorf("%w: %T", ErrUnknownShapeType, s)
	}
}
