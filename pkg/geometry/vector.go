package geometry

import "math"

// Vector is a 2D point or direction.
type Vector struct {
	X float64
	Y float64
}

// Vec is shorthand for Vector{x, y}.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Kind implements Shape.
func (Vector) Kind() Kind { return KindVector }

// Add returns the vector v+w.
func (v Vector) Add(w Vector) Vector {
	return Vector{v.X + w.X, v.Y + w.Y}
}

// Sub returns the vector v-w.
func (v Vector) Sub(w Vector) Vector {
	return Vector{v.X - w.X, v.Y - w.Y}
}

// Negate returns the vector -v.
func (v Vector) Negate() Vector {
	return Vector{-v.X, -v.Y}
}

// Scale returns the vector v*s.
func (v Vector) Scale(s float64) Vector {
	return Vector{v.X * s, v.Y * s}
}

// Div returns the vector v/s. A zero divisor yields the zero vector rather
// than an infinity; callers that need to distinguish must check s themselves.
func (v Vector) Div(s float64) Vector {
	if s == 0 {
		return Vector{}
	}
	return Vector{v.X / s, v.Y / s}
}

// Equals reports exact component equality, with no tolerance.
func (v Vector) Equals(w Vector) bool {
	return v.X == w.X && v.Y == w.Y
}

// Dot returns the dot product of v and w.
func (v Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (perp-dot) of v and w.
func (v Vector) Cross(w Vector) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the Euclidean length of v.
func (v Vector) Length() float64 {
	if v.X == 0 && v.Y == 0 {
		return 0
	}
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSquared returns the squared length of v, avoiding the sqrt.
func (v Vector) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Rotate returns v rotated anti-clockwise by the given angle in radians.
func (v Vector) Rotate(radians float64) Vector {
	sin, cos := math.Sincos(radians)
	return Vector{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Rotate90 returns v rotated anti-clockwise by a quarter turn.
func (v Vector) Rotate90() Vector {
	return Vector{-v.Y, v.X}
}

// Normalize returns the unit vector in the direction of v. The zero vector
// normalizes to itself.
func (v Vector) Normalize() Vector {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Div(l)
}

// Project returns the projection of v onto w. A zero-length w is returned
// unchanged.
func (v Vector) Project(w Vector) Vector {
	d := w.Dot(w)
	if d <= 0 {
		return w
	}
	return w.Scale(v.Dot(w) / d)
}

// IsParallel reports whether v and w point along the same or opposite
// directions, within Epsilon.
func (v Vector) IsParallel(w Vector) bool {
	return EqualEpsilon(v.Rotate90().Dot(w), 0)
}

// EnclosedAngle returns the angle between v and w in radians, in [0, π].
func (v Vector) EnclosedAngle(w Vector) float64 {
	// Clamp guards acos against rounding drift just outside [-1, 1].
	return math.Acos(Clamp(v.Normalize().Dot(w.Normalize()), -1, 1))
}

// Radians returns the angle of v from the positive x-axis, in [0, 2π).
func (v Vector) Radians() float64 {
	a := math.Atan2(v.Y, v.X)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// HeadingTowards returns the unit vector pointing from v to target.
func (v Vector) HeadingTowards(target Vector) Vector {
	return target.Sub(v).Normalize()
}

// DistanceTo returns the Euclidean distance between v and w.
func (v Vector) DistanceTo(w Vector) float64 {
	return v.Sub(w).Length()
}
