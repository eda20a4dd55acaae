package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollidesDispatch(t *testing.T) {
	circle := Circle{Vec(0, 0), 5}
	rect := Rectangle{Vec(3, 3), Vec(10, 10)}
	seg := LineSegment{Vec(-10, 0), Vec(10, 0)}
	line := Line{Vec(0, -10), Vec(0, 1)}
	oriented := OrientedRectangle{Center: Vec(0, 0), HalfExtents: Vec(4, 4), Rotation: math.Pi / 4}

	tests := []struct {
		name string
		a, b Shape
		want bool
	}{
		{"vector vector equal", Vec(1, 2), Vec(1, 2), true},
		{"vector vector distinct", Vec(1, 2), Vec(1, 3), false},
		{"vector circle", Vec(3, 4), circle, true},
		{"circle rect", circle, rect, true},
		{"rect line", rect, line, false},
		{"segment circle", seg, circle, true},
		{"line segment", line, seg, true},
		{"oriented circle", oriented, Circle{Vec(7, 0), 1.5}, true},
		{"oriented rect", oriented, rect, false},
		{"oriented oriented", oriented, OrientedRectangle{Center: Vec(12, 0), HalfExtents: Vec(1, 1)}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Collides(tc.a, tc.b)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			swapped, err := Collides(tc.b, tc.a)
			require.NoError(t, err)
			assert.Equal(t, tc.want, swapped, "symmetry")
		})
	}
}

func TestDistanceDispatch(t *testing.T) {
	circle := Circle{Vec(0, 0), 5}

	d, err := Distance(Vec(0, 0), Vec(3, 4))
	require.NoError(t, err)
	assert.Equal(t, 5.0, d)

	d, err = Distance(Vec(10, 0), circle)
	require.NoError(t, err)
	assert.Equal(t, 5.0, d)

	d, err = Distance(circle, Circle{Vec(20, 0), 5})
	require.NoError(t, err)
	assert.Equal(t, 10.0, d)

	oriented := OrientedRectangle{Center: Vec(0, 0), HalfExtents: Vec(3, 4)}
	d, err = Distance(Vec(10, 0), oriented)
	require.NoError(t, err)
	assert.Equal(t, 5.0, d, "measured against the circumscribed circle")
}

func TestDistanceUnsupportedPair(t *testing.T) {
	line := Line{Vec(0, 0), Vec(1, 0)}

	_, err := Distance(line, Line{Vec(0, 1), Vec(1, 0)})
	require.Error(t, err)

	var pairErr *PairError
	require.ErrorAs(t, err, &pairErr)
	assert.Equal(t, "distance", pairErr.Op)
	assert.Equal(t, KindLine, pairErr.A)
	assert.Equal(t, KindLine, pairErr.B)
	assert.Contains(t, err.Error(), "line")
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "vector", KindVector.String())
	assert.Equal(t, "oriented-rectangle", KindOrientedRectangle.String())
	assert.Equal(t, "unknown", Kind(200).String())
}
