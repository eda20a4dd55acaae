package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCircle(t *testing.T) {
	c, err := NewCircle(Vec(1, 2), 3)
	require.NoError(t, err)
	assert.Equal(t, Circle{Vec(1, 2), 3}, c)

	_, err = NewCircle(Vec(0, 0), -1)
	assert.ErrorIs(t, err, ErrNegativeRadius)
}

func TestCircleCollidesCircle(t *testing.T) {
	a := Circle{Vec(0, 0), 5}
	assert.True(t, a.CollidesCircle(Circle{Vec(10, 0), 5}), "touching is boundary-inclusive")
	assert.False(t, a.CollidesCircle(Circle{Vec(10.1, 0), 5}))
	assert.True(t, a.CollidesCircle(Circle{Vec(1, 1), 1}), "containment")
}

func TestCircleCollidesVector(t *testing.T) {
	c := Circle{Vec(0, 0), 5}
	assert.True(t, c.CollidesVector(Vec(3, 4)), "on the boundary")
	assert.True(t, c.CollidesVector(Vec(1, -1)))
	assert.False(t, c.CollidesVector(Vec(4, 4)))
}

func TestCircleCollidesRectangle(t *testing.T) {
	r := Rectangle{Vec(0, 0), Vec(10, 10)}
	assert.True(t, Circle{Vec(5, 5), 1}.CollidesRectangle(r), "center inside")
	assert.True(t, Circle{Vec(-2, 5), 3}.CollidesRectangle(r), "overlaps an edge")
	assert.True(t, Circle{Vec(-3, -4), 5}.CollidesRectangle(r), "touches the corner")
	assert.False(t, Circle{Vec(-3, -4), 4.9}.CollidesRectangle(r))
}

func TestCircleDistances(t *testing.T) {
	c := Circle{Vec(0, 0), 5}
	assert.Equal(t, 5.0, c.DistanceToVector(Vec(10, 0)))
	assert.Equal(t, 0.0, c.DistanceToVector(Vec(1, 1)), "inside clamps to zero")
	assert.Equal(t, 2.0, c.DistanceToCircle(Circle{Vec(10, 0), 3}))
	assert.Equal(t, 0.0, c.DistanceToCircle(Circle{Vec(4, 0), 3}))
}

func TestZeroRadiusCircleIsAPoint(t *testing.T) {
	c := Circle{Vec(2, 2), 0}
	assert.True(t, c.CollidesVector(Vec(2, 2)))
	assert.False(t, c.CollidesVector(Vec(2, 2.001)))
}
