package geom_test

import (
	"math"
	"testing"

	"github.com/bradbev/flatrect/src/geom"
	"github.com/stretchr/testify/assert"
)

const precision = 0.000000001

func assertPointInDelta(t *testing.T, expected, actual geom.Point, msg string) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, precision, msg+" x")
	assert.InDelta(t, expected.Y, actual.Y, precision, msg+" y")
}

func TestPointArithmetic(t *testing.T) {
	p := geom.Point{X: 1, Y: 2}
	assert.Equal(t, geom.Point{X: 4, Y: 6}, p.Plus(geom.Point{X: 3, Y: 4}))
	assert.Equal(t, geom.Point{X: -2, Y: -2}, p.Minus(geom.Point{X: 3, Y: 4}))
	assert.Equal(t, geom.Point{X: 2.5, Y: 5}, p.Times(2.5))
	assert.Equal(t, geom.Point{X: 0.5, Y: 1}, p.Divide(2))
	assert.Equal(t, geom.Point{X: -1, Y: -2}, p.Negate())
	assert.Equal(t, geom.Point{X: 1, Y: 4}, p.Apply(func(v float64) float64 { return v * v }))
}

func TestPointDistance(t *testing.T) {
	a := geom.Point{X: 1, Y: 1}
	b := geom.Point{X: 4, Y: 5}
	assert.InDelta(t, 5.0, a.DistanceTo(b), precision)
	assert.InDelta(t, 25.0, a.SquaredDistanceTo(b), precision)
	assert.Equal(t, 0.0, a.DistanceTo(a))
}

func TestPointEquality(t *testing.T) {
	a := geom.Point{X: 1, Y: 2}
	assert.True(t, a.Equals(geom.Point{X: 1, Y: 2}))
	assert.False(t, a.Equals(geom.Point{X: 1, Y: 2.0000001}))
	assert.True(t, a.ApproxEqual(geom.Point{X: 1, Y: 2.0000001}, 1e-6))
	assert.False(t, a.ApproxEqual(geom.Point{X: 1.1, Y: 2}, 1e-6))
}

func TestPointRotate(t *testing.T) {
	origin := geom.Point{}
	p := geom.Point{X: 1, Y: 0}

	// quarter turns are exact
	assert.Equal(t, geom.Point{X: 0, Y: 1}, p.Rotate(90, origin))
	assert.Equal(t, geom.Point{X: -1, Y: 0}, p.Rotate(180, origin))
	assert.Equal(t, geom.Point{X: 0, Y: -1}, p.Rotate(270, origin))
	assert.Equal(t, geom.Point{X: 0, Y: -1}, p.Rotate(-90, origin))
	assert.Equal(t, p, p.Rotate(720, origin))

	assertPointInDelta(t, geom.Point{X: 1 / math.Sqrt2, Y: 1 / math.Sqrt2}, p.Rotate(45, origin), "45deg")

	pivot := geom.Point{X: 2, Y: 3}
	assertPointInDelta(t, geom.Point{X: 1, Y: 4}, geom.Point{X: 3, Y: 2}.Rotate(180, pivot), "about pivot")
	assert.Equal(t, pivot, pivot.Rotate(33, pivot), "pivot is a fixed point")
}

func TestPointString(t *testing.T) {
	assert.Equal(t, "(1.23, -4)", geom.Point{X: 1.2345, Y: -4}.String())
}

func TestNormalizeDegrees(t *testing.T) {
	assert.Equal(t, 10.0, geom.NormalizeDegrees(370), "Rotation needs to remain normalized to 0..360")
	assert.Equal(t, 350.0, geom.NormalizeDegrees(-10), "Rotation needs to remain normalized to 0..360")
	assert.Equal(t, 0.0, geom.NormalizeDegrees(360))
	assert.Equal(t, 0.0, geom.NormalizeDegrees(-720))
	assert.Equal(t, 45.0, geom.NormalizeDegrees(-675))
	assert.Equal(t, 225.0, geom.NormalizeDegrees(585))
	for d := -1000.0; d <= 1000; d += 7.5 {
		n := geom.NormalizeDegrees(d)
		assert.True(t, n >= 0 && n < 360, "%v normalized to %v", d, n)
		assert.Equal(t, n, geom.NormalizeDegrees(n), "normalizing is idempotent")
	}
}
