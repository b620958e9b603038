package region_test

import (
	"math"
	"testing"

	"github.com/bradbev/flatrect/src/geom"
	"github.com/bradbev/flatrect/src/region"
	"github.com/stretchr/testify/assert"
)

const precision = 0.000000001

func assertRectInDelta(t *testing.T, expected, actual geom.Rect, msg string) {
	t.Helper()
	assert.True(t, expected.ApproxEqual(actual, precision), "%s: expected %v, got %v", msg, expected, actual)
}

func twoTiles() *region.Layout {
	return &region.Layout{
		Name: "tiles",
		Regions: []region.Region{
			{Name: "b", Bounds: geom.NewRect(2, 0, 2, 2)},
			{Name: "a", Bounds: geom.NewRect(0, 0, 2, 2)},
		},
	}
}

func TestFindAndNames(t *testing.T) {
	l := twoTiles()
	assert.Equal(t, []string{"a", "b"}, l.Names())

	r, ok := l.Find("b")
	assert.True(t, ok)
	assert.Equal(t, geom.NewRect(2, 0, 2, 2), r.Bounds)

	_, ok = l.Find("missing")
	assert.False(t, ok)
}

func TestBounds(t *testing.T) {
	assert.Equal(t, geom.Rect{}, (&region.Layout{}).Bounds())
	assert.Equal(t, geom.NewRect(0, 0, 4, 2), twoTiles().Bounds())

	l := twoTiles()
	l.Regions = append(l.Regions, region.Region{Name: "tilted", Bounds: geom.NewRotatedRect(0, -math.Sqrt2, 2, 2, 45)})
	assertRectInDelta(t, geom.NewRect(-math.Sqrt2, -math.Sqrt2, 4+math.Sqrt2, 2+math.Sqrt2), l.Bounds(), "mixed rotations")

	shared := &region.Layout{Regions: []region.Region{
		{Name: "a", Bounds: geom.NewRotatedRect(0, 0, 1, 1, 30)},
	}}
	tr := shared.Regions[0].Bounds.TopRight()
	shared.Regions = append(shared.Regions, region.Region{Name: "b", Bounds: geom.NewRotatedRect(tr.X, tr.Y, 1, 1, 30)})
	assertRectInDelta(t, geom.NewRotatedRect(0, 0, 2, 1, 30), shared.Bounds(), "shared rotation")
}

func TestRotateLayout(t *testing.T) {
	l := twoTiles()
	rotated := l.Rotate(90)

	a, _ := rotated.Find("a")
	b, _ := rotated.Find("b")
	assertRectInDelta(t, geom.NewRect(1, -1, 2, 2), a.Bounds, "a")
	assertRectInDelta(t, geom.NewRect(1, 1, 2, 2), b.Bounds, "b")

	before, after := l.Bounds().Center(), rotated.Bounds().Center()
	assert.True(t, before.ApproxEqual(after, precision), "rotation keeps the center, %v != %v", before, after)

	assert.Equal(t, l, l.Rotate(360), "full turn changes nothing")
	assert.Equal(t, twoTiles(), l, "receiver is unchanged")
}

func TestScaleAndTranslate(t *testing.T) {
	l := twoTiles()

	scaled := l.Scale(2)
	a, _ := scaled.Find("a")
	assert.Equal(t, geom.NewRect(0, 0, 4, 4), a.Bounds)
	assert.Equal(t, geom.NewRect(0, 0, 8, 4), scaled.Bounds())

	moved := l.Translate(geom.Point{X: -1, Y: 3})
	b, _ := moved.Find("b")
	assert.Equal(t, geom.NewRect(1, 3, 2, 2), b.Bounds)
	assert.Equal(t, twoTiles(), l, "receiver is unchanged")
}

func TestClone(t *testing.T) {
	l := twoTiles()
	c := l.Clone()
	assert.Equal(t, l, c)

	c.Regions[0].Name = "changed"
	c.Regions[1].Bounds.Degrees = 45
	assert.Equal(t, twoTiles(), l, "clone must not share regions")
}

func TestPostLoad(t *testing.T) {
	l := &region.Layout{Name: "x", Regions: []region.Region{
		{Name: "a", Bounds: geom.Rect{X: 0, Y: 0, Width: 1, Height: 2, Degrees: 135}},
	}}
	assert.NoError(t, l.PostLoad())
	assertRectInDelta(t, geom.Rect{X: -math.Sqrt2, Y: -math.Sqrt2, Width: 2, Height: 1, Degrees: 45}, l.Regions[0].Bounds, "canonical after load")

	l.Regions = append(l.Regions, region.Region{Name: "a"})
	assert.ErrorContains(t, l.PostLoad(), "duplicate region")

	l.Regions = []region.Region{{}}
	assert.ErrorContains(t, l.PostLoad(), "no name")
}
