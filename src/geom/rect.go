/*
* Package geom holds the plane geometry used for viewport bounds, tile bounds
* and selection regions.
*
* A Rect is an oriented rectangle.  (X, Y) is its top left corner and the
* rectangle is turned by Degrees about that corner.  Rects built with
* NewRotatedRect are canonical: Degrees lies in [0, 90), with the corner that
* keeps the angle in that range chosen as the top left.  The same point set
* can be written many ways but has exactly one canonical form, and the
* methods below keep canonical rects canonical.
*
* Everything here is a value.  Methods never modify the receiver; Degrees is
* the one field callers are expected to assign directly, to look at the same
* X/Y/Width/Height under another orientation.
*
* NaN and Inf inputs are not trapped, they propagate through the arithmetic.
 */

package geom

import (
	"fmt"
	"math"

	"github.com/deeean/go-vector/vector2"
)

type Rect struct {
	X       float64 `json:"x" yaml:"x"`
	Y       float64 `json:"y" yaml:"y"`
	Width   float64 `json:"width" yaml:"width"`
	Height  float64 `json:"height" yaml:"height"`
	Degrees float64 `json:"degrees" yaml:"degrees"`
}

// NewRect returns an unrotated rectangle.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// NewRotatedRect returns the canonical form of the rectangle anchored at
// (x, y) and turned by degrees about that anchor.  degrees may be any value.
func NewRotatedRect(x, y, width, height, degrees float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height, Degrees: degrees}.Canon()
}

// FromSummits builds the rectangle that has the given top left, top right
// and bottom left corners.
func FromSummits(topLeft, topRight, bottomLeft Point) Rect {
	tl := vector2.New(topLeft.X, topLeft.Y)
	width := tl.Distance(vector2.New(topRight.X, topRight.Y))
	height := tl.Distance(vector2.New(bottomLeft.X, bottomLeft.Y))
	return NewRotatedRect(topLeft.X, topLeft.Y, width, height, topEdgeDegrees(topLeft, topRight))
}

// Canon rewrites r so Degrees is in [0, 90).  Every quarter turn past that
// range moves the anchor to the next corner (and swaps the extents on odd
// quarters), so the four corners are unchanged.
func (r Rect) Canon() Rect {
	r.Degrees = NormalizeDegrees(r.Degrees)
	switch {
	case r.Degrees >= 270:
		return r.reanchor(r.TopRight(), r.Height, r.Width, r.Degrees-270)
	case r.Degrees >= 180:
		return r.reanchor(r.BottomRight(), r.Width, r.Height, r.Degrees-180)
	case r.Degrees >= 90:
		return r.reanchor(r.BottomLeft(), r.Height, r.Width, r.Degrees-90)
	}
	return r
}

func (r Rect) reanchor(topLeft Point, width, height, degrees float64) Rect {
	return Rect{X: topLeft.X, Y: topLeft.Y, Width: width, Height: height, Degrees: degrees}
}

func (r Rect) TopLeft() Point {
	return Point{X: r.X, Y: r.Y}
}

func (r Rect) TopRight() Point {
	return Point{X: r.X + r.Width, Y: r.Y}.Rotate(r.Degrees, r.TopLeft())
}

func (r Rect) BottomLeft() Point {
	return Point{X: r.X, Y: r.Y + r.Height}.Rotate(r.Degrees, r.TopLeft())
}

func (r Rect) BottomRight() Point {
	return Point{X: r.X + r.Width, Y: r.Y + r.Height}.Rotate(r.Degrees, r.TopLeft())
}

func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}.Rotate(r.Degrees, r.TopLeft())
}

// Corners returns the corners clockwise on screen, starting at the top left.
func (r Rect) Corners() [4]Point {
	return [4]Point{r.TopLeft(), r.TopRight(), r.BottomRight(), r.BottomLeft()}
}

// Size is the unrotated extent, Width by Height.
func (r Rect) Size() Point {
	return Point{X: r.Width, Y: r.Height}
}

func (r Rect) AspectRatio() float64 {
	return r.Width / r.Height
}

// Times scales the position and the extents by factor.  Only positive
// factors give a meaningful rectangle.
func (r Rect) Times(factor float64) Rect {
	return Rect{
		X:       r.X * factor,
		Y:       r.Y * factor,
		Width:   r.Width * factor,
		Height:  r.Height * factor,
		Degrees: r.Degrees,
	}
}

func (r Rect) Translate(delta Point) Rect {
	r.X += delta.X
	r.Y += delta.Y
	return r
}

// Rotate turns the rectangle by degrees about its own center.
func (r Rect) Rotate(degrees float64) Rect {
	return r.RotateAround(degrees, r.Center())
}

// RotateAround turns the rectangle by degrees about pivot.  The result is
// canonical, so once the combined angle passes 90 a different corner
// becomes the top left.
func (r Rect) RotateAround(degrees float64, pivot Point) Rect {
	degrees = NormalizeDegrees(degrees)
	if degrees == 0 {
		return r.Canon()
	}
	topLeft := r.TopLeft().Rotate(degrees, pivot)
	return NewRotatedRect(topLeft.X, topLeft.Y, r.Width, r.Height, r.Degrees+degrees)
}

// Union returns a rectangle enclosing both r and other.  Rectangles with the
// same orientation are combined in their shared frame and keep that
// orientation; otherwise the result is the axis aligned box of all corners.
func (r Rect) Union(other Rect) Rect {
	if r.Degrees != other.Degrees {
		return boundsOf(append(r.cornerSlice(), other.cornerSlice()...))
	}
	origin := Point{}
	var framed []Point
	for _, c := range append(r.cornerSlice(), other.cornerSlice()...) {
		framed = append(framed, c.Rotate(-r.Degrees, origin))
	}
	box := boundsOf(framed)
	topLeft := box.TopLeft().Rotate(r.Degrees, origin)
	return Rect{X: topLeft.X, Y: topLeft.Y, Width: box.Width, Height: box.Height, Degrees: r.Degrees}
}

// BoundingBox is the smallest unrotated rectangle containing r.
func (r Rect) BoundingBox() Rect {
	if r.Degrees == 0 {
		return r
	}
	return boundsOf(r.cornerSlice())
}

// IntegerBoundingBox is BoundingBox grown outwards to whole units.
func (r Rect) IntegerBoundingBox() Rect {
	box := r.BoundingBox()
	x := math.Floor(box.X)
	y := math.Floor(box.Y)
	return Rect{
		X:      x,
		Y:      y,
		Width:  math.Ceil(box.Width + box.X - x),
		Height: math.Ceil(box.Height + box.Y - y),
	}
}

func (r Rect) Equals(other Rect) bool {
	return r == other
}

// ApproxEqual compares field by field, allowing epsilon on each.
func (r Rect) ApproxEqual(other Rect, epsilon float64) bool {
	return r.TopLeft().ApproxEqual(other.TopLeft(), epsilon) &&
		r.Size().ApproxEqual(other.Size(), epsilon) &&
		math.Abs(r.Degrees-other.Degrees) <= epsilon
}

func (r Rect) String() string {
	return fmt.Sprintf("[%v, %v, %v x %v, %vdeg]",
		round2(r.X), round2(r.Y), round2(r.Width), round2(r.Height), round2(r.Degrees))
}

func (r Rect) cornerSlice() []Point {
	c := r.Corners()
	return c[:]
}

// boundsOf is the axis aligned box around points.
func boundsOf(points []Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
