package geom

import (
	"fmt"
	"math"

	"github.com/deeean/go-vector/vector2"
)

// Point is a location (or offset) in the plane.  Like Rect it is a plain
// value; every method returns a new Point.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

func (p Point) Plus(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

func (p Point) Minus(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

func (p Point) Times(factor float64) Point {
	return Point{X: p.X * factor, Y: p.Y * factor}
}

func (p Point) Divide(factor float64) Point {
	return Point{X: p.X / factor, Y: p.Y / factor}
}

func (p Point) Negate() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Apply runs fn over both coordinates.
func (p Point) Apply(fn func(float64) float64) Point {
	return Point{X: fn(p.X), Y: fn(p.Y)}
}

func (p Point) DistanceTo(other Point) float64 {
	return vector2.New(p.X, p.Y).Distance(vector2.New(other.X, other.Y))
}

func (p Point) SquaredDistanceTo(other Point) float64 {
	dx, dy := p.X-other.X, p.Y-other.Y
	return dx*dx + dy*dy
}

func (p Point) Equals(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// ApproxEqual reports whether both coordinates differ by at most epsilon.
func (p Point) ApproxEqual(other Point, epsilon float64) bool {
	return math.Abs(p.X-other.X) <= epsilon && math.Abs(p.Y-other.Y) <= epsilon
}

// Rotate turns p about pivot by degrees.  Positive angles go from the +X
// axis towards the +Y axis, which on a y-down screen is clockwise.
func (p Point) Rotate(degrees float64, pivot Point) Point {
	var sin, cos float64
	if math.Mod(degrees, 90) == 0 {
		// quarter turns are exact, so axis aligned results stay axis aligned
		switch NormalizeDegrees(degrees) {
		case 0:
			sin, cos = 0, 1
		case 90:
			sin, cos = 1, 0
		case 180:
			sin, cos = 0, -1
		case 270:
			sin, cos = -1, 0
		}
	} else {
		sin, cos = math.Sincos(degrees * math.Pi / 180.0)
	}
	dx, dy := p.X-pivot.X, p.Y-pivot.Y
	return Point{
		X: cos*dx - sin*dy + pivot.X,
		Y: sin*dx + cos*dy + pivot.Y,
	}
}

func (p Point) String() string {
	return fmt.Sprintf("(%v, %v)", round2(p.X), round2(p.Y))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
