package geom

import "math"

// NormalizeDegrees maps any angle onto [0, 360).
func NormalizeDegrees(degrees float64) float64 {
	// mod brings us to the range -360..360, angles already in range come
	// back bit for bit
	d := math.Mod(degrees, 360)
	switch {
	case d < 0:
		d += 360
		if d == 360 {
			// -tiny rounds up to a full turn
			d = 0
		}
	case d == 0:
		// drop the sign of -0
		d = 0
	}
	return d
}

// topEdgeDegrees is the direction of the vector from->to, in [0, 360).
func topEdgeDegrees(from, to Point) float64 {
	const epsilon = 1e-15
	diff := to.Minus(from).Apply(func(v float64) float64 {
		if math.Abs(v) < epsilon {
			return 0
		}
		return v
	})
	return NormalizeDegrees(math.Atan2(diff.Y, diff.X) * 180.0 / math.Pi)
}
