package canvas

import "math"

// Axis maps data coordinates onto the pixel grid.
type Axis interface {
	// Map transforms a data coordinate into axis space.
	Map(x float64) float64
	// Invert transforms an axis-space coordinate back into data space.
	Invert(x float64) float64
}

// LinearAxis is the identity axis.
type LinearAxis struct{}

func (LinearAxis) Map(x float64) float64 { return x }

func (LinearAxis) Invert(x float64) float64 { return x }

// LogAxis maps coordinates through log10. Non-positive coordinates map to
// -Inf and fall outside any finite range.
type LogAxis struct{}

func (LogAxis) Map(x float64) float64 { return math.Log10(x) }

func (LogAxis) Invert(x float64) float64 { return math.Pow(10, x) }

// scaleAndTranslation computes the affine transform (s, t) such that
// Map(start)*s+t = 0 and Map(end)*s+t = n-1.
func scaleAndTranslation(a Axis, start, end float64, n int) (s, t float64) {
	ms, me := a.Map(start), a.Map(end)
	if me == ms {
		// Degenerate range: everything lands on pixel zero.
		return 0, 0
	}
	s = float64(n-1) / (me - ms)
	t = -ms * s
	return s, t
}
