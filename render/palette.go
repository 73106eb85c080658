package render

import "github.com/wcharczuk/go-chart/v2/drawing"

// Palette is an ordered color ramp. Normalized pixel values are mapped
// onto it by linear interpolation between adjacent stops.
type Palette []drawing.Color

// Hot is the classic black-red-yellow-white heat ramp.
var Hot = Palette{
	{R: 0, G: 0, B: 0, A: 255},
	{R: 230, G: 0, B: 0, A: 255},
	{R: 255, G: 210, B: 0, A: 255},
	{R: 255, G: 255, B: 255, A: 255},
}

// Fire is the ramp the taxi demos use: dark background through orange to
// near-white.
var Fire = Palette{
	{R: 0, G: 0, B: 4, A: 255},
	{R: 120, G: 28, B: 109, A: 255},
	{R: 237, G: 105, B: 37, A: 255},
	{R: 252, G: 255, B: 164, A: 255},
}

// Interpolate maps t in [0, 1] to a palette color. Values outside the
// interval clamp to the ends.
func (p Palette) Interpolate(t float64) drawing.Color {
	if len(p) == 0 {
		return drawing.ColorTransparent
	}
	if len(p) == 1 || t <= 0 {
		return p[0]
	}
	if t >= 1 {
		return p[len(p)-1]
	}

	scaled := t * float64(len(p)-1)
	i := int(scaled)
	frac := scaled - float64(i)
	return lerp(p[i], p[i+1], frac)
}

func lerp(a, b drawing.Color, t float64) drawing.Color {
	return drawing.Color{
		R: channel(a.R, b.R, t),
		G: channel(a.G, b.G, t),
		B: channel(a.B, b.B, t),
		A: channel(a.A, b.A, t),
	}
}

func channel(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
