package render_test

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"github.com/ManchesterWuer/datashader/canvas"
	"github.com/ManchesterWuer/datashader/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

func TestPaletteInterpolate(t *testing.T) {
	p := render.Palette{
		{R: 0, G: 0, B: 0, A: 255},
		{R: 100, G: 200, B: 50, A: 255},
	}

	tests := []struct {
		name string
		t    float64
		want drawing.Color
	}{
		{name: "start", t: 0, want: p[0]},
		{name: "end", t: 1, want: p[1]},
		{name: "midpoint", t: 0.5, want: drawing.Color{R: 50, G: 100, B: 25, A: 255}},
		{name: "clamped below", t: -2, want: p[0]},
		{name: "clamped above", t: 3, want: p[1]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Interpolate(tt.t))
		})
	}
}

func TestPaletteDegenerate(t *testing.T) {
	assert.Equal(t, drawing.ColorTransparent, render.Palette{}.Interpolate(0.5))

	single := render.Palette{{R: 9, G: 9, B: 9, A: 255}}
	assert.Equal(t, single[0], single.Interpolate(0.7))
}

func TestShadeNormalizes(t *testing.T) {
	r := canvas.NewRaster(2, 1)
	r.Values = []float64{0, 10}

	p := render.Palette{
		{R: 0, G: 0, B: 0, A: 255},
		{R: 255, G: 255, B: 255, A: 255},
	}
	img := render.Shade(r, p)

	// Lowest value maps to the first stop, highest to the last.
	lo := img.RGBA.RGBAAt(0, 0)
	hi := img.RGBA.RGBAAt(1, 0)
	assert.Equal(t, uint8(0), lo.R)
	assert.Equal(t, uint8(255), hi.R)
}

func TestShadeFlat(t *testing.T) {
	r := canvas.NewRaster(2, 2)

	img := render.Shade(r, render.Hot)

	// A flat raster shades uniformly to the first stop; no division by a
	// zero span.
	c := img.RGBA.RGBAAt(1, 1)
	assert.Equal(t, uint8(0), c.R)
	assert.Equal(t, uint8(255), c.A)
}

func TestShadeFlipsVertically(t *testing.T) {
	r := canvas.NewRaster(1, 2)
	// Row y=1 (top in data space) holds the hot value.
	r.Values = []float64{0, 1}

	p := render.Palette{
		{R: 0, G: 0, B: 0, A: 255},
		{R: 255, G: 0, B: 0, A: 255},
	}
	img := render.Shade(r, p)

	// Hot row renders at the top of the image.
	assert.Equal(t, uint8(255), img.RGBA.RGBAAt(0, 0).R)
	assert.Equal(t, uint8(0), img.RGBA.RGBAAt(0, 1).R)
}

func TestDateRangeLabel(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  string
	}{
		{
			name: "empty window - no label",
			want: "",
		},
		{
			name:  "single day",
			start: time.Date(2015, 1, 3, 8, 0, 0, 0, time.UTC),
			end:   time.Date(2015, 1, 3, 20, 0, 0, 0, time.UTC),
			want:  "2015-01-03",
		},
		{
			name:  "multi day",
			start: time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2015, 1, 7, 0, 0, 0, 0, time.UTC),
			want:  "2015-01-01 - 2015-01-07",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render.DateRangeLabel(tt.start, tt.end))
		})
	}
}

func TestShadeLabel(t *testing.T) {
	r := canvas.NewRaster(100, 40)
	r.Start = time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)
	r.End = time.Date(2015, 1, 7, 0, 0, 0, 0, time.UTC)

	img := render.Shade(r, render.Fire)
	assert.Equal(t, "2015-01-01 - 2015-01-07", img.Label)
	assert.Equal(t, r.Start, img.Start)
	assert.Equal(t, r.End, img.End)
}

func TestEncodePNG(t *testing.T) {
	r := canvas.NewRaster(4, 4)
	r.Values[5] = 2

	img := render.Shade(r, render.Hot)

	var buf bytes.Buffer
	require.NoError(t, img.EncodePNG(&buf))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 4, decoded.Bounds().Dx())
	assert.Equal(t, 4, decoded.Bounds().Dy())
}
