// Package render turns merged rasters into display-ready images: pixel
// values are normalized, mapped through a palette, and labeled with the
// date range they cover.
package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"time"

	"github.com/ManchesterWuer/datashader/canvas"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Image is a shaded raster tagged with the date range of the records that
// produced it.
type Image struct {
	Start time.Time
	End   time.Time
	Label string
	RGBA  *image.RGBA
}

// Shade normalizes the raster's values to [0, 1] and maps them through the
// palette. Raster rows are in data orientation (y grows upward), so the
// image is flipped vertically. The label is drawn in the top-left corner.
func Shade(r *canvas.Raster, p Palette) *Image {
	lo, hi := r.MinMax()
	span := hi - lo

	rgba := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			t := 0.0
			if span > 0 {
				t = (r.At(x, y) - lo) / span
			}
			c := p.Interpolate(t)
			rgba.Set(x, r.Height-1-y, color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}

	img := &Image{
		Start: r.Start,
		End:   r.End,
		Label: DateRangeLabel(r.Start, r.End),
		RGBA:  rgba,
	}
	if img.Label != "" {
		drawString(rgba, img.Label, 4, 14)
	}
	return img
}

// DateRangeLabel formats a window's date range. A single-day window gets
// one date; an empty window gets an empty label.
func DateRangeLabel(start, end time.Time) string {
	if start.IsZero() {
		return ""
	}
	const layout = "2006-01-02"
	if start.Format(layout) == end.Format(layout) {
		return start.Format(layout)
	}
	return start.Format(layout) + " - " + end.Format(layout)
}

// EncodePNG writes the image as PNG.
func (img *Image) EncodePNG(w io.Writer) error {
	return png.Encode(w, img.RGBA)
}

// drawString draws white text with a one-pixel black shadow so the label
// stays readable on both light and dark regions.
func drawString(dst *image.RGBA, s string, x, y int) {
	face := basicfont.Face7x13
	shadow := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x + 1), Y: fixed.I(y + 1)},
	}
	shadow.DrawString(s)

	dr := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	dr.DrawString(s)
}
