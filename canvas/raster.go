package canvas

import (
	"errors"
	"time"
)

// ErrShapeMismatch is returned when rasters with different grid shapes are
// merged.
var ErrShapeMismatch = errors.New("canvas: raster shapes do not match")

// Raster is one aggregated image: a dense row-major grid of pixel values
// tagged with the time range of the records that produced it. Rasters from
// the same Canvas share a grid shape and may be merged by elementwise sum.
type Raster struct {
	Start  time.Time
	End    time.Time
	Width  int
	Height int
	Values []float64
}

// NewRaster creates a zero-valued raster of the given shape.
func NewRaster(width, height int) *Raster {
	return &Raster{
		Width:  width,
		Height: height,
		Values: make([]float64, width*height),
	}
}

// At returns the value at pixel (x, y).
func (r *Raster) At(x, y int) float64 {
	return r.Values[y*r.Width+x]
}

// Add accumulates other into r elementwise and widens r's time range to
// cover both. Zero times from empty inputs do not contribute to the range.
func (r *Raster) Add(other *Raster) error {
	if r.Width != other.Width || r.Height != other.Height {
		return ErrShapeMismatch
	}
	for i, v := range other.Values {
		r.Values[i] += v
	}
	if !other.Start.IsZero() && (r.Start.IsZero() || other.Start.Before(r.Start)) {
		r.Start = other.Start
	}
	if other.End.After(r.End) {
		r.End = other.End
	}
	return nil
}

// Merge sums a window of rasters into a single raster spanning the oldest
// start to the newest end.
func Merge(rasters []*Raster) (*Raster, error) {
	if len(rasters) == 0 {
		return nil, errors.New("canvas: no rasters to merge")
	}
	merged := NewRaster(rasters[0].Width, rasters[0].Height)
	for _, r := range rasters {
		if err := merged.Add(r); err != nil {
			return nil, err
		}
	}
	return merged, nil
}

// MinMax returns the smallest and largest pixel value.
func (r *Raster) MinMax() (lo, hi float64) {
	if len(r.Values) == 0 {
		return 0, 0
	}
	lo, hi = r.Values[0], r.Values[0]
	for _, v := range r.Values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
