package datashader

import (
	"context"

	"github.com/ManchesterWuer/datashader/canvas"
	"github.com/ManchesterWuer/datashader/history"
	"github.com/ManchesterWuer/datashader/render"
	"github.com/ManchesterWuer/datashader/trip"
	"github.com/ManchesterWuer/datashader/window"
)

// SlidingMerge rasterizes each batch, keeps a sliding window of the most
// recent rasters, and once the window is full merges every window into one
// shaded image pushed onto its history queue.
//
// The window size and the history depth are independent knobs: the first
// bounds how much history influences one picture, the second how many
// pictures are remembered.
type SlidingMerge struct {
	canvas  *canvas.Canvas
	reducer canvas.Reducer
	x       trip.Field
	y       trip.Field
	palette render.Palette
	window  *window.Window[*canvas.Raster]
	history *history.Queue[*render.Image]
}

// NewSlidingMerge creates the stage. By default the window size is one
// (no windowing) and only the latest image is retained.
func NewSlidingMerge(c *canvas.Canvas, reducer canvas.Reducer, opts ...Option) *SlidingMerge {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &SlidingMerge{
		canvas:  c,
		reducer: reducer,
		x:       o.x,
		y:       o.y,
		palette: o.palette,
		window:  window.New[*canvas.Raster](o.windowSize),
		history: history.NewQueue[*render.Image](o.historyDepth),
	}
}

// Process rasterizes the batch and, when the window is full, merges and
// shades it. The first W-1 batches produce no image.
func (s *SlidingMerge) Process(_ context.Context, batch *trip.Batch) error {
	raster, err := s.canvas.Points(batch, s.x, s.y, s.reducer)
	if err != nil {
		return err
	}

	rasters, full := s.window.Push(raster)
	if !full {
		return nil
	}

	merged, err := canvas.Merge(rasters)
	if err != nil {
		return err
	}
	s.history.Push(render.Shade(merged, s.palette))
	return nil
}

// History returns the retained images, oldest first.
func (s *SlidingMerge) History() []*render.Image {
	return s.history.Values()
}

// Latest returns the most recently merged image. ok is false before the
// first full window.
func (s *SlidingMerge) Latest() (*render.Image, bool) {
	return s.history.Latest()
}
