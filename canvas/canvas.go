package canvas

import (
	"errors"
	"math"

	"github.com/ManchesterWuer/datashader/trip"
)

// ErrNilSource is returned when Points is given a nil batch.
var ErrNilSource = errors.New("canvas: source batch is nil")

// Range is a closed interval of data coordinates.
type Range struct {
	Start float64
	End   float64
}

// Options configures a Canvas.
type Options struct {
	Width  int
	Height int
	// XRange and YRange fix the data extent of the grid. When nil the
	// extent is derived from each batch, which makes rasters from
	// different batches incompatible for merging.
	XRange *Range
	YRange *Range
	XAxis  Axis
	YAxis  Axis
}

// DefaultOptions returns the default configuration options.
func DefaultOptions() Options {
	return Options{
		Width:  600,
		Height: 600,
		XAxis:  LinearAxis{},
		YAxis:  LinearAxis{},
	}
}

// Canvas describes a fixed pixel grid onto which record coordinates are
// binned and reduced.
type Canvas struct {
	width  int
	height int
	xRange *Range
	yRange *Range
	xAxis  Axis
	yAxis  Axis
}

// New creates a canvas with the given options, falling back to defaults
// for zero fields.
func New(opts Options) *Canvas {
	def := DefaultOptions()
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.Height <= 0 {
		opts.Height = def.Height
	}
	if opts.XAxis == nil {
		opts.XAxis = def.XAxis
	}
	if opts.YAxis == nil {
		opts.YAxis = def.YAxis
	}
	return &Canvas{
		width:  opts.Width,
		height: opts.Height,
		xRange: opts.XRange,
		yRange: opts.YRange,
		xAxis:  opts.XAxis,
		yAxis:  opts.YAxis,
	}
}

// Points bins the batch's records by the x and y coordinate fields and
// reduces each pixel with the given reducer. The raster's time range is
// the minimum and maximum pickup time in the batch. An empty batch yields
// a raster of identity values and a zero time range; points outside the
// canvas extent are skipped.
func (c *Canvas) Points(b *trip.Batch, x, y trip.Field, red Reducer) (*Raster, error) {
	if b == nil {
		return nil, ErrNilSource
	}

	xr := c.xRange
	if xr == nil {
		xr = fieldRange(b, x)
	}
	yr := c.yRange
	if yr == nil {
		yr = fieldRange(b, y)
	}

	sx, tx := scaleAndTranslation(c.xAxis, xr.Start, xr.End, c.width)
	sy, ty := scaleAndTranslation(c.yAxis, yr.Start, yr.End, c.height)

	accs := make([]Accumulator, c.width*c.height)
	for i := range accs {
		accs[i] = red.CreateAccumulator()
	}

	for _, rec := range b.Records {
		px := pixel(c.xAxis, x(rec), sx, tx, c.width)
		py := pixel(c.yAxis, y(rec), sy, ty, c.height)
		if px < 0 || py < 0 {
			continue
		}
		i := py*c.width + px
		accs[i] = red.AddInput(accs[i], rec)
	}

	raster := NewRaster(c.width, c.height)
	for i, acc := range accs {
		raster.Values[i] = red.GetResult(acc)
	}
	raster.Start, raster.End, _ = b.TimeRange()
	return raster, nil
}

// pixel maps a data coordinate to a pixel index, or -1 when the coordinate
// falls outside the grid.
func pixel(a Axis, v float64, s, t float64, n int) int {
	mapped := a.Map(v)*s + t
	if math.IsNaN(mapped) || math.IsInf(mapped, 0) {
		return -1
	}
	idx := int(math.Floor(mapped + 0.5))
	if idx < 0 || idx >= n {
		return -1
	}
	return idx
}

func fieldRange(b *trip.Batch, f trip.Field) *Range {
	if b.Empty() {
		return &Range{Start: 0, End: 1}
	}
	r := Range{Start: f(b.Records[0]), End: f(b.Records[0])}
	for _, rec := range b.Records[1:] {
		v := f(rec)
		if v < r.Start {
			r.Start = v
		}
		if v > r.End {
			r.End = v
		}
	}
	return &r
}
