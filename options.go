package datashader

import (
	"github.com/ManchesterWuer/datashader/render"
	"github.com/ManchesterWuer/datashader/trip"
)

// options defines all configuration options for the derived stages.
type options struct {
	windowSize   int            // How many rasters merge into one image
	historyDepth int            // How many emitted values are retained
	palette      render.Palette // Color ramp for shaded images
	x            trip.Field     // Horizontal coordinate field
	y            trip.Field     // Vertical coordinate field
}

// Option is a function that configures the stage options.
type Option func(*options)

// WithWindowSize sets how many consecutive rasters are merged into one
// image. The stage emits nothing until that many batches have been seen.
func WithWindowSize(w int) Option {
	return func(o *options) {
		o.windowSize = w
	}
}

// WithHistoryDepth sets how many emitted values the stage retains.
func WithHistoryDepth(k int) Option {
	return func(o *options) {
		o.historyDepth = k
	}
}

// WithPalette sets the color ramp used when shading merged rasters.
func WithPalette(p render.Palette) Option {
	return func(o *options) {
		o.palette = p
	}
}

// WithCoordinates sets the coordinate field pair used for binning.
func WithCoordinates(x, y trip.Field) Option {
	return func(o *options) {
		o.x = x
		o.y = y
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		windowSize:   1,
		historyDepth: 1,
		palette:      render.Hot,
		x:            trip.DropoffXField,
		y:            trip.DropoffYField,
	}
}
