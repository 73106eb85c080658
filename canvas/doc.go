// Package canvas rasterizes trip records onto a fixed pixel grid. A Canvas
// describes the grid shape, the data extent, and the axis transforms
// (linear or log10); Points bins a batch's records by a pair of coordinate
// fields and reduces the records sharing a pixel to one scalar.
//
// Reducers follow an accumulator protocol: each pixel owns an Accumulator,
// records are folded in one at a time, and the final grid value is produced
// from the accumulator. Built-in reducers cover count, sum, min, max and
// mean over a named field. A pixel that saw no records reduces to the
// identity value of its reducer, so empty batches and sparse extents never
// fail.
//
// Rasters produced by the same Canvas share a grid shape and can be merged
// by elementwise sum:
//
//	c := canvas.New(canvas.Options{
//	    Width:  600,
//	    Height: 600,
//	    XRange: &canvas.Range{Start: -8250000, End: -8210000},
//	    YRange: &canvas.Range{Start: 4965000, End: 4990000},
//	})
//
//	raster, err := c.Points(batch, trip.DropoffXField, trip.DropoffYField,
//	    canvas.NewMax(trip.PassengerCountField))
//	if err != nil {
//	    // handle error
//	}
//	merged, err := canvas.Merge([]*canvas.Raster{raster, other})
package canvas
