package canvas_test

import (
	"testing"
	"time"

	"github.com/ManchesterWuer/datashader/canvas"
	"github.com/ManchesterWuer/datashader/trip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoByTwo is a 2x2 canvas over the unit square: records land in one of
// four pixels.
func twoByTwo() *canvas.Canvas {
	return canvas.New(canvas.Options{
		Width:  2,
		Height: 2,
		XRange: &canvas.Range{Start: 0, End: 1},
		YRange: &canvas.Range{Start: 0, End: 1},
	})
}

func rec(x, y, passengers, fare float64, ts time.Time) trip.Record {
	return trip.Record{
		Pickup:         ts,
		DropoffX:       x,
		DropoffY:       y,
		PassengerCount: passengers,
		FareAmount:     fare,
	}
}

func TestPointsReducers(t *testing.T) {
	ts := time.Date(2015, 1, 1, 12, 0, 0, 0, time.UTC)
	batch := trip.NewBatch(
		rec(0, 0, 2, 10, ts),
		rec(0, 0, 4, 20, ts.Add(time.Hour)),
		rec(1, 1, 1, 5, ts.Add(2*time.Hour)),
	)

	tests := []struct {
		name    string
		reducer canvas.Reducer
		// pixel (0,0) and pixel (1,1)
		wantOrigin float64
		wantFar    float64
	}{
		{
			name:       "count",
			reducer:    canvas.NewCount(),
			wantOrigin: 2,
			wantFar:    1,
		},
		{
			name:       "sum",
			reducer:    canvas.NewSum(trip.FareAmountField),
			wantOrigin: 30,
			wantFar:    5,
		},
		{
			name:       "min",
			reducer:    canvas.NewMin(trip.PassengerCountField),
			wantOrigin: 2,
			wantFar:    1,
		},
		{
			name:       "max",
			reducer:    canvas.NewMax(trip.PassengerCountField),
			wantOrigin: 4,
			wantFar:    1,
		},
		{
			name:       "mean",
			reducer:    canvas.NewMean(trip.FareAmountField),
			wantOrigin: 15,
			wantFar:    5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raster, err := twoByTwo().Points(batch,
				trip.DropoffXField, trip.DropoffYField, tt.reducer)
			require.NoError(t, err)

			assert.Equal(t, tt.wantOrigin, raster.At(0, 0))
			assert.Equal(t, tt.wantFar, raster.At(1, 1))
			// Pixels that saw no records reduce to the identity.
			assert.Zero(t, raster.At(1, 0))
			assert.Zero(t, raster.At(0, 1))
		})
	}
}

func TestPointsTimeRange(t *testing.T) {
	start := time.Date(2015, 1, 3, 0, 0, 0, 0, time.UTC)
	end := start.Add(23 * time.Hour)
	batch := trip.NewBatch(
		rec(0.5, 0.5, 1, 1, end),
		rec(0.5, 0.5, 1, 1, start),
	)

	raster, err := twoByTwo().Points(batch,
		trip.DropoffXField, trip.DropoffYField, canvas.NewCount())
	require.NoError(t, err)

	assert.Equal(t, start, raster.Start)
	assert.Equal(t, end, raster.End)
}

func TestPointsEmptyBatch(t *testing.T) {
	raster, err := twoByTwo().Points(trip.NewBatch(),
		trip.DropoffXField, trip.DropoffYField, canvas.NewCount())
	require.NoError(t, err)

	for _, v := range raster.Values {
		assert.Zero(t, v)
	}
	assert.True(t, raster.Start.IsZero())
	assert.True(t, raster.End.IsZero())
}

func TestPointsNilBatch(t *testing.T) {
	_, err := twoByTwo().Points(nil,
		trip.DropoffXField, trip.DropoffYField, canvas.NewCount())
	assert.ErrorIs(t, err, canvas.ErrNilSource)
}

func TestPointsSkipsOutOfRange(t *testing.T) {
	batch := trip.NewBatch(
		rec(0.5, 0.5, 1, 1, time.Unix(1000, 0)),
		rec(5, 5, 1, 1, time.Unix(2000, 0)),
		rec(-1, 0.5, 1, 1, time.Unix(3000, 0)),
	)

	raster, err := twoByTwo().Points(batch,
		trip.DropoffXField, trip.DropoffYField, canvas.NewCount())
	require.NoError(t, err)

	var total float64
	for _, v := range raster.Values {
		total += v
	}
	assert.Equal(t, float64(1), total)
}

func TestLogAxisSkipsNonPositive(t *testing.T) {
	c := canvas.New(canvas.Options{
		Width:  2,
		Height: 2,
		XRange: &canvas.Range{Start: 1, End: 100},
		YRange: &canvas.Range{Start: 0, End: 1},
		XAxis:  canvas.LogAxis{},
	})
	batch := trip.NewBatch(
		rec(10, 0.5, 1, 1, time.Unix(1000, 0)),
		rec(0, 0.5, 1, 1, time.Unix(2000, 0)),
		rec(-3, 0.5, 1, 1, time.Unix(3000, 0)),
	)

	raster, err := c.Points(batch,
		trip.DropoffXField, trip.DropoffYField, canvas.NewCount())
	require.NoError(t, err)

	var total float64
	for _, v := range raster.Values {
		total += v
	}
	assert.Equal(t, float64(1), total)
}

func TestMerge(t *testing.T) {
	a := canvas.NewRaster(2, 1)
	a.Values = []float64{1, 2}
	a.Start = time.Unix(1000, 0)
	a.End = time.Unix(2000, 0)

	b := canvas.NewRaster(2, 1)
	b.Values = []float64{10, 20}
	b.Start = time.Unix(3000, 0)
	b.End = time.Unix(4000, 0)

	merged, err := canvas.Merge([]*canvas.Raster{a, b})
	require.NoError(t, err)

	assert.Equal(t, []float64{11, 22}, merged.Values)
	assert.Equal(t, time.Unix(1000, 0), merged.Start)
	assert.Equal(t, time.Unix(4000, 0), merged.End)
}

func TestMergeSkipsZeroTimes(t *testing.T) {
	empty := canvas.NewRaster(1, 1)
	full := canvas.NewRaster(1, 1)
	full.Values = []float64{3}
	full.Start = time.Unix(1000, 0)
	full.End = time.Unix(2000, 0)

	merged, err := canvas.Merge([]*canvas.Raster{empty, full})
	require.NoError(t, err)

	assert.Equal(t, time.Unix(1000, 0), merged.Start)
	assert.Equal(t, time.Unix(2000, 0), merged.End)
	assert.Equal(t, []float64{3}, merged.Values)
}

func TestMergeShapeMismatch(t *testing.T) {
	a := canvas.NewRaster(2, 2)
	b := canvas.NewRaster(3, 2)

	_, err := canvas.Merge([]*canvas.Raster{a, b})
	assert.ErrorIs(t, err, canvas.ErrShapeMismatch)
}

func TestMergeEmpty(t *testing.T) {
	_, err := canvas.Merge(nil)
	assert.Error(t, err)
}

func TestMinMax(t *testing.T) {
	r := canvas.NewRaster(2, 2)
	r.Values = []float64{3, -1, 7, 0}

	lo, hi := r.MinMax()
	assert.Equal(t, float64(-1), lo)
	assert.Equal(t, float64(7), hi)
}
