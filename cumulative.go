package datashader

import (
	"context"

	"github.com/ManchesterWuer/datashader/history"
	"github.com/ManchesterWuer/datashader/trip"
)

// CumulativeMean tracks the running mean of per-batch sums for one field
// and emits an updated mean on every batch.
//
// The mean is batch-weighted: each batch contributes its field sum with
// equal weight, so the emitted value is total-of-sums / batches-seen, not
// a row-wise mean. The accumulator only grows; nothing is evicted.
type CumulativeMean struct {
	field   trip.Field
	batches int64
	total   float64
	history *history.Queue[float64]
}

// NewCumulativeMean creates the stage for one field. Only the history
// depth option applies.
func NewCumulativeMean(field trip.Field, opts ...Option) *CumulativeMean {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &CumulativeMean{
		field:   field,
		history: history.NewQueue[float64](o.historyDepth),
	}
}

// Process folds the batch's field sum into the accumulator and emits the
// updated mean. Unlike SlidingMerge, every batch produces an emission.
func (c *CumulativeMean) Process(_ context.Context, batch *trip.Batch) error {
	c.batches++
	c.total += batch.Sum(c.field)
	c.history.Push(c.total / float64(c.batches))
	return nil
}

// History returns the retained means, oldest first.
func (c *CumulativeMean) History() []float64 {
	return c.history.Values()
}

// Latest returns the most recently emitted mean. ok is false before the
// first batch.
func (c *CumulativeMean) Latest() (float64, bool) {
	return c.history.Latest()
}

// Batches returns how many batches have been folded in.
func (c *CumulativeMean) Batches() int64 {
	return c.batches
}
