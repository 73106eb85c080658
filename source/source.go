package source

import (
	"errors"
	"iter"
	"time"

	"github.com/ManchesterWuer/datashader/trip"
	"github.com/google/btree"
)

// ErrBadFrequency is returned when resampling with a non-positive bucket
// frequency.
var ErrBadFrequency = errors.New("source: bucket frequency must be positive")

type bucket struct {
	start   time.Time
	records []trip.Record
}

// Buckets groups records into fixed-frequency time buckets spanning the
// full record range, sorted by bucket start. Buckets with no records are
// represented, not skipped.
type Buckets struct {
	freq   time.Duration
	starts []time.Time
	index  *btree.BTreeG[bucket]
}

// Resample groups records into buckets of the given frequency. The bucket
// list covers every interval between the earliest and latest record, so
// sparse ranges produce empty buckets rather than gaps.
func Resample(records []trip.Record, freq time.Duration) (*Buckets, error) {
	if freq <= 0 {
		return nil, ErrBadFrequency
	}

	index := btree.NewG(2, func(a, b bucket) bool {
		return a.start.Before(b.start)
	})
	for _, r := range records {
		start := r.Pickup.Truncate(freq)
		b, ok := index.Get(bucket{start: start})
		if !ok {
			b = bucket{start: start}
		}
		b.records = append(b.records, r)
		index.ReplaceOrInsert(b)
	}

	b := &Buckets{freq: freq, index: index}
	if index.Len() == 0 {
		return b, nil
	}

	first, _ := index.Min()
	last, _ := index.Max()
	for start := first.start; !start.After(last.start); start = start.Add(freq) {
		b.starts = append(b.starts, start)
	}
	return b, nil
}

// Len returns the number of buckets, empty ones included.
func (b *Buckets) Len() int {
	return len(b.starts)
}

// Frequency returns the bucket width.
func (b *Buckets) Frequency() time.Duration {
	return b.freq
}

// Batch returns the records for bucket i, which must be in [0, Len());
// out-of-range indices panic like a slice. A bucket start with no indexed
// records is not an error: the lookup miss is substituted with an empty
// batch so sparse ranges never halt the pipeline. Wraparound is Cycle's
// job, not Batch's.
func (b *Buckets) Batch(i int) *trip.Batch {
	start := b.starts[i]
	found, ok := b.index.Get(bucket{start: start})
	if !ok {
		return trip.NewBatch()
	}
	return trip.NewBatch(found.records...)
}

// Cycle is an infinite, restartable cursor over a bucket list: after the
// last bucket it wraps back to the first.
type Cycle struct {
	buckets *Buckets
	next    int
}

// NewCycle creates a cursor positioned at the first bucket.
func NewCycle(buckets *Buckets) *Cycle {
	return &Cycle{buckets: buckets}
}

// Next returns the next batch, wrapping past the end of the bucket list.
func (c *Cycle) Next() *trip.Batch {
	if c.buckets.Len() == 0 {
		return trip.NewBatch()
	}
	batch := c.buckets.Batch(c.next)
	c.next = (c.next + 1) % c.buckets.Len()
	return batch
}

// All returns an infinite sequence of batches. The caller decides when to
// stop consuming.
func (c *Cycle) All() iter.Seq[*trip.Batch] {
	return func(yield func(*trip.Batch) bool) {
		for yield(c.Next()) {
		}
	}
}

// Reset rewinds the cursor to the first bucket.
func (c *Cycle) Reset() {
	c.next = 0
}
