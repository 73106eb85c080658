package trip

import "time"

// The max time that can be represented.
var maxTime = time.Date(292277026596, 12, 4, 15, 30, 7, 999999999, time.UTC)

// Max is a sentinel record ordered after every real record. It is used as
// the stop value when merging sorted record sequences.
var Max = Record{Pickup: maxTime}

// Record is a single taxi trip observation.
type Record struct {
	Pickup         time.Time
	DropoffX       float64
	DropoffY       float64
	PassengerCount float64
	FareAmount     float64
}

// Less orders records by pickup time.
func (r Record) Less(t Record) bool {
	return r.Pickup.Before(t.Pickup)
}

// Field extracts one named numeric column from a record.
type Field func(Record) float64

// Predefined fields matching the input columns.
var (
	DropoffXField       Field = func(r Record) float64 { return r.DropoffX }
	DropoffYField       Field = func(r Record) float64 { return r.DropoffY }
	PassengerCountField Field = func(r Record) float64 { return r.PassengerCount }
	FareAmountField     Field = func(r Record) float64 { return r.FareAmount }
)

// Batch is an ordered set of records belonging to one time bucket. A batch
// is immutable once produced; an empty batch is valid and represents a
// bucket with no trips.
type Batch struct {
	Records []Record
}

// NewBatch creates a batch over the given records.
func NewBatch(records ...Record) *Batch {
	return &Batch{Records: records}
}

// Empty reports whether the batch holds no records.
func (b *Batch) Empty() bool {
	return len(b.Records) == 0
}

// Len returns the number of records in the batch.
func (b *Batch) Len() int {
	return len(b.Records)
}

// TimeRange returns the minimum and maximum pickup time present in the
// batch. ok is false for an empty batch.
func (b *Batch) TimeRange() (start, end time.Time, ok bool) {
	if b.Empty() {
		return time.Time{}, time.Time{}, false
	}
	start, end = b.Records[0].Pickup, b.Records[0].Pickup
	for _, r := range b.Records[1:] {
		if r.Pickup.Before(start) {
			start = r.Pickup
		}
		if r.Pickup.After(end) {
			end = r.Pickup
		}
	}
	return start, end, true
}

// Sum returns the sum of the given field over all records in the batch.
// An empty batch sums to zero.
func (b *Batch) Sum(f Field) float64 {
	var total float64
	for _, r := range b.Records {
		total += f(r)
	}
	return total
}
