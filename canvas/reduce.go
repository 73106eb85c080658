package canvas

import "github.com/ManchesterWuer/datashader/trip"

// Accumulator is the per-pixel aggregation state. Count doubles as the
// presence flag: a pixel with Count zero has seen no records and reduces
// to the identity value.
type Accumulator struct {
	Count int64
	Value float64
}

// Reducer defines how records sharing a pixel should be aggregated. The
// pipeline folds records in one at a time; accumulators are never combined
// across grids, so there is no merge operation.
type Reducer interface {
	// CreateAccumulator creates a new accumulator for aggregation
	CreateAccumulator() Accumulator
	// AddInput adds a single input to the accumulator
	AddInput(acc Accumulator, rec trip.Record) Accumulator
	// GetResult produces the final pixel value from the accumulator
	GetResult(acc Accumulator) float64
}

// CountReducer counts records per pixel.
type CountReducer struct{}

func NewCount() *CountReducer { return &CountReducer{} }

func (r *CountReducer) CreateAccumulator() Accumulator { return Accumulator{} }

func (r *CountReducer) AddInput(acc Accumulator, _ trip.Record) Accumulator {
	acc.Count++
	return acc
}

func (r *CountReducer) GetResult(acc Accumulator) float64 {
	return float64(acc.Count)
}

// SumReducer sums a field per pixel.
type SumReducer struct {
	field trip.Field
}

func NewSum(field trip.Field) *SumReducer { return &SumReducer{field: field} }

func (r *SumReducer) CreateAccumulator() Accumulator { return Accumulator{} }

func (r *SumReducer) AddInput(acc Accumulator, rec trip.Record) Accumulator {
	acc.Count++
	acc.Value += r.field(rec)
	return acc
}

func (r *SumReducer) GetResult(acc Accumulator) float64 {
	return acc.Value
}

// MinReducer keeps the smallest field value per pixel.
type MinReducer struct {
	field trip.Field
}

func NewMin(field trip.Field) *MinReducer { return &MinReducer{field: field} }

func (r *MinReducer) CreateAccumulator() Accumulator { return Accumulator{} }

func (r *MinReducer) AddInput(acc Accumulator, rec trip.Record) Accumulator {
	v := r.field(rec)
	if acc.Count == 0 || v < acc.Value {
		acc.Value = v
	}
	acc.Count++
	return acc
}

func (r *MinReducer) GetResult(acc Accumulator) float64 {
	return acc.Value
}

// MaxReducer keeps the largest field value per pixel.
type MaxReducer struct {
	field trip.Field
}

func NewMax(field trip.Field) *MaxReducer { return &MaxReducer{field: field} }

func (r *MaxReducer) CreateAccumulator() Accumulator { return Accumulator{} }

func (r *MaxReducer) AddInput(acc Accumulator, rec trip.Record) Accumulator {
	v := r.field(rec)
	if acc.Count == 0 || v > acc.Value {
		acc.Value = v
	}
	acc.Count++
	return acc
}

func (r *MaxReducer) GetResult(acc Accumulator) float64 {
	return acc.Value
}

// MeanReducer averages a field per pixel.
type MeanReducer struct {
	field trip.Field
}

func NewMean(field trip.Field) *MeanReducer { return &MeanReducer{field: field} }

func (r *MeanReducer) CreateAccumulator() Accumulator { return Accumulator{} }

func (r *MeanReducer) AddInput(acc Accumulator, rec trip.Record) Accumulator {
	acc.Count++
	acc.Value += r.field(rec)
	return acc
}

func (r *MeanReducer) GetResult(acc Accumulator) float64 {
	if acc.Count == 0 {
		return 0
	}
	return acc.Value / float64(acc.Count)
}
