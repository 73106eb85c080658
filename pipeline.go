package datashader

import (
	"context"
	"errors"
	"iter"

	"github.com/ManchesterWuer/datashader/trip"
)

// ErrNilBatch is returned when a nil batch is pushed into the pipeline.
var ErrNilBatch = errors.New("datashader: nil batch")

// Stage consumes one batch. Stages run synchronously: Push does not return
// until every registered stage has processed the batch, so stage state
// needs no locking.
type Stage interface {
	Process(ctx context.Context, batch *trip.Batch) error
}

// StageFunc is a function type that implements Stage.
type StageFunc func(ctx context.Context, batch *trip.Batch) error

// Process calls the function.
func (f StageFunc) Process(ctx context.Context, batch *trip.Batch) error {
	return f(ctx, batch)
}

// Pipeline fans a batch stream out to its stages in registration order.
type Pipeline struct {
	stages []Stage
}

// NewPipeline creates a pipeline over the given stages.
func NewPipeline(stages ...Stage) *Pipeline {
	return &Pipeline{stages: stages}
}

// Register appends a stage. Later stages observe each batch after earlier
// ones.
func (p *Pipeline) Register(s Stage) {
	p.stages = append(p.stages, s)
}

// Push delivers one batch to every stage in registration order. The first
// stage error stops delivery and is returned.
func (p *Pipeline) Push(ctx context.Context, batch *trip.Batch) error {
	if batch == nil {
		return ErrNilBatch
	}
	for _, s := range p.stages {
		if err := s.Process(ctx, batch); err != nil {
			return err
		}
	}
	return nil
}

// Run pushes up to n batches from the sequence, stopping early if the
// sequence ends, a stage fails, or the context is cancelled. Sources are
// typically infinite cyclic cursors, so n bounds the run.
func (p *Pipeline) Run(ctx context.Context, batches iter.Seq[*trip.Batch], n int) error {
	if n <= 0 {
		return nil
	}
	pushed := 0
	for batch := range batches {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.Push(ctx, batch); err != nil {
			return err
		}
		pushed++
		if pushed >= n {
			break
		}
	}
	return nil
}
