// Package display renders a history queue's contents for an interactive
// session: a labeled table of the retained values, a line chart of the
// emitted sequence, and summary statistics.
package display

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/montanaflynn/stats"
	"github.com/wcharczuk/go-chart/v2"
)

// ErrNoValues is returned when there is nothing to display.
var ErrNoValues = errors.New("display: no values")

// Table writes values as a two-column table mapping a sequence index to
// the retained value, oldest first.
func Table(w io.Writer, values []float64) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "seq\tvalue")
	for i, v := range values {
		fmt.Fprintf(tw, "%d\t%.4f\n", i, v)
	}
	return tw.Flush()
}

// Chart renders the value sequence as a PNG line chart.
func Chart(w io.Writer, name string, values []float64) error {
	if len(values) == 0 {
		return ErrNoValues
	}

	xs := make([]float64, len(values))
	for i := range xs {
		xs[i] = float64(i)
	}
	ys := values
	if len(values) == 1 {
		// Pad to at least two X values for go-chart.
		xs = []float64{0, 1}
		ys = []float64{values[0], values[0]}
	}

	ch := chart.Chart{
		Series: []chart.Series{
			chart.ContinuousSeries{Name: name, XValues: xs, YValues: ys},
		},
	}
	return ch.Render(chart.PNG, w)
}

// Summary holds descriptive statistics over a value sequence.
type Summary struct {
	Mean   float64
	Median float64
	Min    float64
	Max    float64
}

// Summarize computes descriptive statistics over the values.
func Summarize(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, ErrNoValues
	}

	mean, err := stats.Mean(values)
	if err != nil {
		return Summary{}, fmt.Errorf("display: %w", err)
	}
	median, err := stats.Median(values)
	if err != nil {
		return Summary{}, fmt.Errorf("display: %w", err)
	}
	min, err := stats.Min(values)
	if err != nil {
		return Summary{}, fmt.Errorf("display: %w", err)
	}
	max, err := stats.Max(values)
	if err != nil {
		return Summary{}, fmt.Errorf("display: %w", err)
	}

	return Summary{Mean: mean, Median: median, Min: min, Max: max}, nil
}
