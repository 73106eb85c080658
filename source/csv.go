package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"
	"time"

	"github.com/ManchesterWuer/datashader/trip"
)

// Column names accepted for each record field. The first header matching
// any alias wins.
var columnAliases = map[string][]string{
	"pickup":          {"tpep_pickup_datetime", "pickup_datetime", "pickup"},
	"dropoff_x":       {"dropoff_x"},
	"dropoff_y":       {"dropoff_y"},
	"passenger_count": {"passenger_count"},
	"fare_amount":     {"fare_amount"},
}

// Timestamp layouts tried in order when parsing the pickup column.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ReadCSV parses trip records from a headed CSV stream and returns them
// sorted by pickup time. Malformed rows are an error; the pipeline has no
// recovery contract for bad input.
func ReadCSV(r io.Reader) ([]trip.Record, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("source: failed to read header: %w", err)
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var records []trip.Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("source: failed to read row: %w", err)
		}

		rec, err := parseRecord(row, cols)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	slices.SortFunc(records, func(a, b trip.Record) int {
		return a.Pickup.Compare(b.Pickup)
	})
	return records, nil
}

func mapColumns(header []string) (map[string]int, error) {
	byName := make(map[string]int, len(header))
	for i, name := range header {
		byName[name] = i
	}

	cols := make(map[string]int, len(columnAliases))
	for field, aliases := range columnAliases {
		found := false
		for _, alias := range aliases {
			if i, ok := byName[alias]; ok {
				cols[field] = i
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("source: missing required column %q", field)
		}
	}
	return cols, nil
}

func parseRecord(row []string, cols map[string]int) (trip.Record, error) {
	pickup, err := parseTimestamp(row[cols["pickup"]])
	if err != nil {
		return trip.Record{}, err
	}

	floats := make(map[string]float64, 4)
	for _, field := range []string{"dropoff_x", "dropoff_y", "passenger_count", "fare_amount"} {
		v, err := strconv.ParseFloat(row[cols[field]], 64)
		if err != nil {
			return trip.Record{}, fmt.Errorf("source: bad value for %s: %w", field, err)
		}
		floats[field] = v
	}

	return trip.Record{
		Pickup:         pickup,
		DropoffX:       floats["dropoff_x"],
		DropoffY:       floats["dropoff_y"],
		PassengerCount: floats["passenger_count"],
		FareAmount:     floats["fare_amount"],
	}, nil
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("source: unrecognized timestamp %q", s)
}
