// Package csvfile reads activities from a Garmin Connect CSV export.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"souhrn/internal/core"
)

// Column headers of the Czech Garmin Connect export.
const (
	colType      = "Typ aktivity"
	colDate      = "Datum"
	colDuration  = "Čas"
	colDistance  = "Vzdálenost"
	colElevation = "Celkový výstup"
	colCalories  = "Kalorie (kcal)"
	colSteps     = "Kroky"
)

type Reader struct {
	path string
}

func New(path string) *Reader {
	return &Reader{path: path}
}

// ReadActivities implements source.ActivityReader. A missing file, missing
// required column or malformed CSV framing is an error; cell contents are
// not validated here.
func (r *Reader) ReadActivities(_ context.Context) ([]core.Activity, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read csv %s: %w", r.path, core.ErrNoActivities)
	}

	cols, err := indexColumns(records[0])
	if err != nil {
		return nil, fmt.Errorf("read csv %s: %w", r.path, err)
	}

	activities := make([]core.Activity, 0, len(records)-1)
	for _, rec := range records[1:] {
		activities = append(activities, core.Activity{
			Type:      get(rec, cols[colType]),
			Date:      get(rec, cols[colDate]),
			Duration:  get(rec, cols[colDuration]),
			Distance:  get(rec, cols[colDistance]),
			Elevation: get(rec, cols[colElevation]),
			Calories:  get(rec, cols[colCalories]),
			Steps:     get(rec, cols[colSteps]),
		})
	}
	return activities, nil
}

func indexColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, required := range []string{colType, colDate, colDuration, colDistance, colElevation, colCalories, colSteps} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing column %q in header %v", required, header)
		}
	}
	return cols, nil
}

func get(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return rec[i]
}
