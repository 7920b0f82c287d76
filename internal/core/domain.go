package core

import (
	"errors"
	"time"
)

type (
	// Activity is one logged session as exported by Garmin Connect.
	// Measured fields stay raw text until aggregation: the export mixes
	// locale conventions and placeholder cells, so parsing is deferred to
	// the numeric parser which defaults bad cells to zero.
	Activity struct {
		Type      string // "Typ aktivity"
		Date      string // "Datum"
		Duration  string // "Čas"
		Distance  string // "Vzdálenost" (meters for swimming, km otherwise)
		Elevation string // "Celkový výstup"
		Calories  string // "Kalorie (kcal)"
		Steps     string // "Kroky"
	}

	// TypeCount is one entry of the activity breakdown, in first-seen order.
	TypeCount struct {
		Type  string
		Count int
	}

	// Summary holds the aggregated totals for one target year.
	Summary struct {
		Year              int
		TotalActivities   int
		MostFrequentType  string
		MostFrequentCount int
		Breakdown         []TypeCount
		TotalSeconds      float64
		TotalDistanceKm   float64
		TotalElevation    float64
		TotalCalories     float64
		TotalSteps        float64
	}
)

var (
	ErrNoActivities = errors.New("no activities in dataset")
	ErrInvalidDate  = errors.New("invalid activity date")
)

// dateLayouts covers the date formats seen in Czech Garmin Connect exports.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2.1.2006",
}

// ParseDate parses an activity date cell. The year filter is the only
// consumer, so a date that cannot be placed in a year is an error rather
// than a zero default.
func ParseDate(s string) (time.Time, error) {
	s = trimQuotes(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}
