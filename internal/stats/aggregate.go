// Package stats reduces activity rows into the yearly Summary.
package stats

import (
	"context"
	"fmt"
	"strings"
	"time"

	"souhrn/internal/core"
	"souhrn/internal/source"
)

// Aggregate loads every activity from the reader and computes the Summary.
// yearFilter == 0 keeps all rows and stamps the summary with the current
// calendar year; otherwise only rows dated in that year count and the
// summary carries the filter year.
//
// An empty (post-filter) dataset is an error: the most-frequent lookup has
// no defined empty-state output. With a filter active, a row whose date
// cannot be parsed is also an error.
func Aggregate(ctx context.Context, reader source.ActivityReader, yearFilter int) (core.Summary, error) {
	activities, err := reader.ReadActivities(ctx)
	if err != nil {
		return core.Summary{}, fmt.Errorf("load activities: %w", err)
	}

	if yearFilter != 0 {
		filtered := activities[:0:0]
		for _, a := range activities {
			date, err := core.ParseDate(a.Date)
			if err != nil {
				return core.Summary{}, fmt.Errorf("activity date %q: %w", a.Date, err)
			}
			if date.Year() == yearFilter {
				filtered = append(filtered, a)
			}
		}
		activities = filtered
	}

	if len(activities) == 0 {
		return core.Summary{}, core.ErrNoActivities
	}

	s := core.Summary{
		Year:            yearFilter,
		TotalActivities: len(activities),
	}
	if s.Year == 0 {
		s.Year = time.Now().Year()
	}

	counts := map[string]int{}
	for _, a := range activities {
		if counts[a.Type] == 0 {
			s.Breakdown = append(s.Breakdown, core.TypeCount{Type: a.Type})
		}
		counts[a.Type]++

		s.TotalSeconds += core.ParseDuration(a.Duration)
		s.TotalDistanceKm += distanceKm(a)
		s.TotalElevation += core.ParseNumber(a.Elevation)
		s.TotalCalories += core.ParseNumber(a.Calories)
		s.TotalSteps += core.ParseNumber(a.Steps)
	}

	// Breakdown keeps first-seen input order; ties on the maximum count
	// therefore resolve to the type seen first.
	for i := range s.Breakdown {
		s.Breakdown[i].Count = counts[s.Breakdown[i].Type]
		if s.Breakdown[i].Count > s.MostFrequentCount {
			s.MostFrequentType = s.Breakdown[i].Type
			s.MostFrequentCount = s.Breakdown[i].Count
		}
	}

	return s, nil
}

// distanceKm parses the distance cell and normalizes the unit: swimming
// rows are recorded in meters, everything else already in kilometers.
func distanceKm(a core.Activity) float64 {
	d := core.ParseNumber(a.Distance)
	activityType := strings.ToLower(a.Type)
	if strings.Contains(activityType, "plav") || strings.Contains(activityType, "swim") {
		return d / 1000
	}
	return d
}
