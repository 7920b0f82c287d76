package stats

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"souhrn/internal/core"
	"souhrn/internal/source/memory"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAggregate(t *testing.T) {
	store := memory.New(
		core.Activity{Type: "Běh", Date: "2023-11-05 10:06:21", Duration: "1:00:00", Distance: "10.00", Elevation: "120", Calories: "--", Steps: "9 500"},
		core.Activity{Type: "Plavání, bazén", Date: "2023-07-12 08:30:00", Duration: "0:20:00", Distance: "2000", Elevation: "--", Calories: "300", Steps: "--"},
		core.Activity{Type: "Chůze", Date: "2023-01-02 17:45:10", Duration: "0:00:59", Distance: "", Elevation: "15", Calories: "1.200", Steps: "5.972"},
	)

	s, err := Aggregate(context.Background(), store, 0)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	if s.TotalActivities != 3 {
		t.Errorf("TotalActivities = %d, want 3", s.TotalActivities)
	}
	if !almostEqual(s.TotalDistanceKm, 12.0) {
		t.Errorf("TotalDistanceKm = %v, want 12.0", s.TotalDistanceKm)
	}
	if core.FormatTime(s.TotalSeconds) != "1h 20m" {
		t.Errorf("total time = %q, want 1h 20m", core.FormatTime(s.TotalSeconds))
	}
	if !almostEqual(s.TotalElevation, 135) {
		t.Errorf("TotalElevation = %v, want 135", s.TotalElevation)
	}
	if !almostEqual(s.TotalCalories, 1500) { // "--" counts as zero
		t.Errorf("TotalCalories = %v, want 1500", s.TotalCalories)
	}
	if !almostEqual(s.TotalSteps, 15472) {
		t.Errorf("TotalSteps = %v, want 15472", s.TotalSteps)
	}
	if s.Year != time.Now().Year() {
		t.Errorf("Year = %d, want current year %d", s.Year, time.Now().Year())
	}
}

func TestAggregateSwimDistanceInMeters(t *testing.T) {
	store := memory.New(
		core.Activity{Type: "Plavání", Date: "2023-07-12", Duration: "0:20:00", Distance: "1500"},
	)
	s, err := Aggregate(context.Background(), store, 0)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if !almostEqual(s.TotalDistanceKm, 1.5) {
		t.Errorf("TotalDistanceKm = %v, want 1.5", s.TotalDistanceKm)
	}
}

func TestAggregateYearFilter(t *testing.T) {
	store := memory.New(
		core.Activity{Type: "Běh", Date: "2023-03-01 09:00:00", Duration: "0:30:00"},
		core.Activity{Type: "Běh", Date: "2024-03-01 09:00:00", Duration: "0:30:00"},
		core.Activity{Type: "Chůze", Date: "2023-05-01", Duration: "0:10:00"},
	)

	s, err := Aggregate(context.Background(), store, 2023)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if s.TotalActivities != 2 {
		t.Errorf("TotalActivities = %d, want 2", s.TotalActivities)
	}
	if s.Year != 2023 {
		t.Errorf("Year = %d, want 2023", s.Year)
	}
}

func TestAggregateYearFilterBadDate(t *testing.T) {
	store := memory.New(
		core.Activity{Type: "Běh", Date: "yesterday", Duration: "0:30:00"},
	)
	if _, err := Aggregate(context.Background(), store, 2023); !errors.Is(err, core.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestAggregateMostFrequent(t *testing.T) {
	store := memory.New(
		core.Activity{Type: "Chůze", Date: "2023-01-01"},
		core.Activity{Type: "Běh", Date: "2023-01-02"},
		core.Activity{Type: "Běh", Date: "2023-01-03"},
		core.Activity{Type: "Chůze", Date: "2023-01-04"},
	)
	s, err := Aggregate(context.Background(), store, 0)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	// tie between Chůze and Běh resolves to the type seen first
	if s.MostFrequentType != "Chůze" || s.MostFrequentCount != 2 {
		t.Errorf("most frequent = %q (%d), want Chůze (2)", s.MostFrequentType, s.MostFrequentCount)
	}
	want := []core.TypeCount{{Type: "Chůze", Count: 2}, {Type: "Běh", Count: 2}}
	if len(s.Breakdown) != len(want) {
		t.Fatalf("breakdown length = %d, want %d", len(s.Breakdown), len(want))
	}
	for i := range want {
		if s.Breakdown[i] != want[i] {
			t.Errorf("breakdown[%d] = %+v, want %+v", i, s.Breakdown[i], want[i])
		}
	}
}

func TestAggregateEmptyDataset(t *testing.T) {
	if _, err := Aggregate(context.Background(), memory.New(), 0); !errors.Is(err, core.ErrNoActivities) {
		t.Fatalf("expected ErrNoActivities, got %v", err)
	}
	store := memory.New(
		core.Activity{Type: "Běh", Date: "2022-03-01 09:00:00"},
	)
	if _, err := Aggregate(context.Background(), store, 2023); !errors.Is(err, core.ErrNoActivities) {
		t.Fatalf("expected ErrNoActivities after filter, got %v", err)
	}
}
