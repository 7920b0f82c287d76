package core

import "testing"

func TestParseDuration(t *testing.T) {
	cases := []struct {
		in  string
		out float64
	}{
		{"1:30:00", 5400},
		{"0:00:59", 59},
		{"12:05:07", 43507},
		{"1:02:03.5", 3723}, // fractional second dropped
		{"45:30", 2730},
		{`"2:15:00"`, 8100},
		{"--", 0},
		{"", 0},
		{"abc", 0},
		{"1:xx:00", 0},
		{"99", 0},
	}
	for _, tc := range cases {
		if got := ParseDuration(tc.in); got != tc.out {
			t.Fatalf("%q expected %v, got %v", tc.in, tc.out, got)
		}
	}
}

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in  string
		out float64
	}{
		{"5.972", 5972},       // dot-grouped thousands
		{"1.234.567", 1234567},
		{"2,738", 2738},       // comma-grouped thousands
		{"1,234,567", 1234567},
		{"1,200.5", 1200.5},   // both separators, dot later
		{"1.200,5", 1200.5},   // both separators, comma later
		{"3,5", 3.5},          // decimal comma
		{"12.34", 12.34},
		{`"1 500"`, 1500},     // space thousands separator
		{"1\u00a0500", 1500},   // no-break space
		{"42", 42},
		{"--", 0},
		{"", 0},
		{"abc", 0},
		{"1,2,3", 0},
	}
	for _, tc := range cases {
		if got := ParseNumber(tc.in); got != tc.out {
			t.Fatalf("%q expected %v, got %v", tc.in, tc.out, got)
		}
	}
}

func TestParseDate(t *testing.T) {
	for _, in := range []string{"2023-11-05 10:06:21", "2023-11-05", "5.11.2023"} {
		d, err := ParseDate(in)
		if err != nil {
			t.Fatalf("%q expected ok, got %v", in, err)
		}
		if d.Year() != 2023 {
			t.Fatalf("%q expected year 2023, got %d", in, d.Year())
		}
	}
	if _, err := ParseDate("yesterday"); err == nil {
		t.Fatalf("expected error for unparsable date")
	}
}
