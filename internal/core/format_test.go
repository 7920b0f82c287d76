package core

import "testing"

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in       float64
		decimals int
		out      string
	}{
		{1234567, 0, "1 234 567"},
		{1234.56, 1, "1 234.6"}, // rounds at the formatting step
		{999.9, 0, "999"},       // integers truncate
		{0, 0, "0"},
		{12.0, 1, "12.0"},
		{1500, 0, "1 500"},
		{1234567.891, 2, "1 234 567.89"},
	}
	for _, tc := range cases {
		if got := FormatNumber(tc.in, tc.decimals); got != tc.out {
			t.Fatalf("FormatNumber(%v, %d) expected %q, got %q", tc.in, tc.decimals, tc.out, got)
		}
	}
}

func TestFormatTime(t *testing.T) {
	cases := []struct {
		in  float64
		out string
	}{
		{5400, "1h 30m"},
		{59, "0h 0m"},
		{3600, "1h 0m"},
		{4800, "1h 20m"},
		{359999, "99h 59m"},
	}
	for _, tc := range cases {
		if got := FormatTime(tc.in); got != tc.out {
			t.Fatalf("FormatTime(%v) expected %q, got %q", tc.in, tc.out, got)
		}
	}
}
