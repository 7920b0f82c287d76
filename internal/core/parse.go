// Package core provides the activity domain model and the locale-tolerant
// numeric parsing used to read Garmin Connect CSV cells.
//
// The export mixes Czech and US number conventions in the same file, so the
// parser has to decide per cell whether a dot or comma is a thousands
// separator or a decimal mark. Cells that resist every heuristic count as
// zero; a malformed cell must never abort aggregation.
package core

import (
	"regexp"
	"strconv"
	"strings"
)

const placeholder = "--"

var (
	dotGrouped   = regexp.MustCompile(`^\d{1,3}(\.\d{3})+$`)
	commaGrouped = regexp.MustCompile(`^\d{1,3}(,\d{3})+$`)
)

// ParseDuration converts a duration cell ("H:M:S", "H:M:S.s" or "M:S") to
// total seconds. Dots are folded into colons before splitting, so the
// fractional part of "H:M:S.s" becomes a fourth segment and is dropped.
// Empty, placeholder and malformed cells yield 0.
//
// Examples:
//
//	ParseDuration("1:30:00")   -> 5400
//	ParseDuration("1:02:03.5") -> 3723
//	ParseDuration("45:30")     -> 2730
//	ParseDuration("--")        -> 0
func ParseDuration(s string) float64 {
	s = trimQuotes(s)
	if s == "" || s == placeholder {
		return 0
	}
	parts := strings.Split(strings.ReplaceAll(s, ".", ":"), ":")
	switch {
	case len(parts) >= 3:
		hours, err1 := strconv.Atoi(parts[0])
		minutes, err2 := strconv.Atoi(parts[1])
		seconds, err3 := strconv.ParseFloat(parts[2], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			return 0
		}
		return float64(hours)*3600 + float64(minutes)*60 + seconds
	case len(parts) == 2:
		minutes, err1 := strconv.Atoi(parts[0])
		seconds, err2 := strconv.ParseFloat(parts[1], 64)
		if err1 != nil || err2 != nil {
			return 0
		}
		return float64(minutes)*60 + seconds
	}
	return 0
}

// ParseNumber converts a numeric cell to a float64, resolving the
// thousands/decimal separator ambiguity:
//
//   - quotes and (no-break) space separators are stripped first
//   - with both "." and "," present, the later one is the decimal mark
//   - "." or "," grouping digits in threes ("1.234.567", "2,738") is a
//     thousands separator and is stripped
//   - any remaining "," is a decimal mark
//
// Empty, placeholder and still-unparsable cells yield 0.
//
// Examples:
//
//	ParseNumber("5.972")   -> 5972
//	ParseNumber("1,200.5") -> 1200.5
//	ParseNumber("1.200,5") -> 1200.5
//	ParseNumber("3,5")     -> 3.5
func ParseNumber(s string) float64 {
	s = trimQuotes(s)
	if s == "" || s == placeholder {
		return 0
	}
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\u00a0", "")

	dot := strings.LastIndex(s, ".")
	comma := strings.LastIndex(s, ",")
	switch {
	case dot >= 0 && comma >= 0:
		if dot > comma {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		}
	case dotGrouped.MatchString(s):
		s = strings.ReplaceAll(s, ".", "")
	case commaGrouped.MatchString(s):
		s = strings.ReplaceAll(s, ",", "")
	default:
		s = strings.ReplaceAll(s, ",", ".")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func trimQuotes(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"`)
}
