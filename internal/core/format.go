package core

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatNumber renders a value with a space as the thousands separator,
// the fixed output convention of the summary image regardless of input
// locale. With decimals == 0 the value is truncated, matching integer
// display of summed cells; with decimals > 0 it is rounded.
//
// Examples:
//
//	FormatNumber(1234567, 0) -> "1 234 567"
//	FormatNumber(1234.56, 1) -> "1 234.6"
func FormatNumber(v float64, decimals int) string {
	if decimals <= 0 {
		return groupThousands(strconv.FormatInt(int64(v), 10))
	}
	formatted := strconv.FormatFloat(v, 'f', decimals, 64)
	intPart, fracPart, _ := strings.Cut(formatted, ".")
	return groupThousands(intPart) + "." + fracPart
}

// FormatTime renders total seconds as "<H>h <M>m", minutes truncated.
//
// Examples:
//
//	FormatTime(5400) -> "1h 30m"
//	FormatTime(59)   -> "0h 0m"
func FormatTime(totalSeconds float64) string {
	hours := int(totalSeconds) / 3600
	minutes := (int(totalSeconds) % 3600) / 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

func groupThousands(digits string) string {
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
