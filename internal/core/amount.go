// Package core holds the expense domain types and amount parsing.
//
// Amounts are integers in the smallest currency unit. User input arrives as
// free text, so parsing truncates any fractional part and rejects anything
// non-numeric with ErrInvalidAmount rather than letting a sentinel value
// leak into aggregation.
package core

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseAmount coerces user input to an integer amount.
//
// It accepts plain integers ("1000"), decimal text with dot or comma
// separators ("1000.75" / "1000,75", fraction truncated toward zero), and
// an optional leading minus sign. Anything else fails with ErrInvalidAmount.
//
// Examples:
//
//	ParseAmount("1000")    -> 1000, nil
//	ParseAmount(" 12.99 ") -> 12, nil
//	ParseAmount("abc")     -> 0, ErrInvalidAmount
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	} else {
		s = strings.TrimPrefix(s, "+")
	}
	if s == "" || s == "." {
		return 0, ErrInvalidAmount
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}

	v, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	// Fractional digits truncate toward zero; only the integer part counts.
	if neg {
		v = -v
	}
	return v, nil
}
