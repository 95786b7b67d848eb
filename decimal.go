package goofx

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Radix points used around the world. OFX amounts never use digit grouping, so at most one
// of them may appear in a value.
const (
	radixDot        = '.'
	radixComma      = ','
	radixApostrophe = '\''
	radixMomayyez   = '٫'
)

var radixPoints = []rune{radixDot, radixComma, radixApostrophe, radixMomayyez}

// DecodeDecimal parses an OFX amount. The radix point is inferred from the value itself and
// never from the document language or the process locale: institutions sharing a <LANGUAGE>
// disagree on it.
//
//	"-666.66"  -> -666.66
//	"24783,31" -> 24783.31
//	"1.2.3"    -> error, repeated radix point
//	"1,2.3"    -> error, mixed radix points
func DecodeDecimal(s string) (decimal.Decimal, error) {
	var found []rune
	for _, r := range radixPoints {
		first, last := strings.IndexRune(s, r), strings.LastIndex(s, string(r))
		if first != last {
			return decimal.Zero, decimalError(s, fmt.Errorf("radix point %q appears more than once", r))
		}
		if first >= 0 {
			found = append(found, r)
		}
	}
	if len(found) > 1 {
		return decimal.Zero, decimalError(s, fmt.Errorf("multiple radix points %q", string(found)))
	}

	value := s
	if len(found) == 1 {
		switch found[0] {
		case radixDot:
		case radixComma:
			value = strings.Replace(s, ",", ".", 1)
		case radixApostrophe:
			return decimal.Zero, decimalError(s, fmt.Errorf("apostrophe radix point: %w", ErrNotImplemented))
		case radixMomayyez:
			return decimal.Zero, decimalError(s, fmt.Errorf("momayyez radix point: %w", ErrNotImplemented))
		}
	}
	if !isPlainNumber(value) {
		return decimal.Zero, decimalError(s, nil)
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, decimalError(s, err)
	}
	return d, nil
}

// isPlainNumber reports whether s is an optionally signed run of digits with at most one dot,
// which keeps exponents and stray characters out of amounts.
func isPlainNumber(s string) bool {
	if s != "" && (s[0] == '-' || s[0] == '+') {
		s = s[1:]
	}
	digits := 0
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			digits++
		case s[i] == '.':
		default:
			return false
		}
	}
	return digits > 0
}

func decimalError(s string, err error) error {
	return &ScalarFormatError{Kind: "decimal", Value: s, Err: err}
}
