package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrInvalidAmount indicates a monetary string that could not be parsed.
var ErrInvalidAmount = errors.New("invalid amount")

// Money is a currency amount in minor units (cents). Keeping amounts in
// integer cents avoids floating-point drift in sums and comparisons.
type Money int64

// ParseMoney converts a decimal string to Money with half-up rounding on the
// third decimal place. Both dot and comma decimal separators are accepted,
// but a comma only with up to two digits after it: "12,345" reads as a
// thousands separator, not as 12.345, and is rejected.
//
//	ParseMoney("12.34") -> 1234
//	ParseMoney("12,34") -> 1234
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("%w: signed values are not accepted", ErrInvalidAmount)
	}
	if i := strings.IndexByte(s, ','); i >= 0 {
		if strings.Contains(s, ".") || strings.Contains(s[i+1:], ",") || len(s)-i-1 > 2 {
			return 0, fmt.Errorf("%w: comma is only a decimal separator with up to two digits", ErrInvalidAmount)
		}
		s = s[:i] + "." + s[i+1:]
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
	for _, r := range intPart + fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}

	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	const maxSafe = (1<<63 - 1) / 100
	if iv > maxSafe {
		return 0, ErrInvalidAmount
	}

	var fracCents int64
	if len(fracPart) > 0 {
		fracCents = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			fracCents += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}

	return Money(iv*100 + fracCents), nil
}

// Float64 returns the major-unit value for display and percentage math.
// Use Money itself for arithmetic.
func (m Money) Float64() float64 {
	return float64(m) / 100.0
}

// String renders the amount with two decimal places, e.g. "12.34".
func (m Money) String() string {
	v := int64(m)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
