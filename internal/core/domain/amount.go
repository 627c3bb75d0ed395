package domain

import (
	"errors"
	"math"
	"regexp"
	"strconv"
)

// DefaultMaxInputValue is the default magnitude bound M of the amount field.
const DefaultMaxInputValue = 1_000_000_000

var amountTextRe = regexp.MustCompile(`^[0-9]*(\.[0-9]*)?$`)

// AmountText is the canonical text of the amount field: digits with at
// most one decimal point. "" means no amount entered.
type AmountText string

// Valid reports whether t is well-formed amount text.
func (t AmountText) Valid() bool {
	return amountTextRe.MatchString(string(t))
}

// Parse returns the numeric value of t. "" and "." do not parse.
// Digit runs too long for float64 parse to +Inf, which is above any bound.
func (t AmountText) Parse() (float64, bool) {
	if !t.Valid() {
		return math.NaN(), false
	}
	v, err := strconv.ParseFloat(string(t), 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return v, true
		}
		return math.NaN(), false
	}
	return v, true
}

// Exceeds reports whether t parses to a value above max.
func (t AmountText) Exceeds(max float64) bool {
	v, ok := t.Parse()
	return ok && v > max
}

// FormatBound renders a bound the way it is written back into the field.
func FormatBound(max float64) AmountText {
	return AmountText(strconv.FormatFloat(max, 'f', -1, 64))
}

func (t AmountText) String() string {
	return string(t)
}
