package domain

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// minorDigits is the number of fractional digits kept for every amount.
const minorDigits = 2

var (
	maxMinor = decimal.NewFromInt(math.MaxInt64)
	minMinor = decimal.NewFromInt(math.MinInt64)
)

// Amount is a monetary value in integer minor units (e.g. cents, paise).
// JSON encodes it as a decimal number with two fractional digits.
type Amount int64

// ParseAmount parses a decimal string such as "1000" or "120.50".
// Extra fractional digits are rounded half away from zero.
func ParseAmount(raw string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return 0, NewValidationError("amount", "must be a decimal number")
	}
	return AmountFromDecimal(d)
}

// AmountFromDecimal converts a major-unit decimal into minor units. Values
// whose minor-unit form does not fit an int64 are rejected.
func AmountFromDecimal(d decimal.Decimal) (Amount, error) {
	minor := d.Shift(minorDigits).Round(0)
	if minor.GreaterThan(maxMinor) || minor.LessThan(minMinor) {
		return 0, NewValidationError("amount", "is out of range")
	}
	return Amount(minor.IntPart()), nil
}

// Decimal returns a in major units.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -minorDigits)
}

func (a Amount) String() string {
	return a.Decimal().StringFixed(minorDigits)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	v, err := ParseAmount(strings.Trim(string(b), `"`))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
