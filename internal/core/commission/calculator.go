// Package commission turns attributed revenue into commission amounts.
package commission

import (
	"sort"

	"github.com/shopspring/decimal"

	"affiliate-ledger/internal/core/domain"
)

// RateScale is the number of fractional digits a rate may carry; storage
// keeps rates as NUMERIC(6, 4).
const RateScale = 4

// DefaultRate applies when an affiliate has neither tiers nor a flat rate.
var DefaultRate = decimal.RequireFromString("0.10")

// Calculator computes commission from an affiliate's configuration.
type Calculator struct {
	fallback decimal.Decimal
}

// NewCalculator returns a Calculator that falls back to rate when an
// affiliate has no commission configuration.
func NewCalculator(rate decimal.Decimal) Calculator {
	return Calculator{fallback: rate}
}

// Rate selects the rate for b. Tiers are matched against lifetime earnings:
// the tier with the greatest MinRevenue not above TotalEarnings wins, and the
// lowest tier applies when none qualifies.
func (c Calculator) Rate(b domain.AffiliateBalance) decimal.Decimal {
	if len(b.CommissionTiers) > 0 {
		tiers := SortTiers(b.CommissionTiers)
		rate := tiers[0].Rate
		for _, t := range tiers[1:] {
			if t.MinRevenue > b.TotalEarnings {
				break
			}
			rate = t.Rate
		}
		return rate
	}
	if b.CommissionRate.Valid {
		return b.CommissionRate.Decimal
	}
	return c.fallback
}

// Calculate returns the commission earned on amount, rounded to the minor
// unit.
func (c Calculator) Calculate(b domain.AffiliateBalance, amount domain.Amount) domain.Amount {
	// Rates are within [0, 1], so the product never exceeds amount.
	commission, _ := domain.AmountFromDecimal(amount.Decimal().Mul(c.Rate(b)))
	return commission
}

// ValidateOverride checks a partner-supplied commission before it is used
// verbatim.
func ValidateOverride(override domain.Amount) error {
	if override < 0 {
		return domain.NewValidationError("commission_override", "must not be negative")
	}
	return nil
}

// SortTiers returns a copy of tiers ordered by MinRevenue ascending.
func SortTiers(tiers []domain.CommissionTier) []domain.CommissionTier {
	out := append([]domain.CommissionTier(nil), tiers...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].MinRevenue < out[j].MinRevenue })
	return out
}

// ValidateTiers checks rates are within [0, 1], thresholds are non-negative
// and unique.
func ValidateTiers(tiers []domain.CommissionTier) error {
	seen := make(map[domain.Amount]struct{}, len(tiers))
	for _, t := range tiers {
		if t.MinRevenue < 0 {
			return domain.NewValidationError("commission_tiers.min_revenue", "must not be negative")
		}
		if err := ValidateRate(t.Rate); err != nil {
			return err
		}
		if _, dup := seen[t.MinRevenue]; dup {
			return domain.NewValidationError("commission_tiers.min_revenue", "must be unique")
		}
		seen[t.MinRevenue] = struct{}{}
	}
	return nil
}

// ValidateRate checks 0 <= rate <= 1 with at most RateScale decimals.
func ValidateRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return domain.NewValidationError("commission_rate", "must be between 0 and 1")
	}
	if !rate.Equal(rate.Round(RateScale)) {
		return domain.NewValidationError("commission_rate", "must have at most 4 decimal places")
	}
	return nil
}
