package configs

import (
	"github.com/rotisserie/eris"
	"github.com/shopspring/decimal"

	"affiliate-ledger/internal/core/commission"
)

// Ledger holds money defaults.
type Ledger struct {
	// DefaultCurrency is recorded when a conversion or payout names none.
	DefaultCurrency string `env:"DEFAULT_CURRENCY" envDefault:"USD"`
	// DefaultCommissionRate applies to affiliates without a flat rate or
	// tiers.
	DefaultCommissionRate decimal.Decimal `env:"DEFAULT_COMMISSION_RATE" envDefault:"0.10"`
}

// Validate checks the default rate obeys the same bounds as affiliate rates.
func (c Ledger) Validate() error {
	if err := commission.ValidateRate(c.DefaultCommissionRate); err != nil {
		return eris.Wrap(err, "default commission rate")
	}
	if len(c.DefaultCurrency) != 3 {
		return eris.New("default currency must be a three letter code")
	}
	return nil
}
