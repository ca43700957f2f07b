package commission

import (
	"sort"

	"github.com/shopspring/decimal"

	"affiliate-ledger/internal/core/domain"
)

// Apportion splits total across credits by weight using the largest
// remainder method, so the shares always add up to total exactly.
func Apportion(total domain.Amount, credits []domain.Credit) []domain.Amount {
	shares := make([]domain.Amount, len(credits))
	if len(credits) == 0 {
		return shares
	}

	type remainder struct {
		idx  int
		frac decimal.Decimal
	}
	rems := make([]remainder, len(credits))
	whole := decimal.NewFromInt(int64(total))
	var assigned domain.Amount
	for i, c := range credits {
		exact := whole.Mul(decimal.NewFromFloat(c.Weight))
		floor := exact.Floor()
		shares[i] = domain.Amount(floor.IntPart())
		assigned += shares[i]
		rems[i] = remainder{idx: i, frac: exact.Sub(floor)}
	}

	sort.SliceStable(rems, func(i, j int) bool { return rems[i].frac.GreaterThan(rems[j].frac) })
	for left, i := total-assigned, 0; left > 0; left, i = left-1, i+1 {
		shares[rems[i%len(rems)].idx]++
	}
	return shares
}
