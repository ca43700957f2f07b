package usecase

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"affiliate-ledger/internal/core/commission"
	"affiliate-ledger/internal/core/domain"
	"affiliate-ledger/internal/core/port"
)

var maxClickDelta = decimal.NewFromInt(math.MaxInt64)

// AdjustBalance applies a manual override and appends its audit record in
// the same transaction. Commission adjustments move TotalEarnings and
// PendingPayouts together; click adjustments touch the click counter only.
func (u *AffiliateUseCase) AdjustBalance(ctx context.Context, in port.AdjustmentInput) (*domain.BalanceAdjustment, error) {
	if err := requireAffiliate(in.AffiliateID); err != nil {
		return nil, err
	}
	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		return nil, domain.NewValidationError("reason", "is required")
	}
	processedBy := strings.TrimSpace(in.ProcessedBy)
	if processedBy == "" {
		return nil, domain.NewValidationError("processed_by", "is required")
	}

	adj := &domain.BalanceAdjustment{
		ID:          u.newID(),
		AffiliateID: in.AffiliateID,
		Type:        in.Type,
		Reason:      reason,
		ProcessedBy: processedBy,
		CreatedAt:   u.now(),
	}
	switch in.Type {
	case domain.AdjustCommission:
		delta, err := domain.AmountFromDecimal(in.Amount)
		if err != nil {
			return nil, err
		}
		adj.Delta = int64(delta)
	case domain.AdjustClicks:
		if !in.Amount.IsInteger() {
			return nil, domain.NewValidationError("amount", "click adjustments must be whole numbers")
		}
		if in.Amount.GreaterThan(maxClickDelta) || in.Amount.LessThan(maxClickDelta.Neg()) {
			return nil, domain.NewValidationError("amount", "is out of range")
		}
		adj.Delta = in.Amount.IntPart()
	default:
		return nil, domain.NewValidationError("type", "must be commission or clicks")
	}
	if adj.Delta == 0 {
		return nil, domain.NewValidationError("amount", "must not be zero")
	}

	err := u.store.WithinTx(ctx, func(ctx context.Context, tx port.Tx) error {
		var err error
		if adj.Type == domain.AdjustCommission {
			err = tx.CreditCommission(ctx, adj.AffiliateID, domain.Amount(adj.Delta))
		} else {
			err = tx.AdjustClicks(ctx, adj.AffiliateID, adj.Delta)
			if errors.Is(err, domain.ErrInsufficientBalance) {
				err = domain.NewValidationError("amount", "click count would become negative")
			}
		}
		if err != nil {
			return err
		}
		return tx.InsertAdjustment(ctx, adj)
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("balance adjusted",
		slog.String("adjustment_id", adj.ID),
		slog.String("affiliate_id", adj.AffiliateID.String()),
		slog.String("type", string(adj.Type)),
		slog.Int64("delta", adj.Delta),
		slog.String("processed_by", adj.ProcessedBy),
	)
	return adj, nil
}

// ConfigureCommission replaces an affiliate's flat rate and tier table. The
// balance document is created with zero totals if it does not exist yet.
func (u *AffiliateUseCase) ConfigureCommission(ctx context.Context, in port.CommissionConfigInput) (*domain.AffiliateBalance, error) {
	if err := requireAffiliate(in.AffiliateID); err != nil {
		return nil, err
	}
	if in.CommissionRate.Valid {
		if err := commission.ValidateRate(in.CommissionRate.Decimal); err != nil {
			return nil, err
		}
	}
	if err := commission.ValidateTiers(in.Tiers); err != nil {
		return nil, err
	}
	tiers := commission.SortTiers(in.Tiers)

	var bal *domain.AffiliateBalance
	err := u.store.WithinTx(ctx, func(ctx context.Context, tx port.Tx) error {
		var err error
		bal, err = tx.UpsertCommissionConfig(ctx, in.AffiliateID, in.CommissionRate, tiers)
		return err
	})
	if err != nil {
		return nil, err
	}
	return bal, nil
}
