package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"affiliate-ledger/internal/core/domain"
	"affiliate-ledger/internal/core/port"
)

// DefaultPayoutMethod is recorded when a request names no method.
const DefaultPayoutMethod = "manual"

// RequestPayout drives a payout through requested -> verifying ->
// completed|rejected. The balance check, the debit and the payout record are
// one transaction: a concurrent payout that drains the balance first makes
// this one fail with domain.ErrInsufficientBalance and nothing is written.
func (u *AffiliateUseCase) RequestPayout(ctx context.Context, in port.PayoutInput) (*domain.PayoutRecord, error) {
	state := domain.PayoutRequested
	if err := validatePayout(in); err != nil {
		u.rejectPayout(state, in, err)
		return nil, err
	}

	state, err := state.Transition(domain.PayoutVerifying)
	if err != nil {
		return nil, err
	}

	now := u.now()
	rec := &domain.PayoutRecord{
		ID:            u.newID(),
		AffiliateID:   in.AffiliateID,
		Amount:        in.Amount,
		Currency:      u.currencyOr(in.Currency),
		Status:        domain.PayoutCompleted,
		Method:        strings.TrimSpace(in.Method),
		TransactionID: strings.TrimSpace(in.TransactionID),
		Notes:         in.Notes,
		ProcessedBy:   strings.TrimSpace(in.ProcessedBy),
		CreatedAt:     now,
		CompletedAt:   &now,
	}
	if rec.Method == "" {
		rec.Method = DefaultPayoutMethod
	}

	err = u.store.WithinTx(ctx, func(ctx context.Context, tx port.Tx) error {
		bal, err := tx.GetBalance(ctx, in.AffiliateID)
		if err != nil {
			return err
		}
		if bal.PendingPayouts < in.Amount {
			return domain.ErrInsufficientBalance
		}
		if err = tx.DebitForPayout(ctx, in.AffiliateID, in.Amount); err != nil {
			return err
		}
		return tx.InsertPayout(ctx, rec)
	})
	if err != nil {
		u.rejectPayout(state, in, err)
		return nil, err
	}

	if _, err = state.Transition(domain.PayoutDone); err != nil {
		return nil, err
	}
	u.logger.Info("payout completed",
		slog.String("payout_id", rec.ID),
		slog.String("affiliate_id", rec.AffiliateID.String()),
		slog.String("amount", rec.Amount.String()),
		slog.String("transaction_id", rec.TransactionID),
	)
	return rec, nil
}

func validatePayout(in port.PayoutInput) error {
	if err := requireAffiliate(in.AffiliateID); err != nil {
		return err
	}
	if in.Amount <= 0 {
		return domain.NewValidationError("amount", "must be positive")
	}
	return nil
}

func (u *AffiliateUseCase) rejectPayout(from domain.PayoutState, in port.PayoutInput, cause error) {
	if _, err := from.Transition(domain.PayoutRejected); err != nil {
		return
	}
	level := slog.LevelInfo
	if errors.Is(cause, domain.ErrPersistence) {
		level = slog.LevelError
	}
	u.logger.Log(context.Background(), level, "payout rejected",
		slog.String("affiliate_id", in.AffiliateID.String()),
		slog.String("amount", in.Amount.String()),
		slog.String("transaction_id", in.TransactionID),
		slog.String("from_state", string(from)),
		slog.Any("reason", cause),
	)
}
