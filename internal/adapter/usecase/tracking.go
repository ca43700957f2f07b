package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"strings"
	"time"

	"affiliate-ledger/internal/core/attribution"
	"affiliate-ledger/internal/core/commission"
	"affiliate-ledger/internal/core/domain"
	"affiliate-ledger/internal/core/port"
)

// RecordClick classifies the request and appends the click to the ledger.
// Filtered clicks are kept for observability but do not count towards the
// affiliate's click total and are never attributed.
func (u *AffiliateUseCase) RecordClick(ctx context.Context, in port.ClickInput) (*port.ClickResult, error) {
	if err := requireAffiliate(in.AffiliateID); err != nil {
		return nil, err
	}
	campaignID := strings.TrimSpace(in.CampaignID)
	if campaignID == "" {
		return nil, domain.NewValidationError("campaign_id", "is required")
	}

	verdict := u.classifier.Classify(in.Signals)
	click := &domain.ClickEvent{
		ClickID:      domain.ClickID(u.newID()),
		AffiliateID:  in.AffiliateID,
		CampaignID:   campaignID,
		VisitorID:    visitorKey(in.Signals),
		IPAddress:    strings.TrimSpace(in.Signals.IPAddress),
		UserAgent:    in.Signals.UserAgent,
		Referrer:     in.Signals.Referrer,
		CreatedAt:    u.now(),
		Filtered:     verdict.Filtered,
		FilterReason: verdict.Reason,
		Flags:        verdict.Flags,
	}

	err := u.store.WithinTx(ctx, func(ctx context.Context, tx port.Tx) error {
		if _, err := tx.GetBalance(ctx, click.AffiliateID); err != nil {
			return err
		}
		if err := tx.InsertClick(ctx, click); err != nil {
			return err
		}
		if click.Filtered {
			return nil
		}
		return tx.AdjustClicks(ctx, click.AffiliateID, 1)
	})
	if err != nil {
		return nil, err
	}

	if click.Filtered {
		u.logger.Info("click filtered",
			slog.String("click_id", click.ClickID.String()),
			slog.String("affiliate_id", click.AffiliateID.String()),
			slog.String("reason", string(click.FilterReason)),
		)
	} else if len(click.Flags) > 0 {
		u.logger.Debug("click accepted with audit flags",
			slog.String("click_id", click.ClickID.String()),
			slog.Any("flags", click.Flags),
		)
	}
	return &port.ClickResult{
		ClickID:      click.ClickID,
		VisitorID:    click.VisitorID,
		Filtered:     click.Filtered,
		FilterReason: click.FilterReason,
	}, nil
}

// RecordConversion converts a click with an advertiser-reported sale. The
// resulting revenue is treated as succeeded.
func (u *AffiliateUseCase) RecordConversion(ctx context.Context, in port.ConversionInput) (*port.ConversionResult, error) {
	return u.settle(ctx, settlement{
		clickID:       in.ClickID,
		revenue:       in.RevenueAmount,
		currency:      in.Currency,
		transactionID: strings.TrimSpace(in.TransactionID),
		status:        domain.RevenueSucceeded,
		source:        domain.SourceConversion,
	})
}

// SettleByClickID handles a partner postback. The click id is the
// idempotency key: a second delivery finds the click converted and fails
// with domain.ErrAlreadyProcessed.
func (u *AffiliateUseCase) SettleByClickID(ctx context.Context, in port.PostbackInput) (*port.ConversionResult, error) {
	status, err := domain.ParseStatusHint(in.StatusHint)
	if err != nil {
		return nil, err
	}
	return u.settle(ctx, settlement{
		clickID:       in.ClickID,
		revenue:       in.Amount,
		currency:      in.Currency,
		transactionID: strings.TrimSpace(in.TransactionID),
		status:        status,
		source:        domain.SourcePostback,
		override:      in.CommissionOverride,
	})
}

type settlement struct {
	clickID       domain.ClickID
	revenue       domain.Amount
	currency      string
	transactionID string
	status        domain.RevenueStatus
	source        domain.RevenueSource
	override      *domain.Amount
}

// settle runs attribution, commission and balance credit for one conversion
// in a single transaction. The referenced click is marked converted even on
// an attribution miss, so a retried delivery is recognised as a duplicate.
func (u *AffiliateUseCase) settle(ctx context.Context, s settlement) (*port.ConversionResult, error) {
	if s.clickID == "" {
		return nil, domain.NewValidationError("click_id", "is required")
	}
	if s.revenue < 0 {
		return nil, domain.NewValidationError("amount", "must not be negative")
	}
	if s.override != nil {
		if err := commission.ValidateOverride(*s.override); err != nil {
			return nil, err
		}
	}
	s.currency = u.currencyOr(s.currency)
	settings := u.AttributionSettings(ctx)
	now := u.now()

	var res *port.ConversionResult
	err := u.store.WithinTx(ctx, func(ctx context.Context, tx port.Tx) error {
		click, err := tx.GetClick(ctx, s.clickID)
		if err != nil {
			return err
		}
		if click.Converted {
			return domain.ErrAlreadyProcessed
		}

		history, err := tx.ClickHistory(ctx, click.CampaignID, click.VisitorID, settings.Window.Start(now))
		if err != nil {
			return err
		}
		sig := attribution.Signal{ClickID: click.ClickID, AffiliateID: click.AffiliateID}
		credits := attribution.Resolve(sig, history, settings, now)

		conv := &domain.ConversionEvent{
			ClickID:       click.ClickID,
			AffiliateID:   click.AffiliateID,
			CampaignID:    click.CampaignID,
			RevenueAmount: s.revenue,
			Currency:      s.currency,
			TransactionID: s.transactionID,
			ConvertedAt:   now,
			Click: domain.ClickSnapshot{
				IPAddress: click.IPAddress,
				UserAgent: click.UserAgent,
				Device:    u.classifier.Device(click.UserAgent),
				CreatedAt: click.CreatedAt,
			},
			Attributed: len(credits) > 0,
		}
		if err = tx.InsertConversion(ctx, conv); err != nil {
			return err
		}
		if err = tx.MarkConverted(ctx, click.ClickID, now); err != nil {
			return err
		}

		out := &port.ConversionResult{
			ClickID:     click.ClickID,
			AffiliateID: click.AffiliateID,
			CampaignID:  click.CampaignID,
			Attributed:  conv.Attributed,
		}
		if len(credits) > 0 {
			if out.Credits, err = u.credit(ctx, tx, s, click.ClickID, history, credits, now); err != nil {
				return err
			}
		}
		for _, c := range out.Credits {
			if c.Status.CreditsBalance() {
				out.CommissionAmount += c.CommissionAmount
			}
		}
		res = out
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyProcessed) {
			u.logger.Warn("duplicate conversion rejected",
				slog.String("click_id", s.clickID.String()),
				slog.String("transaction_id", s.transactionID),
				slog.String("source", string(s.source)),
			)
		}
		return nil, err
	}

	if !res.Attributed {
		u.logger.Info("attribution miss",
			slog.String("click_id", res.ClickID.String()),
			slog.String("affiliate_id", res.AffiliateID.String()),
			slog.String("model", string(settings.Model)),
		)
	}
	return res, nil
}

// credit writes one revenue record per credited click and credits each
// affiliate's balance. Tier rates are read from the balance as locked in tx,
// so earlier credits of the same conversion count towards later ones.
func (u *AffiliateUseCase) credit(
	ctx context.Context,
	tx port.Tx,
	s settlement,
	conversionClick domain.ClickID,
	history []domain.ClickEvent,
	credits []domain.Credit,
	now time.Time,
) ([]port.CreditResult, error) {
	byID := make(map[domain.ClickID]domain.ClickEvent, len(history))
	for _, c := range history {
		byID[c.ClickID] = c
	}
	revenue := commission.Apportion(s.revenue, credits)
	var override []domain.Amount
	if s.override != nil {
		override = commission.Apportion(*s.override, credits)
	}

	out := make([]port.CreditResult, 0, len(credits))
	for i, cr := range credits {
		c := byID[cr.ClickID]
		if c.ClickID != conversionClick {
			if err := tx.MarkConverted(ctx, c.ClickID, now); err != nil {
				if errors.Is(err, domain.ErrAlreadyProcessed) {
					// Consumed by a concurrent conversion; a retry resolves
					// without it.
					return nil, &domain.PersistenceError{Op: "mark credited click", Err: err}
				}
				return nil, err
			}
		}

		bal, err := tx.GetBalance(ctx, c.AffiliateID)
		if err != nil {
			return nil, err
		}
		amount := u.calc.Calculate(*bal, revenue[i])
		if override != nil {
			amount = override[i]
		}

		rec := &domain.RevenueRecord{
			ID:                u.newID(),
			AffiliateID:       c.AffiliateID,
			CampaignID:        c.CampaignID,
			ClickID:           c.ClickID,
			ConversionClickID: conversionClick,
			Amount:            revenue[i],
			CommissionAmount:  amount,
			Currency:          s.currency,
			Status:            s.status,
			Source:            s.source,
			Weight:            cr.Weight,
			CreatedAt:         now,
		}
		if err = tx.InsertRevenue(ctx, rec); err != nil {
			return nil, err
		}
		if s.status.CreditsBalance() && amount > 0 {
			if err = tx.CreditCommission(ctx, c.AffiliateID, amount); err != nil {
				return nil, err
			}
		}
		out = append(out, port.CreditResult{
			ClickID:          c.ClickID,
			AffiliateID:      c.AffiliateID,
			Weight:           cr.Weight,
			Revenue:          revenue[i],
			CommissionAmount: amount,
			Status:           s.status,
		})
	}
	return out, nil
}

// visitorKey returns the principal key of a click: the visitor cookie when
// present, otherwise a fingerprint of address and user agent.
func visitorKey(s domain.RequestSignals) string {
	if v := strings.TrimSpace(s.VisitorID); v != "" {
		return v
	}
	sum := sha256.Sum256([]byte(strings.TrimSpace(s.IPAddress) + "|" + strings.TrimSpace(s.UserAgent)))
	return "fp_" + hex.EncodeToString(sum[:16])
}
