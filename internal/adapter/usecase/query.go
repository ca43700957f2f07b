package usecase

import (
	"context"

	"affiliate-ledger/internal/core/domain"
)

// GetBalance returns the current balance document. The value may be stale by
// the time the caller acts on it; payouts re-check inside their transaction.
func (u *AffiliateUseCase) GetBalance(ctx context.Context, id domain.AffiliateID) (*domain.AffiliateBalance, error) {
	if err := requireAffiliate(id); err != nil {
		return nil, err
	}
	return u.store.GetBalance(ctx, id)
}

// ListRevenue returns one page of an affiliate's revenue records.
func (u *AffiliateUseCase) ListRevenue(ctx context.Context, id domain.AffiliateID, page domain.Page) (domain.PageResult[domain.RevenueRecord], error) {
	if err := requireAffiliate(id); err != nil {
		return domain.PageResult[domain.RevenueRecord]{}, err
	}
	return u.store.ListRevenue(ctx, id, page.Normalize())
}

// ListPayouts returns one page of payouts filtered by affiliate and/or status.
func (u *AffiliateUseCase) ListPayouts(ctx context.Context, filter domain.PayoutFilter, page domain.Page) (domain.PageResult[domain.PayoutRecord], error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return domain.PageResult[domain.PayoutRecord]{}, domain.NewValidationError("status", "unknown payout status")
	}
	return u.store.ListPayouts(ctx, filter, page.Normalize())
}

// ClickStats returns click ingest counters for fraud reporting. A zero To
// means now.
func (u *AffiliateUseCase) ClickStats(ctx context.Context, req domain.ClickStatsReq) (*domain.ClickStats, error) {
	if req.To.IsZero() {
		req.To = u.now()
	}
	if req.From.After(req.To) {
		return nil, domain.NewValidationError("from", "must not be after to")
	}
	return u.store.ClickStats(ctx, req)
}
