package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"affiliate-ledger/internal/core/domain"
)

// Store is the outbound persistence port. Every multi-record mutation runs
// through WithinTx; the read methods return snapshot-consistent but possibly
// stale data and must not be used to decide a later write.
type Store interface {
	// WithinTx runs fn in a single atomic unit. When fn returns an error
	// nothing it wrote is kept. Implementations must give the unit
	// serializable semantics for the rows it reads and writes.
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error

	// GetBalance returns the balance document of an affiliate.
	GetBalance(ctx context.Context, id domain.AffiliateID) (*domain.AffiliateBalance, error)
	// ListRevenue returns an affiliate's revenue records, newest first.
	ListRevenue(ctx context.Context, id domain.AffiliateID, page domain.Page) (domain.PageResult[domain.RevenueRecord], error)
	// ListPayouts returns payout records matching filter, newest first.
	ListPayouts(ctx context.Context, filter domain.PayoutFilter, page domain.Page) (domain.PageResult[domain.PayoutRecord], error)
	// ClickStats aggregates clicks created in [From, To).
	ClickStats(ctx context.Context, req domain.ClickStatsReq) (*domain.ClickStats, error)

	// LoadSettings returns the persisted attribution settings, or nil when
	// none were saved yet.
	LoadSettings(ctx context.Context) (*domain.AttributionSettings, error)
	// SaveSettings replaces the persisted attribution settings.
	SaveSettings(ctx context.Context, s domain.AttributionSettings) error
}

// Tx is the set of operations available inside a Store transaction.
// Lookups by key lock the row they return until the transaction ends.
type Tx interface {
	// InsertClick appends a click to the click ledger.
	InsertClick(ctx context.Context, c *domain.ClickEvent) error
	// GetClick returns a click; domain.ErrNotFound when absent.
	GetClick(ctx context.Context, id domain.ClickID) (*domain.ClickEvent, error)
	// ClickHistory returns the principal's clicks created at or after since.
	ClickHistory(ctx context.Context, campaignID, visitorID string, since time.Time) ([]domain.ClickEvent, error)
	// MarkConverted flips a click's converted flag; it fails with
	// domain.ErrAlreadyProcessed when the flag is already set.
	MarkConverted(ctx context.Context, id domain.ClickID, at time.Time) error

	// InsertConversion records a conversion; a second conversion for the
	// same click or transaction id fails with domain.ErrAlreadyProcessed.
	InsertConversion(ctx context.Context, c *domain.ConversionEvent) error
	// InsertRevenue appends a revenue record.
	InsertRevenue(ctx context.Context, r *domain.RevenueRecord) error

	// GetBalance returns and locks an affiliate balance document.
	GetBalance(ctx context.Context, id domain.AffiliateID) (*domain.AffiliateBalance, error)
	// UpsertCommissionConfig creates the balance document when missing and
	// replaces its rate and tiers. Totals are never touched.
	UpsertCommissionConfig(ctx context.Context, id domain.AffiliateID, rate decimal.NullDecimal, tiers []domain.CommissionTier) (*domain.AffiliateBalance, error)
	// CreditCommission adds amount to both TotalEarnings and PendingPayouts.
	// A negative amount is allowed only while neither total goes below zero;
	// otherwise it fails with domain.ErrInsufficientBalance.
	CreditCommission(ctx context.Context, id domain.AffiliateID, amount domain.Amount) error
	// DebitForPayout moves amount from PendingPayouts to TotalPaid if
	// PendingPayouts >= amount, else fails with domain.ErrInsufficientBalance.
	DebitForPayout(ctx context.Context, id domain.AffiliateID, amount domain.Amount) error
	// AdjustClicks changes the click counter; it fails with
	// domain.ErrInsufficientBalance if the counter would go negative.
	AdjustClicks(ctx context.Context, id domain.AffiliateID, delta int64) error

	// InsertPayout records a payout; a reused non-empty transaction id fails
	// with domain.ErrAlreadyProcessed.
	InsertPayout(ctx context.Context, p *domain.PayoutRecord) error
	// InsertAdjustment appends an admin adjustment audit record.
	InsertAdjustment(ctx context.Context, a *domain.BalanceAdjustment) error
}
