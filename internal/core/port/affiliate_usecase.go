package port

import (
	"context"

	"github.com/shopspring/decimal"

	"affiliate-ledger/internal/core/domain"
)

// AffiliateUseCase is the inbound port of the engine. Identity fields are
// already parsed; the web layer owns request decoding.
type AffiliateUseCase interface {
	// RecordClick classifies and stores a click. Filtered clicks are stored
	// too but never earn credit.
	RecordClick(ctx context.Context, in ClickInput) (*ClickResult, error)
	// RecordConversion converts a click with an advertiser-reported sale.
	RecordConversion(ctx context.Context, in ConversionInput) (*ConversionResult, error)
	// SettleByClickID handles a partner postback. Repeated delivery for the
	// same click fails with domain.ErrAlreadyProcessed and changes nothing.
	SettleByClickID(ctx context.Context, in PostbackInput) (*ConversionResult, error)
	// RequestPayout pays out from the pending balance atomically.
	RequestPayout(ctx context.Context, in PayoutInput) (*domain.PayoutRecord, error)
	// AdjustBalance applies and audits a manual override.
	AdjustBalance(ctx context.Context, in AdjustmentInput) (*domain.BalanceAdjustment, error)
	// ConfigureCommission sets an affiliate's flat rate and tier table,
	// creating its balance document when needed.
	ConfigureCommission(ctx context.Context, in CommissionConfigInput) (*domain.AffiliateBalance, error)

	GetBalance(ctx context.Context, id domain.AffiliateID) (*domain.AffiliateBalance, error)
	ListRevenue(ctx context.Context, id domain.AffiliateID, page domain.Page) (domain.PageResult[domain.RevenueRecord], error)
	ListPayouts(ctx context.Context, filter domain.PayoutFilter, page domain.Page) (domain.PageResult[domain.PayoutRecord], error)
	ClickStats(ctx context.Context, req domain.ClickStatsReq) (*domain.ClickStats, error)

	// AttributionSettings returns the settings used for new conversions.
	AttributionSettings(ctx context.Context) domain.AttributionSettings
	// UpdateAttributionSettings validates, persists and activates s.
	UpdateAttributionSettings(ctx context.Context, s domain.AttributionSettings) (domain.AttributionSettings, error)
}

// ClickInput is a click ingest request.
type ClickInput struct {
	AffiliateID domain.AffiliateID
	CampaignID  string
	Signals     domain.RequestSignals
}

// ClickResult is returned by RecordClick. VisitorID is the principal key the
// web layer should persist in the visitor cookie.
type ClickResult struct {
	ClickID      domain.ClickID      `json:"click_id"`
	VisitorID    string              `json:"visitor_id"`
	Filtered     bool                `json:"filtered"`
	FilterReason domain.FilterReason `json:"filter_reason,omitempty"`
}

// ConversionInput is an advertiser-side conversion report.
type ConversionInput struct {
	ClickID       domain.ClickID
	RevenueAmount domain.Amount
	Currency      string
	TransactionID string
}

// PostbackInput is a server-to-server conversion notification.
type PostbackInput struct {
	ClickID       domain.ClickID
	Amount        domain.Amount
	Currency      string
	StatusHint    string
	TransactionID string
	// CommissionOverride, when set, replaces the tier calculation.
	CommissionOverride *domain.Amount
}

// CreditResult is the share of one credited click.
type CreditResult struct {
	ClickID          domain.ClickID       `json:"click_id"`
	AffiliateID      domain.AffiliateID   `json:"affiliate_id"`
	Weight           float64              `json:"weight"`
	Revenue          domain.Amount        `json:"revenue"`
	CommissionAmount domain.Amount        `json:"commission_amount"`
	Status           domain.RevenueStatus `json:"status"`
}

// ConversionResult reports the outcome of a conversion. Attributed is false
// for an attribution miss, in which case CommissionAmount is zero.
type ConversionResult struct {
	ClickID          domain.ClickID     `json:"click_id"`
	AffiliateID      domain.AffiliateID `json:"affiliate_id"`
	CampaignID       string             `json:"campaign_id"`
	CommissionAmount domain.Amount      `json:"commission_amount"`
	Attributed       bool               `json:"attributed"`
	Credits          []CreditResult     `json:"credits"`
}

// PayoutInput is a payout request.
type PayoutInput struct {
	AffiliateID   domain.AffiliateID
	Amount        domain.Amount
	Currency      string
	Method        string
	TransactionID string
	Notes         string
	ProcessedBy   string
}

// AdjustmentInput is a manual balance override. Amount is in major units
// for commission adjustments and must be a whole number for clicks.
type AdjustmentInput struct {
	AffiliateID domain.AffiliateID
	Type        domain.AdjustmentType
	Amount      decimal.Decimal
	Reason      string
	ProcessedBy string
}

// CommissionConfigInput replaces an affiliate's commission configuration.
type CommissionConfigInput struct {
	AffiliateID    domain.AffiliateID
	CommissionRate decimal.NullDecimal
	Tiers          []domain.CommissionTier
}
