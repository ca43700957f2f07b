package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommissionTier applies Rate once lifetime earnings reach MinRevenue.
type CommissionTier struct {
	MinRevenue Amount          `json:"min_revenue"`
	Rate       decimal.Decimal `json:"rate"`
}

// AffiliateBalance is the per-affiliate running total and the only source of
// truth for spendable balance. Every commission credit moves TotalEarnings
// and PendingPayouts together; every payout moves PendingPayouts to
// TotalPaid.
type AffiliateBalance struct {
	AffiliateID     AffiliateID         `json:"affiliate_id"`
	CommissionRate  decimal.NullDecimal `json:"commission_rate"`
	CommissionTiers []CommissionTier    `json:"commission_tiers"`
	TotalEarnings   Amount              `json:"total_earnings"`
	PendingPayouts  Amount              `json:"pending_payouts"`
	TotalPaid       Amount              `json:"total_paid"`
	TotalClicks     int64               `json:"total_clicks"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// AdjustmentType selects which counters an admin adjustment touches.
type AdjustmentType string

const (
	AdjustCommission AdjustmentType = "commission"
	AdjustClicks     AdjustmentType = "clicks"
)

// BalanceAdjustment is the audit record of a manual override. Delta is in
// minor units for commission adjustments and a plain count for clicks.
type BalanceAdjustment struct {
	ID          string         `json:"id"`
	AffiliateID AffiliateID    `json:"affiliate_id"`
	Type        AdjustmentType `json:"type"`
	Delta       int64          `json:"delta"`
	Reason      string         `json:"reason"`
	ProcessedBy string         `json:"processed_by"`
	CreatedAt   time.Time      `json:"created_at"`
}
