package domain

import (
	"strings"
	"time"
)

// ClickSnapshot copies the originating click's request attributes onto a
// conversion so the record stays meaningful on its own.
type ClickSnapshot struct {
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`
	Device    string    `json:"device"`
	CreatedAt time.Time `json:"created_at"`
}

// ConversionEvent is written once per converted click and never mutated.
// Attributed is false when the resolver found no eligible click.
type ConversionEvent struct {
	ClickID       ClickID       `json:"click_id"`
	AffiliateID   AffiliateID   `json:"affiliate_id"`
	CampaignID    string        `json:"campaign_id"`
	RevenueAmount Amount        `json:"revenue_amount"`
	Currency      string        `json:"currency"`
	TransactionID string        `json:"transaction_id"`
	ConvertedAt   time.Time     `json:"converted_at"`
	Click         ClickSnapshot `json:"click"`
	Attributed    bool          `json:"attributed"`
}

// RevenueStatus is the lifecycle state of a RevenueRecord.
type RevenueStatus string

const (
	RevenuePending   RevenueStatus = "pending"
	RevenueSucceeded RevenueStatus = "succeeded"
	RevenueFailed    RevenueStatus = "failed"
	RevenueRefunded  RevenueStatus = "refunded"
)

// CreditsBalance reports whether a record in this status is credited to the
// affiliate balance.
func (s RevenueStatus) CreditsBalance() bool {
	return s == RevenuePending || s == RevenueSucceeded
}

// ParseStatusHint maps a partner's postback status onto a RevenueStatus.
func ParseStatusHint(hint string) (RevenueStatus, error) {
	switch strings.ToLower(strings.TrimSpace(hint)) {
	case "", "approved", "success", "succeeded", "completed", "complete":
		return RevenueSucceeded, nil
	case "pending", "hold":
		return RevenuePending, nil
	case "failed", "rejected", "declined":
		return RevenueFailed, nil
	case "refunded", "reversed", "chargeback":
		return RevenueRefunded, nil
	default:
		return "", NewValidationError("status", "unknown status hint")
	}
}

// RevenueSource names the entry point that produced a revenue record.
type RevenueSource string

const (
	SourceConversion RevenueSource = "conversion"
	SourcePostback   RevenueSource = "postback"
)

// RevenueRecord is the append-only account of commission earned by one
// credited click of one conversion.
type RevenueRecord struct {
	ID          string      `json:"id"`
	AffiliateID AffiliateID `json:"affiliate_id"`
	CampaignID  string      `json:"campaign_id"`
	ClickID     ClickID     `json:"click_id"`
	// ConversionClickID is the click the conversion was reported against;
	// it differs from ClickID under multi-touch models.
	ConversionClickID ClickID       `json:"conversion_click_id"`
	Amount            Amount        `json:"amount"`
	CommissionAmount  Amount        `json:"commission_amount"`
	Currency          string        `json:"currency"`
	Status            RevenueStatus `json:"status"`
	Source            RevenueSource `json:"source"`
	Weight            float64       `json:"weight"`
	CreatedAt         time.Time     `json:"created_at"`
}
