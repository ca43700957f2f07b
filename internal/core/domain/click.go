package domain

import "time"

// FilterReason explains why a click was excluded from attribution.
type FilterReason string

const (
	FilterReasonBotUserAgent FilterReason = "bot_user_agent"
	FilterReasonSpamReferrer FilterReason = "spam_referrer"
	FilterReasonBlockedIP    FilterReason = "blocked_ip"
)

// RequestSignals are the request attributes captured at click ingest. The
// web layer extracts them; the engine only reads them.
type RequestSignals struct {
	IPAddress string
	UserAgent string
	Referrer  string
	// VisitorID is the first-party cookie value, if the visitor has one.
	VisitorID string
}

// ClickEvent is an immutable record of a visit. Only Converted and
// ConvertedAt change after insert, exactly once.
type ClickEvent struct {
	ClickID      ClickID
	AffiliateID  AffiliateID
	CampaignID   string
	VisitorID    string
	IPAddress    string
	UserAgent    string
	Referrer     string
	CreatedAt    time.Time
	Filtered     bool
	FilterReason FilterReason
	// Flags holds low-confidence audit tags set by the classifier on
	// accepted clicks.
	Flags       []string
	Converted   bool
	ConvertedAt *time.Time
}

// ClickStatsReq selects the clicks counted by ClickStats.
type ClickStatsReq struct {
	From        time.Time
	To          time.Time
	AffiliateID *AffiliateID
	CampaignID  string
}

// ClickStats aggregates click ingest outcomes for fraud reporting.
type ClickStats struct {
	Total     int64                  `json:"total"`
	Accepted  int64                  `json:"accepted"`
	Filtered  int64                  `json:"filtered"`
	Converted int64                  `json:"converted"`
	ByReason  map[FilterReason]int64 `json:"by_reason"`
}
