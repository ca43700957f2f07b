package domain

import (
	"fmt"
	"time"
)

// PayoutStatus is the persisted status of a PayoutRecord. Only completed
// records are written today; the other values are reserved for an
// asynchronous payment rail.
type PayoutStatus string

const (
	PayoutPending    PayoutStatus = "pending"
	PayoutProcessing PayoutStatus = "processing"
	PayoutCompleted  PayoutStatus = "completed"
	PayoutFailed     PayoutStatus = "failed"
)

// Valid reports whether s is a known status.
func (s PayoutStatus) Valid() bool {
	switch s {
	case PayoutPending, PayoutProcessing, PayoutCompleted, PayoutFailed:
		return true
	}
	return false
}

// PayoutRecord is created by the payout processor after the balance debit
// and is immutable once completed.
type PayoutRecord struct {
	ID            string       `json:"id"`
	AffiliateID   AffiliateID  `json:"affiliate_id"`
	Amount        Amount       `json:"amount"`
	Currency      string       `json:"currency"`
	Status        PayoutStatus `json:"status"`
	Method        string       `json:"method"`
	TransactionID string       `json:"transaction_id"`
	Notes         string       `json:"notes"`
	ProcessedBy   string       `json:"processed_by"`
	CreatedAt     time.Time    `json:"created_at"`
	CompletedAt   *time.Time   `json:"completed_at,omitempty"`
}

// PayoutFilter narrows ListPayouts. Zero fields are ignored.
type PayoutFilter struct {
	AffiliateID *AffiliateID
	Status      PayoutStatus
}

// PayoutState is a step of the payout request state machine:
// requested -> verifying -> completed | rejected.
type PayoutState string

const (
	PayoutRequested PayoutState = "requested"
	PayoutVerifying PayoutState = "verifying"
	PayoutDone      PayoutState = "completed"
	PayoutRejected  PayoutState = "rejected"
)

var payoutTransitions = map[PayoutState][]PayoutState{
	PayoutRequested: {PayoutVerifying, PayoutRejected},
	PayoutVerifying: {PayoutDone, PayoutRejected},
}

// Transition returns next if the move from s is allowed.
func (s PayoutState) Transition(next PayoutState) (PayoutState, error) {
	for _, allowed := range payoutTransitions[s] {
		if allowed == next {
			return next, nil
		}
	}
	return s, fmt.Errorf("payout: illegal transition %s -> %s", s, next)
}
