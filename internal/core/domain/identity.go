package domain

import (
	"strings"

	"github.com/google/uuid"
)

// AffiliateID is the normalised affiliate identity. It is always the
// canonical lower-case UUID form; obtain one through ParseAffiliateID at the
// boundary and pass it around as is.
type AffiliateID string

// ParseAffiliateID validates raw and returns its canonical form.
func ParseAffiliateID(raw string) (AffiliateID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", NewValidationError("affiliate_id", "must be a UUID")
	}
	return AffiliateID(id.String()), nil
}

func (id AffiliateID) String() string { return string(id) }

// ClickID identifies a click. Generated at ingest.
type ClickID string

// ParseClickID validates raw and returns its canonical form.
func ParseClickID(raw string) (ClickID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", NewValidationError("click_id", "must be a UUID")
	}
	return ClickID(id.String()), nil
}

func (id ClickID) String() string { return string(id) }
