package httpadapter

import (
	"net/http"
	"time"

	"affiliate-ledger/internal/core/domain"
)

// handleClickStats returns click ingest counters over a period. It accepts
// optional `from`, `to` (RFC3339 timestamps), `affiliate_id` and
// `campaign_id` query parameters. If no period is provided, it defaults to
// the last 24 hours.
func (h *Handler) handleClickStats(w http.ResponseWriter, r *http.Request) {
	var (
		q   = r.URL.Query()
		req domain.ClickStatsReq
		err error
	)

	if v := q.Get("to"); v != "" {
		if req.To, err = time.Parse(time.RFC3339, v); err != nil {
			h.writeError(w, r, domain.NewValidationError("to", "must be an RFC3339 timestamp"))
			return
		}
	} else {
		req.To = time.Now().UTC()
	}

	if v := q.Get("from"); v != "" {
		if req.From, err = time.Parse(time.RFC3339, v); err != nil {
			h.writeError(w, r, domain.NewValidationError("from", "must be an RFC3339 timestamp"))
			return
		}
	} else {
		req.From = req.To.Add(-24 * time.Hour)
	}

	if v := q.Get("affiliate_id"); v != "" {
		aff, err := domain.ParseAffiliateID(v)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		req.AffiliateID = &aff
	}
	req.CampaignID = q.Get("campaign_id")

	stats, err := h.svc.ClickStats(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}
