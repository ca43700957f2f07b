package httpadapter

import (
	"net/http"

	"affiliate-ledger/internal/core/domain"
	"affiliate-ledger/internal/core/port"
)

type payoutRequest struct {
	AffiliateID   string        `json:"affiliate_id"`
	Amount        domain.Amount `json:"amount"`
	Currency      string        `json:"currency"`
	Method        string        `json:"method"`
	TransactionID string        `json:"transaction_id"`
	Notes         string        `json:"notes"`
	ProcessedBy   string        `json:"processed_by"`
}

func (h *Handler) handleRequestPayout(w http.ResponseWriter, r *http.Request) {
	var req payoutRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	aff, err := domain.ParseAffiliateID(req.AffiliateID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	rec, err := h.svc.RequestPayout(r.Context(), port.PayoutInput{
		AffiliateID:   aff,
		Amount:        req.Amount,
		Currency:      req.Currency,
		Method:        req.Method,
		TransactionID: req.TransactionID,
		Notes:         req.Notes,
		ProcessedBy:   req.ProcessedBy,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, rec)
}

// handleListPayouts lists payouts filtered by the optional affiliate_id and
// status query parameters.
func (h *Handler) handleListPayouts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var filter domain.PayoutFilter
	if v := q.Get("affiliate_id"); v != "" {
		aff, err := domain.ParseAffiliateID(v)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		filter.AffiliateID = &aff
	}
	filter.Status = domain.PayoutStatus(q.Get("status"))
	page, err := parsePage(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.svc.ListPayouts(r.Context(), filter, page)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}
