package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"affiliate-ledger/internal/core/domain"
)

func (h *Handler) handleBalance(w http.ResponseWriter, r *http.Request) {
	aff, err := domain.ParseAffiliateID(chi.URLParam(r, "affiliateID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	b, err := h.svc.GetBalance(r.Context(), aff)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, b)
}

func (h *Handler) handleRevenue(w http.ResponseWriter, r *http.Request) {
	aff, err := domain.ParseAffiliateID(chi.URLParam(r, "affiliateID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	page, err := parsePage(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.svc.ListRevenue(r.Context(), aff, page)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}
