package httpadapter

import (
	"net/http"
	"strings"

	"affiliate-ledger/internal/core/domain"
	"affiliate-ledger/internal/core/port"
)

type conversionRequest struct {
	ClickID       string        `json:"click_id"`
	RevenueAmount domain.Amount `json:"revenue_amount"`
	Currency      string        `json:"currency"`
	TransactionID string        `json:"transaction_id"`
}

func (h *Handler) handleConversion(w http.ResponseWriter, r *http.Request) {
	var req conversionRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	clickID, err := domain.ParseClickID(req.ClickID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.svc.RecordConversion(r.Context(), port.ConversionInput{
		ClickID:       clickID,
		RevenueAmount: req.RevenueAmount,
		Currency:      req.Currency,
		TransactionID: req.TransactionID,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, res)
}

type postbackRequest struct {
	ClickID       string         `json:"click_id"`
	Amount        domain.Amount  `json:"amount"`
	Currency      string         `json:"currency"`
	Status        string         `json:"status"`
	TransactionID string         `json:"transaction_id"`
	Commission    *domain.Amount `json:"commission"`
}

// handlePostback accepts partner postbacks as query parameters, a form or a
// JSON body. A repeated delivery answers 409 so partners stop retrying.
func (h *Handler) handlePostback(w http.ResponseWriter, r *http.Request) {
	req, err := decodePostback(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	clickID, err := domain.ParseClickID(req.ClickID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.svc.SettleByClickID(r.Context(), port.PostbackInput{
		ClickID:            clickID,
		Amount:             req.Amount,
		Currency:           req.Currency,
		StatusHint:         req.Status,
		TransactionID:      req.TransactionID,
		CommissionOverride: req.Commission,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

func decodePostback(r *http.Request) (postbackRequest, error) {
	var req postbackRequest
	if r.Method == http.MethodPost && strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		return req, decodeJSON(r, &req)
	}
	if err := r.ParseForm(); err != nil {
		return req, domain.NewValidationError("body", "invalid form")
	}
	req.ClickID = r.Form.Get("click_id")
	req.Currency = r.Form.Get("currency")
	req.Status = r.Form.Get("status")
	req.TransactionID = r.Form.Get("transaction_id")
	if v := r.Form.Get("amount"); v != "" {
		amount, err := domain.ParseAmount(v)
		if err != nil {
			return req, err
		}
		req.Amount = amount
	}
	if v := r.Form.Get("commission"); v != "" {
		commission, err := domain.ParseAmount(v)
		if err != nil {
			return req, err
		}
		req.Commission = &commission
	}
	return req, nil
}
