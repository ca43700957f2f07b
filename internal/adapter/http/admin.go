package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"affiliate-ledger/internal/core/domain"
	"affiliate-ledger/internal/core/port"
)

type adjustmentRequest struct {
	Type        domain.AdjustmentType `json:"type"`
	Amount      decimal.Decimal       `json:"amount"`
	Reason      string                `json:"reason"`
	ProcessedBy string                `json:"processed_by"`
}

func (h *Handler) handleAdjustBalance(w http.ResponseWriter, r *http.Request) {
	aff, err := domain.ParseAffiliateID(chi.URLParam(r, "affiliateID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req adjustmentRequest
	if err = decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	adj, err := h.svc.AdjustBalance(r.Context(), port.AdjustmentInput{
		AffiliateID: aff,
		Type:        req.Type,
		Amount:      req.Amount,
		Reason:      req.Reason,
		ProcessedBy: req.ProcessedBy,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, adj)
}

type commissionRequest struct {
	CommissionRate  decimal.NullDecimal     `json:"commission_rate"`
	CommissionTiers []domain.CommissionTier `json:"commission_tiers"`
}

func (h *Handler) handleConfigureCommission(w http.ResponseWriter, r *http.Request) {
	aff, err := domain.ParseAffiliateID(chi.URLParam(r, "affiliateID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req commissionRequest
	if err = decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	b, err := h.svc.ConfigureCommission(r.Context(), port.CommissionConfigInput{
		AffiliateID:    aff,
		CommissionRate: req.CommissionRate,
		Tiers:          req.CommissionTiers,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, b)
}

// settingsDTO is the wire form of domain.AttributionSettings; the cookie
// lifetime travels in seconds.
type settingsDTO struct {
	Model                 domain.AttributionModel  `json:"attribution_model"`
	Window                domain.AttributionWindow `json:"click_attribution_window"`
	CookieExpirySeconds   int64                    `json:"cookie_expiry_seconds"`
	MultipleTouchSessions bool                     `json:"multiple_touch_sessions"`
}

func toSettingsDTO(s domain.AttributionSettings) settingsDTO {
	return settingsDTO{
		Model:                 s.Model,
		Window:                s.Window,
		CookieExpirySeconds:   int64(s.CookieExpiry / time.Second),
		MultipleTouchSessions: s.MultipleTouchSessions,
	}
}

func (d settingsDTO) settings() domain.AttributionSettings {
	return domain.AttributionSettings{
		Model:                 d.Model,
		Window:                d.Window,
		CookieExpiry:          time.Duration(d.CookieExpirySeconds) * time.Second,
		MultipleTouchSessions: d.MultipleTouchSessions,
	}
}

func (h *Handler) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, toSettingsDTO(h.svc.AttributionSettings(r.Context())))
}

func (h *Handler) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsDTO
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	s, err := h.svc.UpdateAttributionSettings(r.Context(), req.settings())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toSettingsDTO(s))
}
