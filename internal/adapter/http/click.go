package httpadapter

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"affiliate-ledger/internal/core/domain"
	"affiliate-ledger/internal/core/port"
)

type clickRequest struct {
	AffiliateID string `json:"affiliate_id"`
	CampaignID  string `json:"campaign_id"`
}

// handleRecordClick records a click reported by a landing page or tracking
// pixel. Request signals are read from the request itself, never from the
// body.
func (h *Handler) handleRecordClick(w http.ResponseWriter, r *http.Request) {
	var req clickRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.recordClick(r, req.AffiliateID, req.CampaignID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.setVisitorCookie(r.Context(), w, res.VisitorID)
	h.writeJSON(w, http.StatusCreated, res)
}

// handleRedirect records a click and sends the visitor on to the
// advertiser. Filtered clicks are redirected too, so bots learn nothing from
// the response.
func (h *Handler) handleRedirect(w http.ResponseWriter, r *http.Request) {
	target, err := redirectTarget(r.URL.Query().Get("to"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.recordClick(r, chi.URLParam(r, "affiliateID"), chi.URLParam(r, "campaignID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.setVisitorCookie(r.Context(), w, res.VisitorID)
	q := target.Query()
	q.Set("click_id", res.ClickID.String())
	target.RawQuery = q.Encode()
	http.Redirect(w, r, target.String(), http.StatusFound)
}

func (h *Handler) recordClick(r *http.Request, rawAffiliate, campaignID string) (*port.ClickResult, error) {
	aff, err := domain.ParseAffiliateID(rawAffiliate)
	if err != nil {
		return nil, err
	}
	return h.svc.RecordClick(r.Context(), port.ClickInput{
		AffiliateID: aff,
		CampaignID:  campaignID,
		Signals:     requestSignals(r),
	})
}

func (h *Handler) setVisitorCookie(ctx context.Context, w http.ResponseWriter, visitorID string) {
	expiry := h.svc.AttributionSettings(ctx).CookieExpiry
	if expiry <= 0 || visitorID == "" {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     VisitorCookie,
		Value:    visitorID,
		Path:     "/",
		MaxAge:   int(expiry.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// requestSignals extracts the fraud and identity signals of r. RemoteAddr
// has already been rewritten from X-Forwarded-For by middleware.RealIP.
func requestSignals(r *http.Request) domain.RequestSignals {
	ip := r.RemoteAddr
	if host, _, err := net.SplitHostPort(ip); err == nil {
		ip = host
	}
	s := domain.RequestSignals{
		IPAddress: ip,
		UserAgent: r.UserAgent(),
		Referrer:  r.Referer(),
	}
	if c, err := r.Cookie(VisitorCookie); err == nil {
		s.VisitorID = c.Value
	}
	return s
}

func redirectTarget(raw string) (*url.URL, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, domain.NewValidationError("to", "is required")
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, domain.NewValidationError("to", "must be an absolute http(s) URL")
	}
	return u, nil
}
