package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"affiliate-ledger/internal/core/port"
)

// VisitorCookie carries the visitor id between a click and later clicks of
// the same browser.
const VisitorCookie = "aff_vid"

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the affiliate use case to execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router for convenient
// method handling.
type Handler struct {
	svc    port.AffiliateUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. requestTimeout
// bounds every request; zero disables the bound.
func NewHandler(svc port.AffiliateUseCase, logger *slog.Logger, requestTimeout time.Duration) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if requestTimeout > 0 {
		r.Use(middleware.Timeout(requestTimeout))
	}

	r.Get("/r/{affiliateID}/{campaignID}", h.handleRedirect)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/clicks", h.handleRecordClick)
		r.Post("/conversions", h.handleConversion)
		r.Get("/postback", h.handlePostback)
		r.Post("/postback", h.handlePostback)

		r.Post("/payouts", h.handleRequestPayout)
		r.Get("/payouts", h.handleListPayouts)

		r.Get("/affiliates/{affiliateID}/balance", h.handleBalance)
		r.Get("/affiliates/{affiliateID}/revenue", h.handleRevenue)

		r.Get("/stats/clicks", h.handleClickStats)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/affiliates/{affiliateID}/adjustments", h.handleAdjustBalance)
			r.Put("/affiliates/{affiliateID}/commission", h.handleConfigureCommission)
			r.Get("/attribution-settings", h.handleGetSettings)
			r.Put("/attribution-settings", h.handleUpdateSettings)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
