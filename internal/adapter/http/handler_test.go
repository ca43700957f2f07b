package httpadapter

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"affiliate-ledger/internal/core/domain"
	"affiliate-ledger/internal/core/port"
	"affiliate-ledger/internal/core/port/mocks"
)

const (
	affID   = "6F1C2B7E-7D36-4A57-9D8E-0C4F1B5A9E01"
	aff     = domain.AffiliateID("6f1c2b7e-7d36-4a57-9d8e-0c4f1b5a9e01")
	clickID = domain.ClickID("9a4f1d2c-5b6e-4c7d-8e9f-0a1b2c3d4e5f")
)

func newTestHandler(t *testing.T) (*mocks.MockAffiliateUseCase, http.Handler) {
	t.Helper()
	svc := mocks.NewMockAffiliateUseCase(t)
	h := NewHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil)), time.Second)
	return svc, h.Router()
}

func do(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var env errorEnvelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return env.Error
}

func TestRecordClick(t *testing.T) {
	svc, h := newTestHandler(t)

	svc.EXPECT().
		RecordClick(mock.Anything, mock.MatchedBy(func(in port.ClickInput) bool {
			return in.AffiliateID == aff &&
				in.CampaignID == "spring-sale" &&
				in.Signals.IPAddress == "198.51.100.23" &&
				in.Signals.UserAgent == "test-agent" &&
				in.Signals.VisitorID == "v-123"
		})).
		Return(&port.ClickResult{ClickID: clickID, VisitorID: "v-123"}, nil)
	svc.EXPECT().
		AttributionSettings(mock.Anything).
		Return(domain.AttributionSettings{CookieExpiry: time.Hour})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/clicks",
		strings.NewReader(`{"affiliate_id":"`+affID+`","campaign_id":"spring-sale"}`))
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("X-Forwarded-For", "198.51.100.23")
	req.AddCookie(&http.Cookie{Name: VisitorCookie, Value: "v-123"})

	rec := do(h, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, VisitorCookie, cookies[0].Name)
	assert.Equal(t, 3600, cookies[0].MaxAge)

	var res port.ClickResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, clickID, res.ClickID)
}

func TestRecordClickRejectsBadAffiliate(t *testing.T) {
	_, h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/clicks",
		strings.NewReader(`{"affiliate_id":"507f1f77bcf86cd799439011","campaign_id":"x"}`))
	rec := do(h, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, codeValidation, body.Code)
	require.Len(t, body.Details, 1)
	assert.Equal(t, "affiliate_id", body.Details[0].Field)
}

func TestRedirect(t *testing.T) {
	svc, h := newTestHandler(t)

	svc.EXPECT().
		RecordClick(mock.Anything, mock.AnythingOfType("port.ClickInput")).
		Return(&port.ClickResult{ClickID: clickID, VisitorID: "fp_abc", Filtered: true}, nil)
	svc.EXPECT().
		AttributionSettings(mock.Anything).
		Return(domain.AttributionSettings{CookieExpiry: 24 * time.Hour})

	target := url.QueryEscape("https://shop.example.com/landing?utm=aff")
	rec := do(h, httptest.NewRequest(http.MethodGet, "/r/"+affID+"/spring-sale?to="+target, nil))

	require.Equal(t, http.StatusFound, rec.Code)
	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "shop.example.com", loc.Host)
	assert.Equal(t, "aff", loc.Query().Get("utm"))
	assert.Equal(t, clickID.String(), loc.Query().Get("click_id"))
}

func TestRedirectRequiresAbsoluteTarget(t *testing.T) {
	_, h := newTestHandler(t)

	rec := do(h, httptest.NewRequest(http.MethodGet, "/r/"+affID+"/spring-sale?to=/relative", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConversionAlreadyProcessed(t *testing.T) {
	svc, h := newTestHandler(t)

	svc.EXPECT().
		RecordConversion(mock.Anything, port.ConversionInput{
			ClickID:       clickID,
			RevenueAmount: 123450,
			Currency:      "EUR",
			TransactionID: "order-7",
		}).
		Return(nil, eris.Wrap(domain.ErrAlreadyProcessed, "memory: conversion"))

	rec := do(h, httptest.NewRequest(http.MethodPost, "/api/v1/conversions", strings.NewReader(
		`{"click_id":"`+clickID.String()+`","revenue_amount":"1234.50","currency":"EUR","transaction_id":"order-7"}`)))

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, codeAlreadyProcessed, decodeEnvelope(t, rec).Code)
}

func TestPostbackFromQuery(t *testing.T) {
	svc, h := newTestHandler(t)
	override := domain.Amount(250)

	svc.EXPECT().
		SettleByClickID(mock.Anything, port.PostbackInput{
			ClickID:            clickID,
			Amount:             4999,
			Currency:           "USD",
			StatusHint:         "approved",
			TransactionID:      "pb-9",
			CommissionOverride: &override,
		}).
		Return(&port.ConversionResult{ClickID: clickID, AffiliateID: aff, CommissionAmount: 250, Attributed: true}, nil)

	rec := do(h, httptest.NewRequest(http.MethodGet,
		"/api/v1/postback?click_id="+clickID.String()+"&amount=49.99&currency=USD&status=approved&transaction_id=pb-9&commission=2.50", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var res map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, 2.5, res["commission_amount"])
}

func TestPostbackRejectsMalformedAmount(t *testing.T) {
	_, h := newTestHandler(t)

	for _, q := range []string{"amount=ten", "amount=10&commission=184467440737095516.17"} {
		rec := do(h, httptest.NewRequest(http.MethodGet, "/api/v1/postback?click_id="+clickID.String()+"&"+q, nil))
		require.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
}

func TestRequestPayoutErrors(t *testing.T) {
	for name, tc := range map[string]struct {
		err        error
		status     int
		code       string
		retryAfter string
	}{
		"insufficient": {domain.ErrInsufficientBalance, http.StatusUnprocessableEntity, codeInsufficientBalance, ""},
		"not found":    {domain.NewNotFoundError("affiliate", aff.String()), http.StatusNotFound, codeNotFound, ""},
		"persistence":  {&domain.PersistenceError{Op: "commit", Err: io.ErrUnexpectedEOF}, http.StatusServiceUnavailable, codeUnavailable, "1"},
		"unexpected":   {io.ErrClosedPipe, http.StatusInternalServerError, codeInternal, ""},
	} {
		t.Run(name, func(t *testing.T) {
			svc, h := newTestHandler(t)
			svc.EXPECT().
				RequestPayout(mock.Anything, port.PayoutInput{AffiliateID: aff, Amount: 10000, Method: "wire", ProcessedBy: "ops"}).
				Return(nil, tc.err)

			rec := do(h, httptest.NewRequest(http.MethodPost, "/api/v1/payouts", strings.NewReader(
				`{"affiliate_id":"`+affID+`","amount":100,"method":"wire","processed_by":"ops"}`)))

			require.Equal(t, tc.status, rec.Code)
			assert.Equal(t, tc.retryAfter, rec.Header().Get("Retry-After"))
			body := decodeEnvelope(t, rec)
			assert.Equal(t, tc.code, body.Code)
			assert.NotContains(t, body.Message, "unexpected EOF")
		})
	}
}

func TestListPayouts(t *testing.T) {
	svc, h := newTestHandler(t)

	svc.EXPECT().
		ListPayouts(mock.Anything,
			mock.MatchedBy(func(f domain.PayoutFilter) bool {
				return f.AffiliateID != nil && *f.AffiliateID == aff && f.Status == domain.PayoutCompleted
			}),
			domain.Page{Number: 2, Size: 5}).
		Return(domain.PageResult[domain.PayoutRecord]{Items: []domain.PayoutRecord{}, Page: 2, Size: 5}, nil)

	rec := do(h, httptest.NewRequest(http.MethodGet, "/api/v1/payouts?affiliate_id="+affID+"&status=completed&page=2&size=5", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(h, httptest.NewRequest(http.MethodGet, "/api/v1/payouts?page=two", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBalance(t *testing.T) {
	svc, h := newTestHandler(t)

	svc.EXPECT().
		GetBalance(mock.Anything, aff).
		Return(&domain.AffiliateBalance{AffiliateID: aff, TotalEarnings: 12050, PendingPayouts: 2050, TotalPaid: 10000}, nil)

	rec := do(h, httptest.NewRequest(http.MethodGet, "/api/v1/affiliates/"+affID+"/balance", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var res map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, 120.5, res["total_earnings"])
	assert.Equal(t, 20.5, res["pending_payouts"])
}

func TestAdjustBalance(t *testing.T) {
	svc, h := newTestHandler(t)

	svc.EXPECT().
		AdjustBalance(mock.Anything, mock.MatchedBy(func(in port.AdjustmentInput) bool {
			return in.AffiliateID == aff && in.Type == domain.AdjustCommission &&
				in.Amount.String() == "-12.5" && in.Reason == "chargeback"
		})).
		Return(&domain.BalanceAdjustment{ID: "adj-1", AffiliateID: aff, Type: domain.AdjustCommission, Delta: -1250}, nil)

	rec := do(h, httptest.NewRequest(http.MethodPost, "/api/v1/admin/affiliates/"+affID+"/adjustments", strings.NewReader(
		`{"type":"commission","amount":"-12.50","reason":"chargeback","processed_by":"ops"}`)))
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestConfigureCommission(t *testing.T) {
	svc, h := newTestHandler(t)

	svc.EXPECT().
		ConfigureCommission(mock.Anything, mock.MatchedBy(func(in port.CommissionConfigInput) bool {
			return in.AffiliateID == aff && !in.CommissionRate.Valid && len(in.Tiers) == 2 &&
				in.Tiers[1].MinRevenue == 1000000
		})).
		Return(&domain.AffiliateBalance{AffiliateID: aff}, nil)

	rec := do(h, httptest.NewRequest(http.MethodPut, "/api/v1/admin/affiliates/"+affID+"/commission", strings.NewReader(
		`{"commission_rate":null,"commission_tiers":[{"min_revenue":0,"rate":"0.10"},{"min_revenue":10000,"rate":"0.12"}]}`)))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAttributionSettings(t *testing.T) {
	svc, h := newTestHandler(t)
	next := domain.AttributionSettings{
		Model:        domain.TimeDecay,
		Window:       domain.AttributionWindow{Value: 7, Unit: domain.UnitDays},
		CookieExpiry: 7 * 24 * time.Hour,
	}

	svc.EXPECT().UpdateAttributionSettings(mock.Anything, next).Return(next, nil)
	svc.EXPECT().
		UpdateAttributionSettings(mock.Anything, mock.MatchedBy(func(s domain.AttributionSettings) bool { return s.Model == "random" })).
		Return(domain.AttributionSettings{}, domain.NewValidationError("attribution_model", "unknown"))
	svc.EXPECT().AttributionSettings(mock.Anything).Return(next)

	rec := do(h, httptest.NewRequest(http.MethodPut, "/api/v1/admin/attribution-settings", strings.NewReader(
		`{"attribution_model":"time_decay","click_attribution_window":{"value":7,"unit":"days"},"cookie_expiry_seconds":604800,"multiple_touch_sessions":false}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(h, httptest.NewRequest(http.MethodPut, "/api/v1/admin/attribution-settings", strings.NewReader(
		`{"attribution_model":"random","click_attribution_window":{"value":7,"unit":"days"}}`)))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(h, httptest.NewRequest(http.MethodGet, "/api/v1/admin/attribution-settings", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var dto settingsDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&dto))
	assert.Equal(t, int64(604800), dto.CookieExpirySeconds)
}

func TestClickStats(t *testing.T) {
	svc, h := newTestHandler(t)
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	svc.EXPECT().
		ClickStats(mock.Anything, mock.MatchedBy(func(req domain.ClickStatsReq) bool {
			return req.From.Equal(from) && req.To.Equal(to) && req.AffiliateID == nil && req.CampaignID == "spring-sale"
		})).
		Return(&domain.ClickStats{Total: 3, Accepted: 2, Filtered: 1, ByReason: map[domain.FilterReason]int64{domain.FilterReasonBlockedIP: 1}}, nil)

	rec := do(h, httptest.NewRequest(http.MethodGet,
		"/api/v1/stats/clicks?from=2026-03-01T00:00:00Z&to=2026-03-02T00:00:00Z&campaign_id=spring-sale", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(h, httptest.NewRequest(http.MethodGet, "/api/v1/stats/clicks?from=yesterday", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
