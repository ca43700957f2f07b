package usecase

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"affiliate-ledger/internal/adapter/memory"
	"affiliate-ledger/internal/core/domain"
	"affiliate-ledger/internal/core/port"
	"affiliate-ledger/internal/core/port/mocks"
)

const (
	affA     = domain.AffiliateID("6f1c2b7e-7d36-4a57-9d8e-0c4f1b5a9e01")
	affB     = domain.AffiliateID("0b9d8e55-3c1a-4f7e-8a2b-94d1c6e7f302")
	chromeUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0 Safari/537.36"
)

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type fixture struct {
	uc    *AffiliateUseCase
	store *memory.Store
	clock *clock
}

func newFixture(t *testing.T, settings domain.AttributionSettings) *fixture {
	t.Helper()
	clk := &clock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	store := memory.NewStore(clk.Now)
	uc := NewAffiliateUseCase(store, slog.New(slog.NewTextHandler(io.Discard, nil)), Options{
		Settings: settings,
		Now:      clk.Now,
	})
	for _, id := range []domain.AffiliateID{affA, affB} {
		_, err := uc.ConfigureCommission(context.Background(), port.CommissionConfigInput{AffiliateID: id})
		require.NoError(t, err)
	}
	return &fixture{uc: uc, store: store, clock: clk}
}

func (f *fixture) click(t *testing.T, aff domain.AffiliateID, visitor string) domain.ClickID {
	t.Helper()
	res, err := f.uc.RecordClick(context.Background(), port.ClickInput{
		AffiliateID: aff,
		CampaignID:  "spring-sale",
		Signals: domain.RequestSignals{
			IPAddress: "203.0.113.7",
			UserAgent: chromeUA,
			VisitorID: visitor,
		},
	})
	require.NoError(t, err)
	require.False(t, res.Filtered)
	return res.ClickID
}

func (f *fixture) credit(t *testing.T, aff domain.AffiliateID, amount string) {
	t.Helper()
	_, err := f.uc.AdjustBalance(context.Background(), port.AdjustmentInput{
		AffiliateID: aff,
		Type:        domain.AdjustCommission,
		Amount:      decimal.RequireFromString(amount),
		Reason:      "opening balance",
		ProcessedBy: "ops@example.com",
	})
	require.NoError(t, err)
}

func (f *fixture) balance(t *testing.T, aff domain.AffiliateID) *domain.AffiliateBalance {
	t.Helper()
	b, err := f.uc.GetBalance(context.Background(), aff)
	require.NoError(t, err)
	return b
}

func TestRecordClick(t *testing.T) {
	f := newFixture(t, DefaultSettings)
	ctx := context.Background()

	f.click(t, affA, "")
	res, err := f.uc.RecordClick(ctx, port.ClickInput{
		AffiliateID: affA,
		CampaignID:  "spring-sale",
		Signals:     domain.RequestSignals{IPAddress: "198.51.100.4", UserAgent: "Googlebot/2.1"},
	})
	require.NoError(t, err)
	assert.True(t, res.Filtered)
	assert.Equal(t, domain.FilterReasonBotUserAgent, res.FilterReason)
	assert.Contains(t, res.VisitorID, "fp_")

	assert.Equal(t, int64(1), f.balance(t, affA).TotalClicks)

	stats, err := f.uc.ClickStats(ctx, domain.ClickStatsReq{From: f.clock.Now().Add(-time.Hour), To: f.clock.Now().Add(time.Second)})
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(1), stats.Filtered)
}

func TestRecordClickValidation(t *testing.T) {
	f := newFixture(t, DefaultSettings)
	ctx := context.Background()

	_, err := f.uc.RecordClick(ctx, port.ClickInput{AffiliateID: affA})
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.uc.RecordClick(ctx, port.ClickInput{
		AffiliateID: "1d3b4c5e-0000-4000-8000-000000000000",
		CampaignID:  "spring-sale",
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConversionUsesTierRate(t *testing.T) {
	f := newFixture(t, DefaultSettings)
	ctx := context.Background()

	_, err := f.uc.ConfigureCommission(ctx, port.CommissionConfigInput{
		AffiliateID: affA,
		Tiers: []domain.CommissionTier{
			{MinRevenue: 5000000, Rate: decimal.RequireFromString("0.15")},
			{MinRevenue: 0, Rate: decimal.RequireFromString("0.10")},
			{MinRevenue: 1000000, Rate: decimal.RequireFromString("0.12")},
		},
	})
	require.NoError(t, err)
	f.credit(t, affA, "25000")

	clickID := f.click(t, affA, "visitor-1")
	f.clock.Advance(2 * time.Hour)

	res, err := f.uc.RecordConversion(ctx, port.ConversionInput{
		ClickID:       clickID,
		RevenueAmount: 100000,
		Currency:      "inr",
		TransactionID: "order-1",
	})
	require.NoError(t, err)
	assert.True(t, res.Attributed)
	assert.Equal(t, affA, res.AffiliateID)
	assert.Equal(t, "spring-sale", res.CampaignID)
	assert.Equal(t, "120.00", res.CommissionAmount.String())

	b := f.balance(t, affA)
	assert.Equal(t, "25120.00", b.TotalEarnings.String())
	assert.Equal(t, "25120.00", b.PendingPayouts.String())

	rev, err := f.uc.ListRevenue(ctx, affA, domain.Page{})
	require.NoError(t, err)
	require.Len(t, rev.Items, 1)
	assert.Equal(t, "INR", rev.Items[0].Currency)
	assert.Equal(t, domain.SourceConversion, rev.Items[0].Source)

	conv, ok := f.store.Conversion(clickID)
	require.True(t, ok)
	assert.Equal(t, "desktop", conv.Click.Device)
}

func TestPostbackIsIdempotent(t *testing.T) {
	f := newFixture(t, DefaultSettings)
	ctx := context.Background()
	clickID := f.click(t, affA, "visitor-1")

	in := port.PostbackInput{ClickID: clickID, Amount: 5000, StatusHint: "approved", TransactionID: "pb-1"}
	res, err := f.uc.SettleByClickID(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(500), res.CommissionAmount)

	_, err = f.uc.SettleByClickID(ctx, in)
	require.ErrorIs(t, err, domain.ErrAlreadyProcessed)

	rev, err := f.uc.ListRevenue(ctx, affA, domain.Page{})
	require.NoError(t, err)
	assert.Len(t, rev.Items, 1)
	assert.Equal(t, domain.Amount(500), f.balance(t, affA).PendingPayouts)
}

func TestPostbackStatusHintAndOverride(t *testing.T) {
	f := newFixture(t, DefaultSettings)
	ctx := context.Background()

	refunded := f.click(t, affA, "visitor-1")
	res, err := f.uc.SettleByClickID(ctx, port.PostbackInput{ClickID: refunded, Amount: 5000, StatusHint: "chargeback"})
	require.NoError(t, err)
	assert.Zero(t, res.CommissionAmount)
	require.Len(t, res.Credits, 1)
	assert.Equal(t, domain.RevenueRefunded, res.Credits[0].Status)
	assert.Zero(t, f.balance(t, affA).PendingPayouts)

	override := domain.Amount(750)
	pending := f.click(t, affA, "visitor-2")
	res, err = f.uc.SettleByClickID(ctx, port.PostbackInput{ClickID: pending, Amount: 5000, StatusHint: "pending", CommissionOverride: &override})
	require.NoError(t, err)
	assert.Equal(t, override, res.CommissionAmount)
	assert.Equal(t, override, f.balance(t, affA).PendingPayouts)

	_, err = f.uc.SettleByClickID(ctx, port.PostbackInput{ClickID: f.click(t, affA, "visitor-3"), StatusHint: "maybe"})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestConversionOutsideWindowIsMiss(t *testing.T) {
	f := newFixture(t, DefaultSettings)
	ctx := context.Background()
	clickID := f.click(t, affA, "visitor-1")

	f.clock.Advance(31 * 24 * time.Hour)
	res, err := f.uc.SettleByClickID(ctx, port.PostbackInput{ClickID: clickID, Amount: 10000, TransactionID: "late-1"})
	require.NoError(t, err)
	assert.False(t, res.Attributed)
	assert.Zero(t, res.CommissionAmount)
	assert.Empty(t, res.Credits)

	conv, ok := f.store.Conversion(clickID)
	require.True(t, ok)
	assert.False(t, conv.Attributed)

	rev, err := f.uc.ListRevenue(ctx, affA, domain.Page{})
	require.NoError(t, err)
	assert.Empty(t, rev.Items)
	assert.Zero(t, f.balance(t, affA).TotalEarnings)

	_, err = f.uc.SettleByClickID(ctx, port.PostbackInput{ClickID: clickID, Amount: 10000})
	require.ErrorIs(t, err, domain.ErrAlreadyProcessed)
}

func TestLinearMultiTouchSplitsCredit(t *testing.T) {
	settings := DefaultSettings
	settings.Model = domain.Linear
	settings.MultipleTouchSessions = true
	f := newFixture(t, settings)
	ctx := context.Background()

	first := f.click(t, affA, "visitor-1")
	f.clock.Advance(time.Hour)
	last := f.click(t, affB, "visitor-1")
	f.clock.Advance(time.Hour)

	res, err := f.uc.RecordConversion(ctx, port.ConversionInput{ClickID: last, RevenueAmount: 10001})
	require.NoError(t, err)
	require.Len(t, res.Credits, 2)
	assert.Equal(t, first, res.Credits[0].ClickID)
	assert.Equal(t, res.Credits[0].Revenue+res.Credits[1].Revenue, domain.Amount(10001))
	assert.InDelta(t, 0.5, res.Credits[0].Weight, 1e-9)

	assert.Equal(t, domain.Amount(500), f.balance(t, affA).PendingPayouts)
	assert.Equal(t, domain.Amount(500), f.balance(t, affB).PendingPayouts)

	rev, err := f.uc.ListRevenue(ctx, affA, domain.Page{})
	require.NoError(t, err)
	require.Len(t, rev.Items, 1)
	assert.Equal(t, last, rev.Items[0].ConversionClickID)

	// the first click was consumed by this conversion
	_, err = f.uc.RecordConversion(ctx, port.ConversionInput{ClickID: first, RevenueAmount: 100})
	require.ErrorIs(t, err, domain.ErrAlreadyProcessed)
}

func TestSingleTouchIgnoresOtherAffiliates(t *testing.T) {
	settings := DefaultSettings
	settings.Model = domain.FirstClick
	f := newFixture(t, settings)
	ctx := context.Background()

	f.click(t, affA, "visitor-1")
	f.clock.Advance(time.Hour)
	mine := f.click(t, affB, "visitor-1")

	res, err := f.uc.RecordConversion(ctx, port.ConversionInput{ClickID: mine, RevenueAmount: 1000})
	require.NoError(t, err)
	require.Len(t, res.Credits, 1)
	assert.Equal(t, affB, res.Credits[0].AffiliateID)
	assert.Zero(t, f.balance(t, affA).PendingPayouts)
}

func TestConcurrentPayoutsNeverOverdraw(t *testing.T) {
	f := newFixture(t, DefaultSettings)
	f.credit(t, affA, "100")

	var (
		g    errgroup.Group
		errs = make([]error, 2)
	)
	for i := range errs {
		g.Go(func() error {
			_, errs[i] = f.uc.RequestPayout(context.Background(), port.PayoutInput{
				AffiliateID: affA,
				Amount:      10000,
				ProcessedBy: "ops@example.com",
			})
			return nil
		})
	}
	require.NoError(t, g.Wait())

	var completed, rejected int
	for _, err := range errs {
		switch {
		case err == nil:
			completed++
		case assert.ErrorIs(t, err, domain.ErrInsufficientBalance):
			rejected++
		}
	}
	assert.Equal(t, 1, completed)
	assert.Equal(t, 1, rejected)

	b := f.balance(t, affA)
	assert.Zero(t, b.PendingPayouts)
	assert.Equal(t, domain.Amount(10000), b.TotalPaid)

	payouts, err := f.uc.ListPayouts(context.Background(), domain.PayoutFilter{Status: domain.PayoutCompleted}, domain.Page{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), payouts.Total)
}

func TestRequestPayout(t *testing.T) {
	f := newFixture(t, DefaultSettings)
	ctx := context.Background()
	f.credit(t, affA, "50")

	_, err := f.uc.RequestPayout(ctx, port.PayoutInput{AffiliateID: affA})
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.uc.RequestPayout(ctx, port.PayoutInput{AffiliateID: "1d3b4c5e-0000-4000-8000-000000000000", Amount: 100})
	require.ErrorIs(t, err, domain.ErrNotFound)

	rec, err := f.uc.RequestPayout(ctx, port.PayoutInput{AffiliateID: affA, Amount: 2000, TransactionID: "wire-1", Notes: "march"})
	require.NoError(t, err)
	assert.Equal(t, domain.PayoutCompleted, rec.Status)
	assert.Equal(t, DefaultPayoutMethod, rec.Method)
	assert.Equal(t, "USD", rec.Currency)
	require.NotNil(t, rec.CompletedAt)

	_, err = f.uc.RequestPayout(ctx, port.PayoutInput{AffiliateID: affA, Amount: 1000, TransactionID: "wire-1"})
	require.ErrorIs(t, err, domain.ErrAlreadyProcessed)

	b := f.balance(t, affA)
	assert.Equal(t, "30.00", b.PendingPayouts.String())
	assert.Equal(t, "20.00", b.TotalPaid.String())
	assert.Equal(t, "50.00", b.TotalEarnings.String())
}

func TestAdjustBalance(t *testing.T) {
	f := newFixture(t, DefaultSettings)
	ctx := context.Background()

	base := port.AdjustmentInput{AffiliateID: affA, Reason: "manual fix", ProcessedBy: "ops@example.com"}

	in := base
	in.Type = domain.AdjustClicks
	in.Amount = decimal.RequireFromString("1.5")
	_, err := f.uc.AdjustBalance(ctx, in)
	require.ErrorIs(t, err, domain.ErrValidation)

	in.Amount = decimal.NewFromInt(-1)
	_, err = f.uc.AdjustBalance(ctx, in)
	require.ErrorIs(t, err, domain.ErrValidation)

	in.Amount = decimal.NewFromInt(12)
	adj, err := f.uc.AdjustBalance(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, int64(12), adj.Delta)

	in = base
	in.Type = domain.AdjustCommission
	in.Amount = decimal.RequireFromString("-0.01")
	_, err = f.uc.AdjustBalance(ctx, in)
	require.ErrorIs(t, err, domain.ErrInsufficientBalance)

	in.Type = "bonus"
	_, err = f.uc.AdjustBalance(ctx, in)
	require.ErrorIs(t, err, domain.ErrValidation)

	in = base
	in.Type = domain.AdjustCommission
	in.Reason = " "
	in.Amount = decimal.NewFromInt(5)
	_, err = f.uc.AdjustBalance(ctx, in)
	require.ErrorIs(t, err, domain.ErrValidation)

	in = base
	in.Type = domain.AdjustCommission
	in.Amount = decimal.RequireFromString("184467440737095516.17")
	_, err = f.uc.AdjustBalance(ctx, in)
	require.ErrorIs(t, err, domain.ErrValidation)

	in.Type = domain.AdjustClicks
	in.Amount = decimal.RequireFromString("18446744073709551617")
	_, err = f.uc.AdjustBalance(ctx, in)
	require.ErrorIs(t, err, domain.ErrValidation)

	b := f.balance(t, affA)
	assert.Equal(t, int64(12), b.TotalClicks)
	assert.Zero(t, b.TotalEarnings)
	assert.Len(t, f.store.Adjustments(affA), 1)
}

func TestZeroDefaultCommissionRateIsKept(t *testing.T) {
	ctx := context.Background()
	clk := &clock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	uc := NewAffiliateUseCase(memory.NewStore(clk.Now), nil, Options{
		DefaultCommissionRate: decimal.NewNullDecimal(decimal.Zero),
		Now:                   clk.Now,
	})
	f := &fixture{uc: uc, clock: clk}
	_, err := uc.ConfigureCommission(ctx, port.CommissionConfigInput{AffiliateID: affA})
	require.NoError(t, err)

	clickID := f.click(t, affA, "visitor-1")
	clk.Advance(time.Hour)
	res, err := uc.RecordConversion(ctx, port.ConversionInput{ClickID: clickID, RevenueAmount: 100000, TransactionID: "order-1"})
	require.NoError(t, err)
	assert.True(t, res.Attributed)
	assert.Zero(t, res.CommissionAmount)
}

func TestListRevenueFarPageIsEmpty(t *testing.T) {
	f := newFixture(t, DefaultSettings)
	f.credit(t, affA, "10")

	rev, err := f.uc.ListRevenue(context.Background(), affA, domain.Page{Number: 1e17, Size: 100})
	require.NoError(t, err)
	assert.Equal(t, domain.MaxPageNumber, rev.Page)
	assert.Empty(t, rev.Items)
}

func TestConfigureCommissionValidation(t *testing.T) {
	f := newFixture(t, DefaultSettings)
	ctx := context.Background()

	_, err := f.uc.ConfigureCommission(ctx, port.CommissionConfigInput{
		AffiliateID:    affA,
		CommissionRate: decimal.NewNullDecimal(decimal.RequireFromString("1.5")),
	})
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.uc.ConfigureCommission(ctx, port.CommissionConfigInput{
		AffiliateID:    affA,
		CommissionRate: decimal.NewNullDecimal(decimal.RequireFromString("0.12345")),
	})
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.uc.ConfigureCommission(ctx, port.CommissionConfigInput{
		AffiliateID: affA,
		Tiers: []domain.CommissionTier{
			{MinRevenue: 0, Rate: decimal.RequireFromString("0.1")},
			{MinRevenue: 0, Rate: decimal.RequireFromString("0.2")},
		},
	})
	require.ErrorIs(t, err, domain.ErrValidation)

	b, err := f.uc.ConfigureCommission(ctx, port.CommissionConfigInput{
		AffiliateID:    affA,
		CommissionRate: decimal.NewNullDecimal(decimal.RequireFromString("0.2")),
	})
	require.NoError(t, err)
	assert.True(t, b.CommissionRate.Valid)
}

func TestAttributionSettingsArePersisted(t *testing.T) {
	f := newFixture(t, DefaultSettings)
	ctx := context.Background()

	_, err := f.uc.UpdateAttributionSettings(ctx, domain.AttributionSettings{Model: "random"})
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, DefaultSettings, f.uc.AttributionSettings(ctx))

	next := domain.AttributionSettings{
		Model:        domain.TimeDecay,
		Window:       domain.AttributionWindow{Value: 12, Unit: domain.UnitHours},
		CookieExpiry: time.Hour,
	}
	_, err = f.uc.UpdateAttributionSettings(ctx, next)
	require.NoError(t, err)

	fresh := NewAffiliateUseCase(f.store, nil, Options{Now: f.clock.Now})
	require.NoError(t, fresh.LoadSettings(ctx))
	assert.Equal(t, next, fresh.AttributionSettings(ctx))
}

func TestRequestPayoutChecksBalanceInsideTransaction(t *testing.T) {
	store := mocks.NewMockStore(t)
	tx := mocks.NewMockTx(t)

	store.EXPECT().
		WithinTx(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context, port.Tx) error) error {
			return fn(ctx, tx)
		})
	tx.EXPECT().
		GetBalance(mock.Anything, affA).
		Return(&domain.AffiliateBalance{AffiliateID: affA, PendingPayouts: 5000}, nil)

	uc := NewAffiliateUseCase(store, nil, Options{})
	_, err := uc.RequestPayout(context.Background(), port.PayoutInput{AffiliateID: affA, Amount: 6000})
	require.ErrorIs(t, err, domain.ErrInsufficientBalance)
}

func TestPersistenceFailureIsSurfaced(t *testing.T) {
	store := mocks.NewMockStore(t)
	store.EXPECT().
		WithinTx(mock.Anything, mock.Anything).
		Return(&domain.PersistenceError{Op: "commit", Err: io.ErrUnexpectedEOF})

	uc := NewAffiliateUseCase(store, nil, Options{})
	_, err := uc.RequestPayout(context.Background(), port.PayoutInput{AffiliateID: affA, Amount: 100})
	require.ErrorIs(t, err, domain.ErrPersistence)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
