package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/rotisserie/eris"
	"github.com/shopspring/decimal"

	"affiliate-ledger/internal/core/domain"
	"affiliate-ledger/internal/core/port"
)

// Store is an in-process implementation of port.Store. Transactions are
// serialised by a single lock and rolled back with an undo log, which gives
// them the same all-or-nothing behaviour as the postgres adapter.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	balances    map[domain.AffiliateID]*domain.AffiliateBalance
	clicks      map[domain.ClickID]*domain.ClickEvent
	clickOrder  []domain.ClickID
	conversions map[domain.ClickID]*domain.ConversionEvent
	convTxIDs   map[string]domain.ClickID
	revenue     []domain.RevenueRecord
	payouts     []domain.PayoutRecord
	payoutTxIDs map[string]string
	adjustments []domain.BalanceAdjustment
	settings    *domain.AttributionSettings
}

var _ port.Store = (*Store)(nil)

// NewStore returns an empty store. now stamps balance documents; nil means
// time.Now in UTC.
func NewStore(now func() time.Time) *Store {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &Store{
		now:         now,
		balances:    make(map[domain.AffiliateID]*domain.AffiliateBalance),
		clicks:      make(map[domain.ClickID]*domain.ClickEvent),
		conversions: make(map[domain.ClickID]*domain.ConversionEvent),
		convTxIDs:   make(map[string]domain.ClickID),
		payoutTxIDs: make(map[string]string),
	}
}

// WithinTx runs fn under the write lock and reverts every change fn made when
// it returns an error.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, tx port.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return &domain.PersistenceError{Op: "begin", Err: err}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{s: s}
	if err := fn(ctx, tx); err != nil {
		tx.rollback()
		return err
	}
	return nil
}

// GetBalance returns a copy of the balance document.
func (s *Store) GetBalance(_ context.Context, id domain.AffiliateID) (*domain.AffiliateBalance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.balances[id]
	if !ok {
		return nil, domain.NewNotFoundError("affiliate", id.String())
	}
	return copyBalance(b), nil
}

// ListRevenue returns the affiliate's revenue records, newest first.
func (s *Store) ListRevenue(_ context.Context, id domain.AffiliateID, page domain.Page) (domain.PageResult[domain.RevenueRecord], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.balances[id]; !ok {
		return domain.PageResult[domain.RevenueRecord]{}, domain.NewNotFoundError("affiliate", id.String())
	}
	var matched []domain.RevenueRecord
	for i := len(s.revenue) - 1; i >= 0; i-- {
		if s.revenue[i].AffiliateID == id {
			matched = append(matched, s.revenue[i])
		}
	}
	return paginate(matched, page), nil
}

// ListPayouts returns payouts matching filter, newest first.
func (s *Store) ListPayouts(_ context.Context, filter domain.PayoutFilter, page domain.Page) (domain.PageResult[domain.PayoutRecord], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var matched []domain.PayoutRecord
	for i := len(s.payouts) - 1; i >= 0; i-- {
		p := s.payouts[i]
		if filter.AffiliateID != nil && p.AffiliateID != *filter.AffiliateID {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		matched = append(matched, p)
	}
	return paginate(matched, page), nil
}

// ClickStats counts clicks created in [From, To).
func (s *Store) ClickStats(_ context.Context, req domain.ClickStatsReq) (*domain.ClickStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats := &domain.ClickStats{ByReason: map[domain.FilterReason]int64{}}
	for _, id := range s.clickOrder {
		c := s.clicks[id]
		if c.CreatedAt.Before(req.From) || !c.CreatedAt.Before(req.To) {
			continue
		}
		if req.AffiliateID != nil && c.AffiliateID != *req.AffiliateID {
			continue
		}
		if req.CampaignID != "" && c.CampaignID != req.CampaignID {
			continue
		}
		stats.Total++
		if c.Filtered {
			stats.Filtered++
			stats.ByReason[c.FilterReason]++
		} else {
			stats.Accepted++
		}
		if c.Converted {
			stats.Converted++
		}
	}
	return stats, nil
}

// LoadSettings returns the saved settings or nil.
func (s *Store) LoadSettings(context.Context) (*domain.AttributionSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.settings == nil {
		return nil, nil
	}
	cp := *s.settings
	return &cp, nil
}

// SaveSettings replaces the saved settings.
func (s *Store) SaveSettings(_ context.Context, settings domain.AttributionSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = &settings
	return nil
}

type memTx struct {
	s    *Store
	undo []func()
}

func (t *memTx) onRollback(f func()) { t.undo = append(t.undo, f) }

func (t *memTx) rollback() {
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.undo = nil
}

func (t *memTx) InsertClick(_ context.Context, c *domain.ClickEvent) error {
	if _, ok := t.s.clicks[c.ClickID]; ok {
		return eris.Wrapf(domain.ErrAlreadyProcessed, "memory: insert click %s", c.ClickID)
	}
	cp := *c
	cp.Flags = slices.Clone(c.Flags)
	t.s.clicks[c.ClickID] = &cp
	t.s.clickOrder = append(t.s.clickOrder, c.ClickID)
	t.onRollback(func() {
		delete(t.s.clicks, c.ClickID)
		t.s.clickOrder = t.s.clickOrder[:len(t.s.clickOrder)-1]
	})
	return nil
}

func (t *memTx) GetClick(_ context.Context, id domain.ClickID) (*domain.ClickEvent, error) {
	c, ok := t.s.clicks[id]
	if !ok {
		return nil, domain.NewNotFoundError("click", id.String())
	}
	return copyClick(c), nil
}

func (t *memTx) ClickHistory(_ context.Context, campaignID, visitorID string, since time.Time) ([]domain.ClickEvent, error) {
	var out []domain.ClickEvent
	for _, id := range t.s.clickOrder {
		c := t.s.clicks[id]
		if c.CampaignID != campaignID || c.VisitorID != visitorID || c.CreatedAt.Before(since) {
			continue
		}
		out = append(out, *copyClick(c))
	}
	return out, nil
}

func (t *memTx) MarkConverted(_ context.Context, id domain.ClickID, at time.Time) error {
	c, ok := t.s.clicks[id]
	if !ok {
		return domain.NewNotFoundError("click", id.String())
	}
	if c.Converted {
		return eris.Wrapf(domain.ErrAlreadyProcessed, "memory: click %s already converted", id)
	}
	c.Converted = true
	c.ConvertedAt = &at
	t.onRollback(func() {
		c.Converted = false
		c.ConvertedAt = nil
	})
	return nil
}

func (t *memTx) InsertConversion(_ context.Context, c *domain.ConversionEvent) error {
	if _, ok := t.s.conversions[c.ClickID]; ok {
		return eris.Wrapf(domain.ErrAlreadyProcessed, "memory: conversion for click %s", c.ClickID)
	}
	if c.TransactionID != "" {
		if _, ok := t.s.convTxIDs[c.TransactionID]; ok {
			return eris.Wrapf(domain.ErrAlreadyProcessed, "memory: conversion transaction %s", c.TransactionID)
		}
		t.s.convTxIDs[c.TransactionID] = c.ClickID
	}
	cp := *c
	t.s.conversions[c.ClickID] = &cp
	t.onRollback(func() {
		delete(t.s.conversions, c.ClickID)
		if c.TransactionID != "" {
			delete(t.s.convTxIDs, c.TransactionID)
		}
	})
	return nil
}

func (t *memTx) InsertRevenue(_ context.Context, r *domain.RevenueRecord) error {
	t.s.revenue = append(t.s.revenue, *r)
	t.onRollback(func() { t.s.revenue = t.s.revenue[:len(t.s.revenue)-1] })
	return nil
}

func (t *memTx) GetBalance(_ context.Context, id domain.AffiliateID) (*domain.AffiliateBalance, error) {
	b, ok := t.s.balances[id]
	if !ok {
		return nil, domain.NewNotFoundError("affiliate", id.String())
	}
	return copyBalance(b), nil
}

func (t *memTx) UpsertCommissionConfig(_ context.Context, id domain.AffiliateID, rate decimal.NullDecimal, tiers []domain.CommissionTier) (*domain.AffiliateBalance, error) {
	now := t.s.now()
	b, ok := t.s.balances[id]
	if !ok {
		b = &domain.AffiliateBalance{AffiliateID: id, CreatedAt: now}
		t.s.balances[id] = b
		t.onRollback(func() { delete(t.s.balances, id) })
	} else {
		prev := *b
		t.onRollback(func() { *b = prev })
	}
	b.CommissionRate = rate
	b.CommissionTiers = slices.Clone(tiers)
	b.UpdatedAt = now
	return copyBalance(b), nil
}

func (t *memTx) CreditCommission(_ context.Context, id domain.AffiliateID, amount domain.Amount) error {
	b, ok := t.s.balances[id]
	if !ok {
		return domain.NewNotFoundError("affiliate", id.String())
	}
	if b.TotalEarnings+amount < 0 || b.PendingPayouts+amount < 0 {
		return domain.ErrInsufficientBalance
	}
	t.mutateBalance(b, func() {
		b.TotalEarnings += amount
		b.PendingPayouts += amount
	})
	return nil
}

func (t *memTx) DebitForPayout(_ context.Context, id domain.AffiliateID, amount domain.Amount) error {
	b, ok := t.s.balances[id]
	if !ok {
		return domain.NewNotFoundError("affiliate", id.String())
	}
	if b.PendingPayouts < amount {
		return domain.ErrInsufficientBalance
	}
	t.mutateBalance(b, func() {
		b.PendingPayouts -= amount
		b.TotalPaid += amount
	})
	return nil
}

func (t *memTx) AdjustClicks(_ context.Context, id domain.AffiliateID, delta int64) error {
	b, ok := t.s.balances[id]
	if !ok {
		return domain.NewNotFoundError("affiliate", id.String())
	}
	if b.TotalClicks+delta < 0 {
		return domain.ErrInsufficientBalance
	}
	t.mutateBalance(b, func() { b.TotalClicks += delta })
	return nil
}

func (t *memTx) InsertPayout(_ context.Context, p *domain.PayoutRecord) error {
	if p.TransactionID != "" {
		if _, ok := t.s.payoutTxIDs[p.TransactionID]; ok {
			return eris.Wrapf(domain.ErrAlreadyProcessed, "memory: payout transaction %s", p.TransactionID)
		}
		t.s.payoutTxIDs[p.TransactionID] = p.ID
	}
	t.s.payouts = append(t.s.payouts, *p)
	t.onRollback(func() {
		t.s.payouts = t.s.payouts[:len(t.s.payouts)-1]
		if p.TransactionID != "" {
			delete(t.s.payoutTxIDs, p.TransactionID)
		}
	})
	return nil
}

func (t *memTx) InsertAdjustment(_ context.Context, a *domain.BalanceAdjustment) error {
	t.s.adjustments = append(t.s.adjustments, *a)
	t.onRollback(func() { t.s.adjustments = t.s.adjustments[:len(t.s.adjustments)-1] })
	return nil
}

func (t *memTx) mutateBalance(b *domain.AffiliateBalance, apply func()) {
	prev := *b
	t.onRollback(func() { *b = prev })
	apply()
	b.UpdatedAt = t.s.now()
}

// Adjustments returns the audit trail of an affiliate in insertion order.
func (s *Store) Adjustments(id domain.AffiliateID) []domain.BalanceAdjustment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.BalanceAdjustment
	for _, a := range s.adjustments {
		if a.AffiliateID == id {
			out = append(out, a)
		}
	}
	return out
}

// Conversion returns the conversion recorded for a click.
func (s *Store) Conversion(id domain.ClickID) (*domain.ConversionEvent, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.conversions[id]
	if !ok {
		return nil, false
	}
	cp := *c
	return &cp, true
}

func paginate[T any](items []T, page domain.Page) domain.PageResult[T] {
	res := domain.PageResult[T]{Page: page.Number, Size: page.Size, Total: int64(len(items)), Items: []T{}}
	start := page.Offset()
	if start < 0 || start >= len(items) {
		return res
	}
	end := min(start+page.Size, len(items))
	res.Items = slices.Clone(items[start:end])
	return res
}

func copyBalance(b *domain.AffiliateBalance) *domain.AffiliateBalance {
	cp := *b
	cp.CommissionTiers = slices.Clone(b.CommissionTiers)
	return &cp
}

func copyClick(c *domain.ClickEvent) *domain.ClickEvent {
	cp := *c
	cp.Flags = slices.Clone(c.Flags)
	if c.ConvertedAt != nil {
		at := *c.ConvertedAt
		cp.ConvertedAt = &at
	}
	return &cp
}
