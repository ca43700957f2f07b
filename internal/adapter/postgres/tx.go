package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rotisserie/eris"
	"github.com/shopspring/decimal"

	"affiliate-ledger/internal/core/domain"
	"affiliate-ledger/internal/core/port"
)

const clickColumns = `click_id, affiliate_id, campaign_id, visitor_id, ip_address, user_agent, referrer,
               created_at, filtered, filter_reason, flags, converted, converted_at`

const balanceColumns = `affiliate_id, commission_rate, commission_tiers, total_earnings, pending_payouts,
               total_paid, total_clicks, created_at, updated_at`

type txStore struct {
	q querier
}

var _ port.Tx = (*txStore)(nil)

func (t *txStore) InsertClick(ctx context.Context, c *domain.ClickEvent) error {
	flags := c.Flags
	if flags == nil {
		flags = []string{}
	}
	_, err := t.q.Exec(ctx, `
        INSERT INTO clicks (`+clickColumns+`)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		c.ClickID, c.AffiliateID, c.CampaignID, c.VisitorID, c.IPAddress, c.UserAgent, c.Referrer,
		c.CreatedAt, c.Filtered, c.FilterReason, flags, c.Converted, c.ConvertedAt)
	return classify("insert click", err)
}

func (t *txStore) GetClick(ctx context.Context, id domain.ClickID) (*domain.ClickEvent, error) {
	row := t.q.QueryRow(ctx, `SELECT `+clickColumns+` FROM clicks WHERE click_id = $1 FOR UPDATE`, id)
	c, err := scanClick(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NewNotFoundError("click", id.String())
	}
	if err != nil {
		return nil, classify("get click", err)
	}
	return &c, nil
}

func (t *txStore) ClickHistory(ctx context.Context, campaignID, visitorID string, since time.Time) ([]domain.ClickEvent, error) {
	rows, err := t.q.Query(ctx, `
        SELECT `+clickColumns+`
        FROM clicks
        WHERE campaign_id = $1 AND visitor_id = $2 AND created_at >= $3
        ORDER BY created_at, click_id
        FOR UPDATE`, campaignID, visitorID, since)
	if err != nil {
		return nil, classify("click history", err)
	}
	history, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ClickEvent, error) {
		return scanClick(row)
	})
	if err != nil {
		return nil, classify("click history", err)
	}
	return history, nil
}

func (t *txStore) MarkConverted(ctx context.Context, id domain.ClickID, at time.Time) error {
	tag, err := t.q.Exec(ctx, `UPDATE clicks SET converted = true, converted_at = $2 WHERE click_id = $1 AND NOT converted`, id, at)
	if err != nil {
		return classify("mark converted", err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}
	var exists bool
	if err = t.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM clicks WHERE click_id = $1)`, id).Scan(&exists); err != nil {
		return classify("mark converted", err)
	}
	if !exists {
		return domain.NewNotFoundError("click", id.String())
	}
	return eris.Wrapf(domain.ErrAlreadyProcessed, "postgres: click %s already converted", id)
}

func (t *txStore) InsertConversion(ctx context.Context, c *domain.ConversionEvent) error {
	_, err := t.q.Exec(ctx, `
        INSERT INTO conversions (click_id, affiliate_id, campaign_id, revenue_amount, currency, transaction_id,
                                 converted_at, click_ip_address, click_user_agent, click_device, click_created_at, attributed)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		c.ClickID, c.AffiliateID, c.CampaignID, c.RevenueAmount, c.Currency, c.TransactionID,
		c.ConvertedAt, c.Click.IPAddress, c.Click.UserAgent, c.Click.Device, c.Click.CreatedAt, c.Attributed)
	return classify("insert conversion", err)
}

func (t *txStore) InsertRevenue(ctx context.Context, r *domain.RevenueRecord) error {
	_, err := t.q.Exec(ctx, `
        INSERT INTO revenue_records (id, affiliate_id, campaign_id, click_id, conversion_click_id, amount,
                                     commission_amount, currency, status, source, weight, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		r.ID, r.AffiliateID, r.CampaignID, r.ClickID, r.ConversionClickID, r.Amount,
		r.CommissionAmount, r.Currency, r.Status, r.Source, r.Weight, r.CreatedAt)
	return classify("insert revenue", err)
}

func (t *txStore) GetBalance(ctx context.Context, id domain.AffiliateID) (*domain.AffiliateBalance, error) {
	return getBalance(ctx, t.q, id, true)
}

func (t *txStore) UpsertCommissionConfig(ctx context.Context, id domain.AffiliateID, rate decimal.NullDecimal, tiers []domain.CommissionTier) (*domain.AffiliateBalance, error) {
	if tiers == nil {
		tiers = []domain.CommissionTier{}
	}
	raw, err := json.Marshal(tiers)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: encode commission tiers")
	}
	row := t.q.QueryRow(ctx, `
        INSERT INTO affiliate_balances (affiliate_id, commission_rate, commission_tiers)
        VALUES ($1, $2, $3)
        ON CONFLICT (affiliate_id) DO UPDATE
        SET commission_rate = EXCLUDED.commission_rate,
            commission_tiers = EXCLUDED.commission_tiers,
            updated_at = now()
        RETURNING `+balanceColumns, id, rate, raw)
	b, err := scanBalance(row)
	if err != nil {
		return nil, classify("upsert commission config", err)
	}
	return b, nil
}

func (t *txStore) CreditCommission(ctx context.Context, id domain.AffiliateID, amount domain.Amount) error {
	tag, err := t.q.Exec(ctx, `
        UPDATE affiliate_balances
        SET total_earnings = total_earnings + $2,
            pending_payouts = pending_payouts + $2,
            updated_at = now()
        WHERE affiliate_id = $1
          AND total_earnings + $2 >= 0
          AND pending_payouts + $2 >= 0`, id, amount)
	return t.guarded(ctx, "credit commission", id, tag.RowsAffected(), err)
}

func (t *txStore) DebitForPayout(ctx context.Context, id domain.AffiliateID, amount domain.Amount) error {
	tag, err := t.q.Exec(ctx, `
        UPDATE affiliate_balances
        SET pending_payouts = pending_payouts - $2,
            total_paid = total_paid + $2,
            updated_at = now()
        WHERE affiliate_id = $1 AND pending_payouts >= $2`, id, amount)
	return t.guarded(ctx, "debit for payout", id, tag.RowsAffected(), err)
}

func (t *txStore) AdjustClicks(ctx context.Context, id domain.AffiliateID, delta int64) error {
	tag, err := t.q.Exec(ctx, `
        UPDATE affiliate_balances
        SET total_clicks = total_clicks + $2, updated_at = now()
        WHERE affiliate_id = $1 AND total_clicks + $2 >= 0`, id, delta)
	return t.guarded(ctx, "adjust clicks", id, tag.RowsAffected(), err)
}

func (t *txStore) InsertPayout(ctx context.Context, p *domain.PayoutRecord) error {
	_, err := t.q.Exec(ctx, `
        INSERT INTO payouts (id, affiliate_id, amount, currency, status, method, transaction_id,
                             notes, processed_by, created_at, completed_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		p.ID, p.AffiliateID, p.Amount, p.Currency, p.Status, p.Method, p.TransactionID,
		p.Notes, p.ProcessedBy, p.CreatedAt, p.CompletedAt)
	return classify("insert payout", err)
}

func (t *txStore) InsertAdjustment(ctx context.Context, a *domain.BalanceAdjustment) error {
	_, err := t.q.Exec(ctx, `
        INSERT INTO balance_adjustments (id, affiliate_id, type, delta, reason, processed_by, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		a.ID, a.AffiliateID, a.Type, a.Delta, a.Reason, a.ProcessedBy, a.CreatedAt)
	return classify("insert adjustment", err)
}

// guarded interprets a conditional balance update: no affected row means
// either the affiliate is unknown or the guard rejected the change.
func (t *txStore) guarded(ctx context.Context, op string, id domain.AffiliateID, affected int64, err error) error {
	if err != nil {
		return classify(op, err)
	}
	if affected == 1 {
		return nil
	}
	if err = requireBalance(ctx, t.q, id); err != nil {
		return err
	}
	return eris.Wrapf(domain.ErrInsufficientBalance, "postgres: %s", op)
}

func getBalance(ctx context.Context, q querier, id domain.AffiliateID, lock bool) (*domain.AffiliateBalance, error) {
	query := `SELECT ` + balanceColumns + ` FROM affiliate_balances WHERE affiliate_id = $1`
	if lock {
		query += ` FOR UPDATE`
	}
	b, err := scanBalance(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NewNotFoundError("affiliate", id.String())
	}
	if err != nil {
		return nil, classify("get balance", err)
	}
	return b, nil
}

func requireBalance(ctx context.Context, q querier, id domain.AffiliateID) error {
	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM affiliate_balances WHERE affiliate_id = $1)`, id).Scan(&exists)
	if err != nil {
		return classify("lookup affiliate", err)
	}
	if !exists {
		return domain.NewNotFoundError("affiliate", id.String())
	}
	return nil
}

func scanClick(row pgx.Row) (domain.ClickEvent, error) {
	var c domain.ClickEvent
	err := row.Scan(&c.ClickID, &c.AffiliateID, &c.CampaignID, &c.VisitorID, &c.IPAddress, &c.UserAgent, &c.Referrer,
		&c.CreatedAt, &c.Filtered, &c.FilterReason, &c.Flags, &c.Converted, &c.ConvertedAt)
	return c, err
}

func scanBalance(row pgx.Row) (*domain.AffiliateBalance, error) {
	var (
		b        domain.AffiliateBalance
		tiersRaw []byte
	)
	err := row.Scan(&b.AffiliateID, &b.CommissionRate, &tiersRaw, &b.TotalEarnings, &b.PendingPayouts,
		&b.TotalPaid, &b.TotalClicks, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(tiersRaw) > 0 {
		if err = json.Unmarshal(tiersRaw, &b.CommissionTiers); err != nil {
			return nil, eris.Wrap(err, "postgres: decode commission tiers")
		}
	}
	return &b, nil
}
