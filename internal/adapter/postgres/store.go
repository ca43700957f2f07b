package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rotisserie/eris"

	"affiliate-ledger/internal/core/domain"
	"affiliate-ledger/internal/core/port"
)

// SQLSTATE codes the store reacts to.
const (
	codeUniqueViolation      = "23505"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// maxTxAttempts bounds how often a transaction aborted by a serialization
// conflict is replayed before the conflict is reported as a persistence
// failure.
const maxTxAttempts = 3

// DB is the part of *pgxpool.Pool the store needs.
type DB interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store implements port.Store on PostgreSQL.
type Store struct {
	db DB
}

var _ port.Store = (*Store)(nil)

// NewStore returns a store over db, usually a *pgxpool.Pool.
func NewStore(db DB) *Store {
	return &Store{db: db}
}

// WithinTx runs fn in a serializable transaction. fn is replayed when
// PostgreSQL aborts the transaction with a serialization failure, so the
// losing side of a race re-reads the committed state and decides again.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, tx port.Tx) error) error {
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = s.runTx(ctx, fn)
		if !retryable(err) || ctx.Err() != nil {
			break
		}
	}
	return classify("transaction", err)
}

func (s *Store) runTx(ctx context.Context, fn func(ctx context.Context, tx port.Tx) error) (err error) {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return eris.Wrap(err, "postgres: begin")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else if err = tx.Commit(ctx); err != nil {
			err = eris.Wrap(err, "postgres: commit")
		}
	}()
	return fn(ctx, &txStore{q: tx})
}

// GetBalance reads a balance without locking it.
func (s *Store) GetBalance(ctx context.Context, id domain.AffiliateID) (*domain.AffiliateBalance, error) {
	return getBalance(ctx, s.db, id, false)
}

// ListRevenue returns one page of an affiliate's revenue records.
func (s *Store) ListRevenue(ctx context.Context, id domain.AffiliateID, page domain.Page) (domain.PageResult[domain.RevenueRecord], error) {
	res := domain.PageResult[domain.RevenueRecord]{Page: page.Number, Size: page.Size, Items: []domain.RevenueRecord{}}
	if err := requireBalance(ctx, s.db, id); err != nil {
		return res, err
	}
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM revenue_records WHERE affiliate_id = $1`, id).Scan(&res.Total); err != nil {
		return res, classify("count revenue", err)
	}
	rows, err := s.db.Query(ctx, `
        SELECT id, affiliate_id, campaign_id, click_id, conversion_click_id, amount,
               commission_amount, currency, status, source, weight, created_at
        FROM revenue_records
        WHERE affiliate_id = $1
        ORDER BY created_at DESC, id
        LIMIT $2 OFFSET $3`, id, page.Size, page.Offset())
	if err != nil {
		return res, classify("list revenue", err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.RevenueRecord, error) {
		var r domain.RevenueRecord
		err := row.Scan(&r.ID, &r.AffiliateID, &r.CampaignID, &r.ClickID, &r.ConversionClickID, &r.Amount,
			&r.CommissionAmount, &r.Currency, &r.Status, &r.Source, &r.Weight, &r.CreatedAt)
		return r, err
	})
	if err != nil {
		return res, classify("list revenue", err)
	}
	res.Items = append(res.Items, items...)
	return res, nil
}

// ListPayouts returns one page of payouts matching filter.
func (s *Store) ListPayouts(ctx context.Context, filter domain.PayoutFilter, page domain.Page) (domain.PageResult[domain.PayoutRecord], error) {
	res := domain.PageResult[domain.PayoutRecord]{Page: page.Number, Size: page.Size, Items: []domain.PayoutRecord{}}

	var (
		conds []string
		args  []any
	)
	if filter.AffiliateID != nil {
		args = append(args, *filter.AffiliateID)
		conds = append(conds, fmt.Sprintf("affiliate_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM payouts `+where, args...).Scan(&res.Total); err != nil {
		return res, classify("count payouts", err)
	}
	args = append(args, page.Size, page.Offset())
	query := fmt.Sprintf(`
        SELECT id, affiliate_id, amount, currency, status, method, transaction_id,
               notes, processed_by, created_at, completed_at
        FROM payouts
        %s
        ORDER BY created_at DESC, id
        LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return res, classify("list payouts", err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PayoutRecord, error) {
		var p domain.PayoutRecord
		err := row.Scan(&p.ID, &p.AffiliateID, &p.Amount, &p.Currency, &p.Status, &p.Method, &p.TransactionID,
			&p.Notes, &p.ProcessedBy, &p.CreatedAt, &p.CompletedAt)
		return p, err
	})
	if err != nil {
		return res, classify("list payouts", err)
	}
	res.Items = append(res.Items, items...)
	return res, nil
}

// ClickStats aggregates clicks created in [From, To).
func (s *Store) ClickStats(ctx context.Context, req domain.ClickStatsReq) (*domain.ClickStats, error) {
	args := []any{req.From, req.To}
	where := "created_at >= $1 AND created_at < $2"
	if req.AffiliateID != nil {
		args = append(args, *req.AffiliateID)
		where += fmt.Sprintf(" AND affiliate_id = $%d", len(args))
	}
	if req.CampaignID != "" {
		args = append(args, req.CampaignID)
		where += fmt.Sprintf(" AND campaign_id = $%d", len(args))
	}

	stats := &domain.ClickStats{ByReason: map[domain.FilterReason]int64{}}
	err := s.db.QueryRow(ctx, `
        SELECT count(*),
               count(*) FILTER (WHERE NOT filtered),
               count(*) FILTER (WHERE filtered),
               count(*) FILTER (WHERE converted)
        FROM clicks WHERE `+where, args...).
		Scan(&stats.Total, &stats.Accepted, &stats.Filtered, &stats.Converted)
	if err != nil {
		return nil, classify("click stats", err)
	}

	rows, err := s.db.Query(ctx, `
        SELECT filter_reason, count(*)
        FROM clicks WHERE filtered AND `+where+`
        GROUP BY filter_reason`, args...)
	if err != nil {
		return nil, classify("click stats by reason", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			reason domain.FilterReason
			n      int64
		)
		if err = rows.Scan(&reason, &n); err != nil {
			return nil, classify("click stats by reason", err)
		}
		stats.ByReason[reason] = n
	}
	if err = rows.Err(); err != nil {
		return nil, classify("click stats by reason", err)
	}
	return stats, nil
}

func retryable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && (pgErr.Code == codeSerializationFailure || pgErr.Code == codeDeadlockDetected)
}

// classify maps driver errors onto the domain taxonomy. Errors that already
// belong to it pass through unchanged.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	for _, known := range []error{
		domain.ErrValidation, domain.ErrNotFound, domain.ErrAlreadyProcessed,
		domain.ErrInsufficientBalance, domain.ErrPersistence,
	} {
		if errors.Is(err, known) {
			return err
		}
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation {
		return eris.Wrapf(domain.ErrAlreadyProcessed, "postgres: %s: %s", op, pgErr.ConstraintName)
	}
	return &domain.PersistenceError{Op: op, Err: eris.Wrap(err, "postgres: "+op)}
}
