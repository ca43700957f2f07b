package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"affiliate-ledger/internal/core/domain"
	"affiliate-ledger/internal/core/port"
)

const aff = domain.AffiliateID("6f1c2b7e-7d36-4a57-9d8e-0c4f1b5a9e01")

var serializable = pgx.TxOptions{IsoLevel: pgx.Serializable}

func newMock(t *testing.T) (pgxmock.PgxPoolIface, *Store) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock, NewStore(mock)
}

func debit(amount domain.Amount) func(context.Context, port.Tx) error {
	return func(ctx context.Context, tx port.Tx) error {
		return tx.DebitForPayout(ctx, aff, amount)
	}
}

func TestDebitForPayoutCommits(t *testing.T) {
	mock, store := newMock(t)

	mock.ExpectBeginTx(serializable)
	mock.ExpectExec("UPDATE affiliate_balances").
		WithArgs(aff, domain.Amount(10000)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	require.NoError(t, store.WithinTx(context.Background(), debit(10000)))
}

func TestDebitForPayoutInsufficientBalance(t *testing.T) {
	mock, store := newMock(t)

	mock.ExpectBeginTx(serializable)
	mock.ExpectExec("UPDATE affiliate_balances").
		WithArgs(aff, domain.Amount(10000)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(aff).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	err := store.WithinTx(context.Background(), debit(10000))
	require.ErrorIs(t, err, domain.ErrInsufficientBalance)
}

func TestDebitForPayoutUnknownAffiliate(t *testing.T) {
	mock, store := newMock(t)

	mock.ExpectBeginTx(serializable)
	mock.ExpectExec("UPDATE affiliate_balances").
		WithArgs(aff, domain.Amount(10000)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(aff).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectRollback()

	err := store.WithinTx(context.Background(), debit(10000))
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDuplicatePayoutTransactionID(t *testing.T) {
	mock, store := newMock(t)

	mock.ExpectBeginTx(serializable)
	mock.ExpectExec("INSERT INTO payouts").
		WillReturnError(&pgconn.PgError{Code: codeUniqueViolation, ConstraintName: "payouts_transaction_id_key"})
	mock.ExpectRollback()

	err := store.WithinTx(context.Background(), func(ctx context.Context, tx port.Tx) error {
		return tx.InsertPayout(ctx, &domain.PayoutRecord{ID: "p1", AffiliateID: aff, Amount: 100, TransactionID: "wire-1"})
	})
	require.ErrorIs(t, err, domain.ErrAlreadyProcessed)
}

func TestSerializationFailureIsReplayed(t *testing.T) {
	mock, store := newMock(t)

	mock.ExpectBeginTx(serializable)
	mock.ExpectExec("UPDATE affiliate_balances").
		WillReturnError(&pgconn.PgError{Code: codeSerializationFailure})
	mock.ExpectRollback()
	mock.ExpectBeginTx(serializable)
	mock.ExpectExec("UPDATE affiliate_balances").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	require.NoError(t, store.WithinTx(context.Background(), debit(100)))
}

func TestSerializationFailureGivesUp(t *testing.T) {
	mock, store := newMock(t)

	for range maxTxAttempts {
		mock.ExpectBeginTx(serializable)
		mock.ExpectExec("UPDATE affiliate_balances").
			WillReturnError(&pgconn.PgError{Code: codeSerializationFailure})
		mock.ExpectRollback()
	}

	err := store.WithinTx(context.Background(), debit(100))
	require.ErrorIs(t, err, domain.ErrPersistence)
}

func TestMarkConvertedTwice(t *testing.T) {
	mock, store := newMock(t)
	clickID := domain.ClickID("9a4f1d2c-5b6e-4c7d-8e9f-0a1b2c3d4e5f")
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectBeginTx(serializable)
	mock.ExpectExec("UPDATE clicks SET converted = true").
		WithArgs(clickID, at).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(clickID).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	err := store.WithinTx(context.Background(), func(ctx context.Context, tx port.Tx) error {
		return tx.MarkConverted(ctx, clickID, at)
	})
	require.ErrorIs(t, err, domain.ErrAlreadyProcessed)
}

func TestGetBalanceDecodesTiers(t *testing.T) {
	mock, store := newMock(t)
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM affiliate_balances WHERE affiliate_id").
		WithArgs(aff).
		WillReturnRows(pgxmock.NewRows([]string{
			"affiliate_id", "commission_rate", "commission_tiers", "total_earnings", "pending_payouts",
			"total_paid", "total_clicks", "created_at", "updated_at",
		}).AddRow(
			aff, decimal.NullDecimal{}, []byte(`[{"min_revenue":"0.00","rate":"0.1"},{"min_revenue":"10000.00","rate":"0.12"}]`),
			domain.Amount(2500000), domain.Amount(2000000), domain.Amount(500000), int64(42), at, at,
		))

	b, err := store.GetBalance(context.Background(), aff)
	require.NoError(t, err)
	require.Len(t, b.CommissionTiers, 2)
	assert.Equal(t, domain.Amount(1000000), b.CommissionTiers[1].MinRevenue)
	assert.True(t, decimal.RequireFromString("0.12").Equal(b.CommissionTiers[1].Rate))
	assert.False(t, b.CommissionRate.Valid)
	assert.Equal(t, int64(42), b.TotalClicks)
}

func TestGetBalanceNotFound(t *testing.T) {
	mock, store := newMock(t)

	mock.ExpectQuery("FROM affiliate_balances WHERE affiliate_id").
		WithArgs(aff).
		WillReturnError(pgx.ErrNoRows)

	_, err := store.GetBalance(context.Background(), aff)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListPayoutsFilters(t *testing.T) {
	mock, store := newMock(t)
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	id := aff

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM payouts WHERE affiliate_id = $1 AND status = $2`)).
		WithArgs(aff, domain.PayoutCompleted).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery(regexp.QuoteMeta(`LIMIT $3 OFFSET $4`)).
		WithArgs(aff, domain.PayoutCompleted, 20, 0).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "affiliate_id", "amount", "currency", "status", "method", "transaction_id",
			"notes", "processed_by", "created_at", "completed_at",
		}).AddRow(
			"p1", aff, domain.Amount(10000), "USD", domain.PayoutCompleted, "manual", "wire-1",
			"", "ops@example.com", at, &at,
		))

	res, err := store.ListPayouts(context.Background(),
		domain.PayoutFilter{AffiliateID: &id, Status: domain.PayoutCompleted},
		domain.Page{}.Normalize())
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Total)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "wire-1", res.Items[0].TransactionID)
	require.NotNil(t, res.Items[0].CompletedAt)
}

func TestLoadSettings(t *testing.T) {
	mock, store := newMock(t)

	mock.ExpectQuery("FROM attribution_settings").
		WillReturnError(pgx.ErrNoRows)
	s, err := store.LoadSettings(context.Background())
	require.NoError(t, err)
	assert.Nil(t, s)

	mock.ExpectQuery("FROM attribution_settings").
		WillReturnRows(pgxmock.NewRows([]string{
			"model", "window_value", "window_unit", "cookie_expiry_seconds", "multiple_touch_sessions",
		}).AddRow(domain.Linear, 7, domain.UnitDays, int64(3600), true))
	s, err = store.LoadSettings(context.Background())
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, domain.Linear, s.Model)
	assert.Equal(t, time.Hour, s.CookieExpiry)
	assert.True(t, s.MultipleTouchSessions)
}

func TestSaveSettings(t *testing.T) {
	mock, store := newMock(t)

	mock.ExpectExec("INSERT INTO attribution_settings").
		WithArgs(domain.TimeDecay, 12, domain.UnitHours, int64(86400), false).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := store.SaveSettings(context.Background(), domain.AttributionSettings{
		Model:        domain.TimeDecay,
		Window:       domain.AttributionWindow{Value: 12, Unit: domain.UnitHours},
		CookieExpiry: 24 * time.Hour,
	})
	require.NoError(t, err)
}
