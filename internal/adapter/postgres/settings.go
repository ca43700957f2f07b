package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"affiliate-ledger/internal/core/domain"
)

// LoadSettings returns the single persisted settings row, or nil.
func (s *Store) LoadSettings(ctx context.Context) (*domain.AttributionSettings, error) {
	var (
		out           domain.AttributionSettings
		cookieSeconds int64
	)
	err := s.db.QueryRow(ctx, `
        SELECT model, window_value, window_unit, cookie_expiry_seconds, multiple_touch_sessions
        FROM attribution_settings WHERE id = 1`).
		Scan(&out.Model, &out.Window.Value, &out.Window.Unit, &cookieSeconds, &out.MultipleTouchSessions)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, classify("load settings", err)
	}
	out.CookieExpiry = time.Duration(cookieSeconds) * time.Second
	return &out, nil
}

// SaveSettings upserts the settings row.
func (s *Store) SaveSettings(ctx context.Context, settings domain.AttributionSettings) error {
	_, err := s.db.Exec(ctx, `
        INSERT INTO attribution_settings (id, model, window_value, window_unit, cookie_expiry_seconds, multiple_touch_sessions, updated_at)
        VALUES (1, $1, $2, $3, $4, $5, now())
        ON CONFLICT (id) DO UPDATE
        SET model = EXCLUDED.model,
            window_value = EXCLUDED.window_value,
            window_unit = EXCLUDED.window_unit,
            cookie_expiry_seconds = EXCLUDED.cookie_expiry_seconds,
            multiple_touch_sessions = EXCLUDED.multiple_touch_sessions,
            updated_at = now()`,
		settings.Model, settings.Window.Value, settings.Window.Unit,
		int64(settings.CookieExpiry/time.Second), settings.MultipleTouchSessions)
	return classify("save settings", err)
}
