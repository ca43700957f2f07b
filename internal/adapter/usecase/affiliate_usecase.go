package usecase

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"affiliate-ledger/internal/core/commission"
	"affiliate-ledger/internal/core/domain"
	"affiliate-ledger/internal/core/fraud"
	"affiliate-ledger/internal/core/port"
)

// Options configures an AffiliateUseCase. Zero fields take defaults.
type Options struct {
	// DefaultCurrency is used when a request does not name one.
	DefaultCurrency string
	// DefaultCommissionRate applies to affiliates without tiers or a flat
	// rate. Unset means commission.DefaultRate; a valid zero is kept.
	DefaultCommissionRate decimal.NullDecimal
	// Settings are the attribution settings used until persisted ones are
	// loaded or an administrator replaces them.
	Settings domain.AttributionSettings
	// Classifier gates every incoming click.
	Classifier *fraud.Classifier
	// Now is the clock. Defaults to time.Now in UTC.
	Now func() time.Time
	// NewID generates record ids. Defaults to uuid.NewString.
	NewID func() string
}

// AffiliateUseCase orchestrates the fraud classifier, attribution resolver,
// commission calculator and the balance ledger behind port.AffiliateUseCase.
type AffiliateUseCase struct {
	store      port.Store
	logger     *slog.Logger
	classifier *fraud.Classifier
	calc       commission.Calculator
	currency   string
	now        func() time.Time
	newID      func() string

	settings atomic.Pointer[domain.AttributionSettings]
}

var _ port.AffiliateUseCase = (*AffiliateUseCase)(nil)

// DefaultSettings are the attribution settings used when nothing is
// configured: last click within 30 days.
var DefaultSettings = domain.AttributionSettings{
	Model:        domain.LastClick,
	Window:       domain.AttributionWindow{Value: 30, Unit: domain.UnitDays},
	CookieExpiry: 30 * 24 * time.Hour,
}

// NewAffiliateUseCase creates the use case over store.
func NewAffiliateUseCase(store port.Store, logger *slog.Logger, opts Options) *AffiliateUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Classifier == nil {
		// The built-in rules contain no networks, so this cannot fail.
		opts.Classifier, _ = fraud.NewClassifier(fraud.Rules{})
	}
	if !opts.DefaultCommissionRate.Valid {
		opts.DefaultCommissionRate = decimal.NewNullDecimal(commission.DefaultRate)
	}
	if opts.DefaultCurrency == "" {
		opts.DefaultCurrency = "USD"
	}
	if opts.Now == nil {
		opts.Now = func() time.Time { return time.Now().UTC() }
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	if opts.Settings.Validate() != nil {
		opts.Settings = DefaultSettings
	}

	u := &AffiliateUseCase{
		store:      store,
		logger:     logger,
		classifier: opts.Classifier,
		calc:       commission.NewCalculator(opts.DefaultCommissionRate.Decimal),
		currency:   strings.ToUpper(opts.DefaultCurrency),
		now:        opts.Now,
		newID:      opts.NewID,
	}
	s := opts.Settings
	u.settings.Store(&s)
	return u
}

// LoadSettings activates the persisted attribution settings, if any. Call it
// once at startup.
func (u *AffiliateUseCase) LoadSettings(ctx context.Context) error {
	s, err := u.store.LoadSettings(ctx)
	if err != nil {
		return err
	}
	if s == nil {
		return nil
	}
	if err = s.Validate(); err != nil {
		u.logger.Warn("ignoring invalid persisted attribution settings", slog.Any("error", err))
		return nil
	}
	u.settings.Store(s)
	return nil
}

// AttributionSettings returns the active settings.
func (u *AffiliateUseCase) AttributionSettings(context.Context) domain.AttributionSettings {
	return *u.settings.Load()
}

// UpdateAttributionSettings validates s, persists it and makes it active for
// conversions resolved from now on. Conversions already settled are not
// touched.
func (u *AffiliateUseCase) UpdateAttributionSettings(ctx context.Context, s domain.AttributionSettings) (domain.AttributionSettings, error) {
	if err := s.Validate(); err != nil {
		return domain.AttributionSettings{}, err
	}
	if err := u.store.SaveSettings(ctx, s); err != nil {
		return domain.AttributionSettings{}, err
	}
	u.settings.Store(&s)
	u.logger.Info("attribution settings updated",
		slog.String("model", string(s.Model)),
		slog.Int("window_value", s.Window.Value),
		slog.String("window_unit", string(s.Window.Unit)),
		slog.Bool("multiple_touch_sessions", s.MultipleTouchSessions),
	)
	return s, nil
}

func (u *AffiliateUseCase) currencyOr(c string) string {
	c = strings.ToUpper(strings.TrimSpace(c))
	if c == "" {
		return u.currency
	}
	return c
}

func requireAffiliate(id domain.AffiliateID) error {
	if id == "" {
		return domain.NewValidationError("affiliate_id", "is required")
	}
	return nil
}
