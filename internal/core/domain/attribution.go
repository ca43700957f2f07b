package domain

import "time"

// AttributionModel decides how credit for a conversion is spread over a
// principal's eligible clicks.
type AttributionModel string

const (
	FirstClick AttributionModel = "first_click"
	LastClick  AttributionModel = "last_click"
	Linear     AttributionModel = "linear"
	TimeDecay  AttributionModel = "time_decay"
)

// Valid reports whether m is a known model.
func (m AttributionModel) Valid() bool {
	switch m {
	case FirstClick, LastClick, Linear, TimeDecay:
		return true
	}
	return false
}

// WindowUnit is the unit of an attribution window.
type WindowUnit string

const (
	UnitHours  WindowUnit = "hours"
	UnitDays   WindowUnit = "days"
	UnitMonths WindowUnit = "months"
)

// AttributionWindow is the maximum click age still eligible for credit.
type AttributionWindow struct {
	Value int        `json:"value"`
	Unit  WindowUnit `json:"unit"`
}

// Start returns the oldest instant still inside the window ending at now.
// Days and months follow the calendar in now's location.
func (w AttributionWindow) Start(now time.Time) time.Time {
	switch w.Unit {
	case UnitHours:
		return now.Add(-time.Duration(w.Value) * time.Hour)
	case UnitMonths:
		return now.AddDate(0, -w.Value, 0)
	default:
		return now.AddDate(0, 0, -w.Value)
	}
}

// Validate checks the window is positive and uses a known unit.
func (w AttributionWindow) Validate() error {
	if w.Value <= 0 {
		return NewValidationError("click_attribution_window.value", "must be positive")
	}
	switch w.Unit {
	case UnitHours, UnitDays, UnitMonths:
		return nil
	}
	return NewValidationError("click_attribution_window.unit", "must be hours, days or months")
}

// AttributionSettings is the process-wide attribution policy. Changes apply
// to conversions resolved after the change only.
type AttributionSettings struct {
	Model                 AttributionModel  `json:"attribution_model"`
	Window                AttributionWindow `json:"click_attribution_window"`
	CookieExpiry          time.Duration     `json:"cookie_expiry"`
	MultipleTouchSessions bool              `json:"multiple_touch_sessions"`
}

// Validate checks every field of s.
func (s AttributionSettings) Validate() error {
	if !s.Model.Valid() {
		return NewValidationError("attribution_model", "must be first_click, last_click, linear or time_decay")
	}
	if err := s.Window.Validate(); err != nil {
		return err
	}
	if s.CookieExpiry < 0 {
		return NewValidationError("cookie_expiry", "must not be negative")
	}
	return nil
}

// Credit is one resolved share of a conversion. Weights of a resolution sum
// to 1.
type Credit struct {
	ClickID ClickID
	Weight  float64
}
