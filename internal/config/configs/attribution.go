package configs

import (
	"time"

	"affiliate-ledger/internal/core/domain"
)

// Attribution holds the attribution settings used until an administrator
// saves different ones.
type Attribution struct {
	Model                 string        `env:"MODEL" envDefault:"last_click"`
	WindowValue           int           `env:"WINDOW_VALUE" envDefault:"30"`
	WindowUnit            string        `env:"WINDOW_UNIT" envDefault:"days"`
	CookieExpiry          time.Duration `env:"COOKIE_EXPIRY" envDefault:"720h"`
	MultipleTouchSessions bool          `env:"MULTIPLE_TOUCH_SESSIONS" envDefault:"false"`
}

// Settings converts the section into validated domain settings.
func (c Attribution) Settings() (domain.AttributionSettings, error) {
	s := domain.AttributionSettings{
		Model:                 domain.AttributionModel(c.Model),
		Window:                domain.AttributionWindow{Value: c.WindowValue, Unit: domain.WindowUnit(c.WindowUnit)},
		CookieExpiry:          c.CookieExpiry,
		MultipleTouchSessions: c.MultipleTouchSessions,
	}
	return s, s.Validate()
}
