package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/rotisserie/eris"

	"affiliate-ledger/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// SeedDemo loads demo affiliates and clicks on startup.
	SeedDemo bool `env:"SEED_DEMO" envDefault:"false"`

	HTTP        configs.HTTP        `envPrefix:"HTTP_"`
	Log         configs.Logger      `envPrefix:"LOG_"`
	Psql        configs.Postgres    `envPrefix:"PSQL_"`
	Storage     configs.Storage     `envPrefix:"STORAGE_"`
	Attribution configs.Attribution `envPrefix:"ATTRIBUTION_"`
	Fraud       configs.Fraud       `envPrefix:"FRAUD_"`
	Ledger      configs.Ledger      `envPrefix:"LEDGER_"`
}

// Load reads configuration from environment variables into a Config and
// validates the sections that can be checked without I/O.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, eris.Wrap(err, "config: parse environment")
	}
	if err := cfg.Storage.Validate(); err != nil {
		return cfg, eris.Wrap(err, "config: storage")
	}
	if err := cfg.Ledger.Validate(); err != nil {
		return cfg, eris.Wrap(err, "config: ledger")
	}
	if _, err := cfg.Attribution.Settings(); err != nil {
		return cfg, eris.Wrap(err, "config: attribution")
	}
	return cfg, nil
}
