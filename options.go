package locale

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the environment configuration of an Internationalization.
type Config struct {
	Culture  string `env:"LOCALE_CULTURE" envDefault:"en"`   // default culture, e.g. "ar-QA"
	Currency string `env:"LOCALE_CURRENCY"`                  // ISO 4217 code, empty for the culture's currency
	TimeZone string `env:"LOCALE_TIMEZONE" envDefault:"UTC"` // IANA time zone of parsed and formatted dates
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("locale: load config: %w", err)
	}
	return cfg, nil
}

type options struct {
	culture  string
	currency string
	location *time.Location
	clock    func() time.Time
	logger   *slog.Logger
}

type Option func(*options)

func WithCulture(name string) Option {
	return func(o *options) {
		o.culture = name
	}
}

func WithCurrency(code string) Option {
	return func(o *options) {
		o.currency = code
	}
}

// WithLocation sets the location of baselines and formatted times.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		if loc != nil {
			o.location = loc
		}
	}
}

// WithClock sets the source of the current time, the baseline of parsed dates.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.clock = now
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithConfig applies a Config loaded from the environment.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		if cfg.Culture != "" {
			o.culture = cfg.Culture
		}
		if cfg.Currency != "" {
			o.currency = cfg.Currency
		}
		if loc, err := time.LoadLocation(cfg.TimeZone); err == nil && cfg.TimeZone != "" {
			o.location = loc
		} else if err != nil {
			o.logger.Warn("locale: unknown time zone", "timezone", cfg.TimeZone, "error", err)
		}
	}
}
