// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/flight-search/flight-value-engine/internal/domain"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Timeouts  TimeoutConfig
	Logging   LoggingConfig
	App       AppConfig
	Offers    OffersConfig
	Chart     ChartConfig
	Valuation ValuationConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// TimeoutConfig bounds a single valuation and each upstream call inside it.
type TimeoutConfig struct {
	Evaluation time.Duration `env:"TIMEOUT_EVALUATION" envDefault:"5s"`
	Upstream   time.Duration `env:"TIMEOUT_UPSTREAM" envDefault:"3s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// OffersConfig locates the recorded upstream responses.
type OffersConfig struct {
	MockDir    string `env:"OFFERS_MOCK_DIR" envDefault:"docs/response-mock"`
	MaxResults int    `env:"OFFERS_MAX_RESULTS" envDefault:"50"`
}

// ChartConfig selects the redemption chart store.
type ChartConfig struct {
	Source string `env:"CHART_SOURCE" envDefault:"json"`
	Path   string `env:"CHART_PATH" envDefault:"data/redemption_chart.json"`
}

// ValuationConfig holds the evaluation defaults and the carrier allow-list.
type ValuationConfig struct {
	TopN            int               `env:"VALUATION_TOP_N" envDefault:"5"`
	CabinClass      string            `env:"VALUATION_CABIN_CLASS" envDefault:"ECONOMY"`
	AllowedAirlines map[string]string `env:"ALLOWED_AIRLINES" envSeparator:"," envKeyValSeparator:":" envDefault:"AA:American Airlines,BA:British Airways,SQ:Singapore Airlines,TG:Thai Airways,TK:Turkish Airlines,LH:Lufthansa"`
}

// MaxTopN bounds VALUATION_TOP_N and the per-request topN.
const MaxTopN = 50

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

func (c *Config) validate() error {
	validators := []func() error{
		c.Server.validate,
		c.Timeouts.validate,
		c.Logging.validate,
		c.App.validate,
		c.Offers.validate,
		c.Chart.validate,
		c.Valuation.validate,
	}
	for _, v := range validators {
		if err := v(); err != nil {
			return err
		}
	}
	return nil
}

func (s ServerConfig) validate() error {
	if s.Port < 1 || s.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", s.Port)
	}
	if s.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if s.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	return nil
}

func (t TimeoutConfig) validate() error {
	if t.Evaluation <= 0 {
		return fmt.Errorf("TIMEOUT_EVALUATION must be positive")
	}
	if t.Upstream <= 0 {
		return fmt.Errorf("TIMEOUT_UPSTREAM must be positive")
	}
	if t.Upstream >= t.Evaluation {
		return fmt.Errorf("TIMEOUT_UPSTREAM (%s) should be less than TIMEOUT_EVALUATION (%s)", t.Upstream, t.Evaluation)
	}
	return nil
}

func (l LoggingConfig) validate() error {
	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", l.Level)
	}
	switch l.Format {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", l.Format)
	}
	return nil
}

func (a AppConfig) validate() error {
	switch a.Env {
	case "development", "staging", "production":
		return nil
	}
	return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", a.Env)
}

func (o OffersConfig) validate() error {
	if strings.TrimSpace(o.MockDir) == "" {
		return fmt.Errorf("OFFERS_MOCK_DIR is required")
	}
	if o.MaxResults < 1 || o.MaxResults > domain.MaxMaxResults {
		return fmt.Errorf("OFFERS_MAX_RESULTS must be between 1 and %d, got %d", domain.MaxMaxResults, o.MaxResults)
	}
	return nil
}

func (c ChartConfig) validate() error {
	switch strings.ToLower(c.Source) {
	case "json", "sqlite":
	default:
		return fmt.Errorf("CHART_SOURCE must be one of: json, sqlite; got %q", c.Source)
	}
	if strings.TrimSpace(c.Path) == "" {
		return fmt.Errorf("CHART_PATH is required")
	}
	return nil
}

func (v ValuationConfig) validate() error {
	if v.TopN < 1 || v.TopN > MaxTopN {
		return fmt.Errorf("VALUATION_TOP_N must be between 1 and %d, got %d", MaxTopN, v.TopN)
	}
	if !domain.IsValidCabinClass(v.CabinClass) {
		return fmt.Errorf("VALUATION_CABIN_CLASS must be one of: ECONOMY, PREMIUM_ECONOMY, BUSINESS, FIRST; got %q", v.CabinClass)
	}
	if len(v.AllowedAirlines) == 0 {
		return fmt.Errorf("ALLOWED_AIRLINES must list at least one airline")
	}
	for code := range v.AllowedAirlines {
		code = strings.TrimSpace(code)
		if len(code) != 2 {
			return fmt.Errorf("ALLOWED_AIRLINES codes must be 2-character IATA codes, got %q", code)
		}
	}
	return nil
}

// AllowList builds the carrier allow-list from ALLOWED_AIRLINES.
func (v ValuationConfig) AllowList() domain.AllowList {
	return domain.NewAllowList(v.AllowedAirlines)
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
