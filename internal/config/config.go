package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port           string   `mapstructure:"PORT"`
	Env            string   `mapstructure:"ENV"`
	DatabaseURL    string   `mapstructure:"DATABASE_URL"`
	DBMaxConns     int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns     int32    `mapstructure:"DB_MIN_CONNS"`
	CORSOrigins    []string `mapstructure:"CORS_ORIGINS"`
	RateLimitRPS   float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int      `mapstructure:"RATE_LIMIT_BURST"`

	// Normalization engine tuning. The critical margin factor is a clinical
	// parameter: a value below refLow*(1-f) or above refHigh*(1+f) escalates
	// a LOW/HIGH flag to CRITICAL_LOW/CRITICAL_HIGH.
	CriticalMarginFactor float64 `mapstructure:"CRITICAL_MARGIN_FACTOR"`
	FuzzyMatchThreshold  float64 `mapstructure:"FUZZY_MATCH_THRESHOLD"`
	FuzzyMatchMargin     float64 `mapstructure:"FUZZY_MATCH_MARGIN"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT_RPS", 100)
	v.SetDefault("RATE_LIMIT_BURST", 200)
	v.SetDefault("CRITICAL_MARGIN_FACTOR", 0.40)
	v.SetDefault("FUZZY_MATCH_THRESHOLD", 0.82)
	v.SetDefault("FUZZY_MATCH_MARGIN", 0.05)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("RATE_LIMIT_RPS")
	v.BindEnv("RATE_LIMIT_BURST")
	v.BindEnv("CRITICAL_MARGIN_FACTOR")
	v.BindEnv("FUZZY_MATCH_THRESHOLD")
	v.BindEnv("FUZZY_MATCH_MARGIN")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction returns true when the server is configured for production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Validate checks that the engine tuning parameters are in range. These are
// clinical parameters; an out-of-range value must fail at startup, not at
// classification time.
func (c *Config) Validate() error {
	if c.CriticalMarginFactor < 0 || c.CriticalMarginFactor >= 1 {
		return fmt.Errorf("CRITICAL_MARGIN_FACTOR must be in [0, 1), got %v", c.CriticalMarginFactor)
	}
	if c.FuzzyMatchThreshold <= 0 || c.FuzzyMatchThreshold > 1 {
		return fmt.Errorf("FUZZY_MATCH_THRESHOLD must be in (0, 1], got %v", c.FuzzyMatchThreshold)
	}
	if c.FuzzyMatchMargin < 0 || c.FuzzyMatchMargin > 0.5 {
		return fmt.Errorf("FUZZY_MATCH_MARGIN must be in [0, 0.5], got %v", c.FuzzyMatchMargin)
	}
	return nil
}
