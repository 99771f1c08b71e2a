// Package config builds the single configuration value the process reads
// at startup. Nothing re-reads configuration mid-request.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"nanoconsult/internal/models"
	"nanoconsult/internal/pricing"
)

// TelegramConfig covers the bot transport.
type TelegramConfig struct {
	Token              string `yaml:"token" env:"BOT_TOKEN"`
	AdminChatID        int64  `yaml:"adminChatId" env:"ADMIN_CHAT_ID"`
	APIBaseURL         string `yaml:"apiBaseUrl" env:"BOT_API_BASE_URL"`
	PollTimeoutSeconds int    `yaml:"pollTimeoutSeconds" env:"BOT_POLL_TIMEOUT"`
}

// PricingConfig carries every coefficient of the pricing engine.
type PricingConfig struct {
	RVSPricePerML         float64 `yaml:"rvsPricePerMl" env:"RVS_PRICE_PER_ML"`
	AccelPricePerML       float64 `yaml:"accelPricePerMl" env:"ACCEL_PRICE_PER_ML"`
	MarkupCoefficient     float64 `yaml:"markupCoef" env:"MARKUP_COEF"`
	RVSDosePerLiterEngine float64 `yaml:"rvsDoseEngine" env:"RVS_DOSE_ML_PER_L_ENGINE"`
	AccelDosePerLiterOil  float64 `yaml:"accelDoseOil" env:"ACCEL_DOSE_ML_PER_L_OIL"`
	LaborPerCylinder      float64 `yaml:"laborPerCylinder" env:"WORK_PER_CYL"`
	LaborEngine           float64 `yaml:"laborEngine" env:"WORK_BASE_ENGINE"`
	LaborGearboxManual    float64 `yaml:"laborGearboxManual" env:"WORK_BASE_MANUAL"`
	LaborGearboxAuto      float64 `yaml:"laborGearboxAuto" env:"WORK_BASE_AUTO"`
	LaborCVT              float64 `yaml:"laborCvt" env:"WORK_BASE_CVT"`
	LaborPowerSteering    float64 `yaml:"laborPowerSteering" env:"WORK_BASE_PS"`
	HeavyEngineThreshold  float64 `yaml:"heavyEngineThreshold" env:"HEAVY_ENGINE_THRESHOLD_L"`
	HeavyEngineCoef       float64 `yaml:"heavyEngineCoef" env:"HEAVY_ENGINE_COEF"`
	ShowPriceToClient     bool    `yaml:"showPriceToClient" env:"SHOW_PRICE_TO_CLIENT"`
}

// DatabaseConfig selects record persistence. With an empty DSN records
// fall back to JSON files under Applications.Dir.
type DatabaseConfig struct {
	DSN string `yaml:"dsn" env:"POSTGRES_DSN"`
}

// ApplicationsConfig is the file-store fallback location.
type ApplicationsConfig struct {
	Dir string `yaml:"dir" env:"APPLICATIONS_DIR"`
}

// RedisConfig enables session snapshots when Addr is set.
type RedisConfig struct {
	Addr       string `yaml:"addr" env:"REDIS_ADDR"`
	Password   string `yaml:"password" env:"REDIS_PASSWORD"`
	TTLSeconds int    `yaml:"ttlSeconds" env:"REDIS_SESSION_TTL"`
}

// OperatorConfig covers the operator feed endpoint.
type OperatorConfig struct {
	ListenAddr string `yaml:"listenAddr" env:"OPERATOR_LISTEN_ADDR"`
	FeedSecret string `yaml:"feedSecret" env:"OPERATOR_FEED_SECRET"`
}

// Config is the process configuration.
type Config struct {
	Telegram     TelegramConfig     `yaml:"telegram"`
	Pricing      PricingConfig      `yaml:"pricing"`
	Database     DatabaseConfig     `yaml:"database"`
	Applications ApplicationsConfig `yaml:"applications"`
	Redis        RedisConfig        `yaml:"redis"`
	Operator     OperatorConfig     `yaml:"operator"`
}

// Load builds the configuration: defaults, optional YAML file, env
// overrides, then validation. The bot token is the only hard requirement.
func Load() (*Config, error) {
	cfg := &Config{
		Telegram: TelegramConfig{
			APIBaseURL:         "https://api.telegram.org",
			PollTimeoutSeconds: 30,
		},
		Pricing: PricingConfig{
			RVSPricePerML:         70,
			AccelPricePerML:       30,
			MarkupCoefficient:     2.0,
			RVSDosePerLiterEngine: 10.0,
			AccelDosePerLiterOil:  2.5,
			LaborPerCylinder:      1000,
			LaborEngine:           3000,
			LaborGearboxManual:    5000,
			LaborGearboxAuto:      6000,
			LaborCVT:              6500,
			LaborPowerSteering:    3000,
			HeavyEngineThreshold:  8.0,
			HeavyEngineCoef:       1.5,
		},
		Applications: ApplicationsConfig{
			Dir: "applications",
		},
		Redis: RedisConfig{
			TTLSeconds: 86400,
		},
		Operator: OperatorConfig{
			ListenAddr: ":8085",
		},
	}

	if err := hydrate(cfg); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.Telegram.Token) == "" {
		return nil, errors.New("config: bot token required")
	}
	if cfg.Pricing.MarkupCoefficient <= 0 {
		return nil, fmt.Errorf("config: markup coefficient must be positive, got %v", cfg.Pricing.MarkupCoefficient)
	}
	return cfg, nil
}

// PricingParams converts the configuration into the engine's parameter
// value.
func (c *Config) PricingParams() pricing.Params {
	return pricing.Params{
		RVSPricePerML:         c.Pricing.RVSPricePerML,
		AccelPricePerML:       c.Pricing.AccelPricePerML,
		MarkupCoefficient:     c.Pricing.MarkupCoefficient,
		RVSDosePerLiterEngine: c.Pricing.RVSDosePerLiterEngine,
		AccelDosePerLiterOil:  c.Pricing.AccelDosePerLiterOil,
		LaborPerCylinder:      c.Pricing.LaborPerCylinder,
		BaseLaborCost: map[models.AggregateType]float64{
			models.AggregateEngine:        c.Pricing.LaborEngine,
			models.AggregateGearboxManual: c.Pricing.LaborGearboxManual,
			models.AggregateGearboxAuto:   c.Pricing.LaborGearboxAuto,
			models.AggregateCVT:           c.Pricing.LaborCVT,
			models.AggregatePowerSteering: c.Pricing.LaborPowerSteering,
		},
		HeavyEngineThresholdLiters: c.Pricing.HeavyEngineThreshold,
		HeavyEngineCoefficient:     c.Pricing.HeavyEngineCoef,
	}
}

// SessionTTL returns the snapshot TTL as a duration.
func (c *Config) SessionTTL() time.Duration {
	if c.Redis.TTLSeconds <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(c.Redis.TTLSeconds) * time.Second
}

// PollTimeout returns the long-poll window.
func (c *Config) PollTimeout() time.Duration {
	if c.Telegram.PollTimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.Telegram.PollTimeoutSeconds) * time.Second
}
