package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"stars-converter/internal/core/domain"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Rates  RatesConfig  `mapstructure:"rates"`
	Input  InputConfig  `mapstructure:"input"`
	CORS   CORSConfig   `mapstructure:"cors"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// RatesConfig describes where the token price comes from and the constants
// the rate table is derived from.
type RatesConfig struct {
	Endpoint          string        `mapstructure:"endpoint"`
	Timeout           time.Duration `mapstructure:"timeout"`
	FallbackTokenRate float64       `mapstructure:"fallback_token_rate"` // used whenever the feed fails
	StarsToUSDT       float64       `mapstructure:"stars_to_usdt"`
	CacheTTL          time.Duration `mapstructure:"cache_ttl"`
	RefreshInterval   time.Duration `mapstructure:"refresh_interval"` // 0 = fetch once at startup
}

// InputConfig bounds the amount field and tunes the overflow feedback.
type InputConfig struct {
	MaxValue           float64       `mapstructure:"max_value"`
	MarkerDuration     time.Duration `mapstructure:"marker_duration"`
	VetoMarkerDuration time.Duration `mapstructure:"veto_marker_duration"`
	HapticPatternMS    []int         `mapstructure:"haptic_pattern_ms"`
}

// HapticPattern converts the configured millisecond pattern to durations.
func (i InputConfig) HapticPattern() []time.Duration {
	out := make([]time.Duration, 0, len(i.HapticPatternMS))
	for _, ms := range i.HapticPatternMS {
		out = append(out, time.Duration(ms)*time.Millisecond)
	}
	return out
}

type CORSConfig struct {
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	MaxAge         time.Duration `mapstructure:"max_age"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// A .env file in the working directory is loaded into the process environment
// first. Environment variables override file values. Prefix: CONVERTER_.
// Nested keys use underscore: CONVERTER_RATES_ENDPOINT, CONVERTER_REDIS_HOST, etc.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("rates.endpoint", "https://api.split.tg/buy/ton_rate")
	v.SetDefault("rates.timeout", "5s")
	v.SetDefault("rates.fallback_token_rate", 1.35)
	v.SetDefault("rates.stars_to_usdt", 0.015)
	v.SetDefault("rates.cache_ttl", "10m")
	v.SetDefault("rates.refresh_interval", "0s")
	v.SetDefault("input.max_value", 1_000_000_000)
	v.SetDefault("input.marker_duration", "1s")
	v.SetDefault("input.veto_marker_duration", "500ms")
	v.SetDefault("input.haptic_pattern_ms", []int{100, 50, 100})
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.max_age", "12h")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// CONVERTER_RATES_ENDPOINT -> rates.endpoint
	v.SetEnvPrefix("CONVERTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional; env vars can suffice.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects values the rate table or sanitizer cannot work with.
func (c *Config) Validate() error {
	var errs []error
	if !positiveFinite(c.Rates.StarsToUSDT) {
		errs = append(errs, fmt.Errorf("rates.stars_to_usdt must be positive, got %v", c.Rates.StarsToUSDT))
	}
	if !positiveFinite(c.Rates.FallbackTokenRate) {
		errs = append(errs, fmt.Errorf("rates.fallback_token_rate must be positive, got %v", c.Rates.FallbackTokenRate))
	}
	if positiveFinite(c.Rates.StarsToUSDT) && positiveFinite(c.Rates.FallbackTokenRate) {
		if _, err := domain.BuildRateTable(c.Rates.StarsToUSDT, c.Rates.FallbackTokenRate); err != nil {
			errs = append(errs, fmt.Errorf("rates.fallback_token_rate cannot build a rate table: %w", err))
		}
	}
	if !positiveFinite(c.Input.MaxValue) {
		errs = append(errs, fmt.Errorf("input.max_value must be positive, got %v", c.Input.MaxValue))
	}
	if c.Rates.RefreshInterval < 0 {
		errs = append(errs, fmt.Errorf("rates.refresh_interval must not be negative"))
	}
	return errors.Join(errs...)
}

func positiveFinite(f float64) bool {
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}
