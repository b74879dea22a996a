package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"competitoranalyzer/internal/log"
	"competitoranalyzer/internal/util"
)

const (
	PORT                = "PORT"
	METRICS_PORT        = "METRICS_PORT"
	IS_DEV              = "IS_DEV"
	PPROF_HOST          = "PPROF_HOST"
	BASIC_AUTH_USER     = "BASIC_AUTH_USER"
	BASIC_AUTH_PASS     = "BASIC_AUTH_PASS"
	FETCH_TIMEOUT       = "FETCH_TIMEOUT"
	MAX_PAGE_BYTES      = "MAX_PAGE_BYTES"
	CACHE_TTL           = "CACHE_TTL"
	COMPARE_CONCURRENCY = "COMPARE_CONCURRENCY"
	MAX_COMPARE_URLS    = "MAX_COMPARE_URLS"
	RATE_LIMIT_RPS      = "RATE_LIMIT_RPS"
	RATE_LIMIT_BURST    = "RATE_LIMIT_BURST"
	TRUSTED_PROXIES     = "TRUSTED_PROXIES"
	FEEDBACK_FILE       = "FEEDBACK_FILE"
)

type Config struct {
	Port               string        `mapstructure:"PORT"`
	MetricsPort        string        `mapstructure:"METRICS_PORT"`
	IsDev              bool          `mapstructure:"IS_DEV"`
	PprofHost          string        `mapstructure:"PPROF_HOST"`
	BasicAuthUser      string        `mapstructure:"BASIC_AUTH_USER"`
	BasicAuthPass      string        `mapstructure:"BASIC_AUTH_PASS"`
	FetchTimeout       time.Duration `mapstructure:"FETCH_TIMEOUT"`
	MaxPageBytes       int64         `mapstructure:"MAX_PAGE_BYTES"`
	CacheTTL           time.Duration `mapstructure:"CACHE_TTL"`
	CompareConcurrency int           `mapstructure:"COMPARE_CONCURRENCY"`
	MaxCompareURLs     int           `mapstructure:"MAX_COMPARE_URLS"`
	RateLimitRPS       float64       `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst     int           `mapstructure:"RATE_LIMIT_BURST"`
	TrustedProxies     []string      `mapstructure:"TRUSTED_PROXIES"`
	FeedbackFile       string        `mapstructure:"FEEDBACK_FILE"`
}

var AppConfig *Config

var ErrMissingBasicAuth = errors.New("BASIC_AUTH_USER and BASIC_AUTH_PASS must be set")

// Load reads the env file at path (if it exists), overlays the process
// environment and applies defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	// every key has to be known to viper for AutomaticEnv to reach Unmarshal
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			if _, statErr := os.Stat(path); statErr == nil {
				return nil, fmt.Errorf("failed to read %s: %w", path, err)
			}
			log.Logger.Warn("env file not found, using environment only", zap.String("path", path))
		}
	}

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(PORT, "8080")
	v.SetDefault(METRICS_PORT, "8081")
	v.SetDefault(IS_DEV, false)
	v.SetDefault(PPROF_HOST, ":6060")
	v.SetDefault(BASIC_AUTH_USER, "")
	v.SetDefault(BASIC_AUTH_PASS, "")
	v.SetDefault(FETCH_TIMEOUT, 30*time.Second)
	v.SetDefault(MAX_PAGE_BYTES, int64(10<<20))
	v.SetDefault(CACHE_TTL, 30*time.Minute)
	v.SetDefault(COMPARE_CONCURRENCY, 3)
	v.SetDefault(MAX_COMPARE_URLS, 5)
	v.SetDefault(RATE_LIMIT_RPS, 1.0)
	v.SetDefault(RATE_LIMIT_BURST, 3)
	// comma separated IPs or CIDRs allowed to set X-Forwarded-For
	v.SetDefault(TRUSTED_PROXIES, []string{})
	v.SetDefault(FEEDBACK_FILE, "data/feedback.json")
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	if c.BasicAuthUser == "" || c.BasicAuthPass == "" {
		return ErrMissingBasicAuth
	}
	if c.CompareConcurrency < 1 {
		return fmt.Errorf("COMPARE_CONCURRENCY must be positive, got %d", c.CompareConcurrency)
	}
	if c.MaxCompareURLs < 1 {
		return fmt.Errorf("MAX_COMPARE_URLS must be positive, got %d", c.MaxCompareURLs)
	}
	if _, err := util.ParseTrustedProxies(c.TrustedProxies); err != nil {
		return fmt.Errorf("TRUSTED_PROXIES: %w", err)
	}
	return nil
}

func LoadEnv() {
	cfg, err := Load(".env")
	if err != nil {
		log.Logger.Fatal("Failed to load config", zap.Error(err))
	}

	if err := cfg.Validate(); err != nil {
		log.Logger.Fatal("Invalid config", zap.Error(err))
	}

	AppConfig = cfg
}
