package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"regexp"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Config holds the whole application configuration.
// It is populated from environment variables (optionally via .env).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Catalog CatalogConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, test, staging, production
	Port        string
	Version     string
	LogLevel    string // zerolog level name
}

type HTTPConfig struct {
	StaticDir        string  // storefront files served at /, skipped if missing
	FeedbackRedirect string  // where POST /api/feedbacks sends the browser
	RateLimitRPS     float64 // 0 disables rate limiting
	RateLimitBurst   int
	// TrustedProxies lists the IPs or CIDRs whose forwarding headers are
	// believed. Empty means the peer address is always the client.
	TrustedProxies []string
}

type CatalogConfig struct {
	SeedDefaults bool   // register the built-in html5/javascript shelves
	SeedFile     string // optional .xlsx imported at startup
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Bookstore Catalog"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "3000"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			StaticDir:        getEnv("STATIC_DIR", "files"),
			FeedbackRedirect: getEnv("FEEDBACK_REDIRECT", "/index.html"),
			RateLimitRPS:     getEnvFloat("RATE_LIMIT_RPS", 20),
			RateLimitBurst:   getEnvInt("RATE_LIMIT_BURST", 40),
			TrustedProxies:   getEnvList("TRUSTED_PROXIES"),
		},
		Catalog: CatalogConfig{
			SeedDefaults: getEnvBool("CATALOG_SEED_DEFAULTS", true),
			SeedFile:     getEnv("CATALOG_SEED_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

var workbookPath = regexp.MustCompile(`(?i)\.xlsx$`)

// Validate checks that the config is usable.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(&c.App,
		validation.Field(&c.App.Name, validation.Required),
		validation.Field(&c.App.Environment,
			validation.Required,
			validation.In("development", "test", "staging", "production"),
		),
		validation.Field(&c.App.Port, validation.Required, is.Port),
		validation.Field(&c.App.LogLevel,
			validation.In("trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"),
		),
	); err != nil {
		return fmt.Errorf("app: %w", err)
	}

	if err := validation.ValidateStruct(&c.HTTP,
		validation.Field(&c.HTTP.FeedbackRedirect, validation.Required),
		validation.Field(&c.HTTP.RateLimitRPS, validation.Min(0.0)),
		validation.Field(&c.HTTP.RateLimitBurst,
			validation.When(c.HTTP.RateLimitRPS > 0, validation.Required, validation.Min(1)),
		),
		validation.Field(&c.HTTP.TrustedProxies, validation.Each(validation.By(ipOrCIDR))),
	); err != nil {
		return fmt.Errorf("http: %w", err)
	}

	if err := validation.ValidateStruct(&c.Catalog,
		validation.Field(&c.Catalog.SeedFile,
			validation.When(c.Catalog.SeedFile != "",
				validation.Match(workbookPath).Error("must be an .xlsx workbook"),
			),
		),
	); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	return nil
}

func ipOrCIDR(value interface{}) error {
	s, _ := value.(string)
	if net.ParseIP(s) != nil {
		return nil
	}
	if _, _, err := net.ParseCIDR(s); err == nil {
		return nil
	}
	return errors.New("must be an IP address or CIDR")
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvList splits a comma separated value, dropping blank entries.
func getEnvList(key string) []string {
	var values []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}
