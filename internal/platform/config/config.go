package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/SscSPs/ct_order_jobs/internal/apperrors"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string `validate:"required,numeric"`
	IsProduction bool

	// commercetools API client
	CTPProjectKey   string `validate:"required"`
	CTPClientID     string `validate:"required"`
	CTPClientSecret string `validate:"required"`
	CTPScopes       []string
	CTPAPIURL       string `validate:"required,url"`
	CTPAuthURL      string `validate:"required,url"`

	ExchangeRatesURL  string        `validate:"required,url"`
	HTTPClientTimeout time.Duration `validate:"gt=0"`

	// Order aggregation job
	OrdersSort  []string `validate:"required,min=1"`
	OrdersLimit int      `validate:"gte=0,lte=500"`
	OrdersWhere string

	// Customer jobs
	CustomersSort     []string `validate:"required,min=1"`
	CustomersLimit    int      `validate:"gte=0,lte=500"`
	SegmentCustomerID string   `validate:"required"`
	SegmentFieldName  string   `validate:"required"`
	SegmentValue      string   `validate:"required"`

	// Inbound protection
	SchedulerJWTSecret string
	JobRateLimit       string `validate:"required"`
	CORSAllowedOrigins []string

	PosthogAPIKey string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		Port:         v.GetString("PORT"),
		IsProduction: v.GetBool("IS_PRODUCTION"),

		CTPProjectKey:   v.GetString("CTP_PROJECT_KEY"),
		CTPClientID:     v.GetString("CTP_CLIENT_ID"),
		CTPClientSecret: v.GetString("CTP_CLIENT_SECRET"),
		CTPScopes:       splitList(v.GetString("CTP_SCOPE"), " "),
		CTPAPIURL:       v.GetString("CTP_API_URL"),
		CTPAuthURL:      v.GetString("CTP_AUTH_URL"),

		ExchangeRatesURL: v.GetString("EXCHANGE_RATES_URL"),

		OrdersSort:  splitList(v.GetString("ORDERS_SORT"), ","),
		OrdersLimit: v.GetInt("ORDERS_LIMIT"),
		OrdersWhere: v.GetString("ORDERS_WHERE"),

		CustomersSort:     splitList(v.GetString("CUSTOMERS_SORT"), ","),
		CustomersLimit:    v.GetInt("CUSTOMERS_LIMIT"),
		SegmentCustomerID: v.GetString("SEGMENT_CUSTOMER_ID"),
		SegmentFieldName:  v.GetString("SEGMENT_FIELD_NAME"),
		SegmentValue:      v.GetString("SEGMENT_VALUE"),

		SchedulerJWTSecret: v.GetString("SCHEDULER_JWT_SECRET"),
		JobRateLimit:       v.GetString("JOB_RATE_LIMIT"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS"), ","),

		PosthogAPIKey: v.GetString("POSTHOG_API_KEY"),
	}

	// Load HTTP client timeout (e.g., "10s")
	timeoutStr := v.GetString("HTTP_CLIENT_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 10 * time.Second
		log.Printf("Warning: Invalid value for HTTP_CLIENT_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.HTTPClientTimeout = timeout

	if cfg.SchedulerJWTSecret == "" {
		log.Println("Warning: SCHEDULER_JWT_SECRET not set. Job endpoints accept unauthenticated requests.")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required settings and value ranges.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: invalid configuration: %v", apperrors.ErrValidation, err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("CTP_SCOPE", "")
	v.SetDefault("CTP_API_URL", "https://api.europe-west1.gcp.commercetools.com")
	v.SetDefault("CTP_AUTH_URL", "https://auth.europe-west1.gcp.commercetools.com")
	v.SetDefault("EXCHANGE_RATES_URL", "https://open.er-api.com/v6/latest/USD")
	v.SetDefault("HTTP_CLIENT_TIMEOUT", "10s")
	v.SetDefault("ORDERS_SORT", "lastModifiedAt asc")
	v.SetDefault("ORDERS_LIMIT", 0)
	v.SetDefault("ORDERS_WHERE", "")
	v.SetDefault("CUSTOMERS_SORT", "lastModifiedAt asc")
	v.SetDefault("CUSTOMERS_LIMIT", 0)
	v.SetDefault("SEGMENT_CUSTOMER_ID", "d04d265d-44fb-4cee-8018-260c1ef0e86d")
	v.SetDefault("SEGMENT_FIELD_NAME", "customersegment")
	v.SetDefault("SEGMENT_VALUE", "Gold")
	v.SetDefault("SCHEDULER_JWT_SECRET", "")
	v.SetDefault("JOB_RATE_LIMIT", "60-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("POSTHOG_API_KEY", "")
}

// splitList splits a separated env value, dropping empty items.
func splitList(raw, sep string) []string {
	var out []string
	for _, item := range strings.Split(raw, sep) {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
