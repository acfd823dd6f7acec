package config_test

import (
	"testing"
	"time"

	"github.com/SscSPs/ct_order_jobs/internal/apperrors"
	"github.com/SscSPs/ct_order_jobs/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CTP_PROJECT_KEY", "my-project")
	t.Setenv("CTP_CLIENT_ID", "client-id")
	t.Setenv("CTP_CLIENT_SECRET", "client-secret")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.IsProduction)
	assert.Equal(t, []string{"lastModifiedAt asc"}, cfg.OrdersSort)
	assert.Equal(t, []string{"lastModifiedAt asc"}, cfg.CustomersSort)
	assert.Equal(t, "https://open.er-api.com/v6/latest/USD", cfg.ExchangeRatesURL)
	assert.Equal(t, 10*time.Second, cfg.HTTPClientTimeout)
	assert.Equal(t, "customersegment", cfg.SegmentFieldName)
	assert.Equal(t, "Gold", cfg.SegmentValue)
	assert.Equal(t, "60-M", cfg.JobRateLimit)
	assert.Empty(t, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("CTP_SCOPE", "view_orders:my-project manage_customers:my-project")
	t.Setenv("ORDERS_SORT", "lastModifiedAt desc, createdAt asc")
	t.Setenv("ORDERS_LIMIT", "100")
	t.Setenv("ORDERS_WHERE", `orderState="Complete"`)
	t.Setenv("HTTP_CLIENT_TIMEOUT", "3s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"view_orders:my-project", "manage_customers:my-project"}, cfg.CTPScopes)
	assert.Equal(t, []string{"lastModifiedAt desc", "createdAt asc"}, cfg.OrdersSort)
	assert.Equal(t, 100, cfg.OrdersLimit)
	assert.Equal(t, `orderState="Complete"`, cfg.OrdersWhere)
	assert.Equal(t, 3*time.Second, cfg.HTTPClientTimeout)
	assert.Len(t, cfg.CORSAllowedOrigins, 2)
}

func TestLoadConfig_InvalidTimeoutFallsBack(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("HTTP_CLIENT_TIMEOUT", "soon")

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.HTTPClientTimeout)
}

func TestLoadConfig_MissingCredentials(t *testing.T) {
	t.Setenv("CTP_PROJECT_KEY", "")
	t.Setenv("CTP_CLIENT_ID", "")
	t.Setenv("CTP_CLIENT_SECRET", "")

	cfg, err := config.LoadConfig()

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestLoadConfig_LimitOutOfRange(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ORDERS_LIMIT", "1000")

	_, err := config.LoadConfig()

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
