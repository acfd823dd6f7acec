package repositories

import (
	"context"

	"github.com/SscSPs/ct_order_jobs/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FetchRates retrieves the current USD-based rate table. Every call is a fresh fetch.
	FetchRates(ctx context.Context) (domain.RateTable, error)
}
