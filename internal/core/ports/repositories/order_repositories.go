package repositories

import (
	"context"

	"github.com/SscSPs/ct_order_jobs/internal/core/domain"
)

// OrderReader defines read operations for platform orders
type OrderReader interface {
	// QueryOrders returns a single page of orders plus the platform's total count.
	QueryOrders(ctx context.Context, query domain.OrderQuery) (*domain.OrderPage, error)
}
