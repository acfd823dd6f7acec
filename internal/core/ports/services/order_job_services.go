package services

import (
	"context"

	"github.com/SscSPs/ct_order_jobs/internal/core/domain"
)

// OrderAggregationSvc runs the order aggregation job.
type OrderAggregationSvc interface {
	// AggregateOrdersByCustomer fetches rates, then one page of orders, and
	// groups them per customer in US dollars. A page with zero results is
	// reported as apperrors.ErrNoResults and the aggregator is not run.
	AggregateOrdersByCustomer(ctx context.Context) (*domain.OrderAggregation, error)
}
