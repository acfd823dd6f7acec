package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/ct_order_jobs/internal/apperrors"
	"github.com/SscSPs/ct_order_jobs/internal/core/domain"
	portsrepo "github.com/SscSPs/ct_order_jobs/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ct_order_jobs/internal/core/ports/services"
	"github.com/SscSPs/ct_order_jobs/internal/metrics"
)

// Upstream service names used in metrics labels.
const (
	upstreamExchangeRates = "exchange_rates"
	upstreamPlatform      = "commercetools"
)

// orderAggregationService implements the OrderAggregationSvc interface
type orderAggregationService struct {
	rateRepo  portsrepo.ExchangeRateReader
	orderRepo portsrepo.OrderReader
	query     domain.OrderQuery
	metrics   *metrics.JobMetrics
}

// OrderAggregationOption is a functional option for configuring the order aggregation service
type OrderAggregationOption func(*orderAggregationService)

// WithOrderQuery sets the sort, limit and filter of the order page query
func WithOrderQuery(query domain.OrderQuery) OrderAggregationOption {
	return func(s *orderAggregationService) {
		s.query = query
	}
}

// WithOrderMetrics adds the job metrics dependency
func WithOrderMetrics(m *metrics.JobMetrics) OrderAggregationOption {
	return func(s *orderAggregationService) {
		s.metrics = m
	}
}

// NewOrderAggregationService creates the order aggregation job service.
// Without WithOrderQuery, orders are sorted by lastModifiedAt ascending.
func NewOrderAggregationService(rateRepo portsrepo.ExchangeRateReader, orderRepo portsrepo.OrderReader, options ...OrderAggregationOption) portssvc.OrderAggregationSvc {
	svc := &orderAggregationService{
		rateRepo:  rateRepo,
		orderRepo: orderRepo,
		query:     domain.OrderQuery{Sort: []string{"lastModifiedAt asc"}},
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.OrderAggregationSvc = (*orderAggregationService)(nil)

func (s *orderAggregationService) AggregateOrdersByCustomer(ctx context.Context) (*domain.OrderAggregation, error) {
	// Rates first: without a complete table nothing can be converted.
	rates, err := s.rateRepo.FetchRates(ctx)
	if err != nil {
		s.metrics.UpstreamError(upstreamExchangeRates)
		return nil, fmt.Errorf("failed to fetch exchange rates: %w", err)
	}

	page, err := s.orderRepo.QueryOrders(ctx, s.query)
	if err != nil {
		s.metrics.UpstreamError(upstreamPlatform)
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	if len(page.Results) == 0 {
		return nil, fmt.Errorf("%w: order page is empty (platform total %d)", apperrors.ErrNoResults, page.Total)
	}

	aggregation, err := AggregateOrders(page.Results, rates, page.Total)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate orders: %w", err)
	}

	s.metrics.Aggregated(len(page.Results), len(aggregation.Groups), aggregation.TotalInDollars())
	return aggregation, nil
}
