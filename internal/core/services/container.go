package services

import (
	"github.com/SscSPs/ct_order_jobs/internal/core/domain"
	portsrepo "github.com/SscSPs/ct_order_jobs/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ct_order_jobs/internal/core/ports/services"
	"github.com/SscSPs/ct_order_jobs/internal/metrics"
	"github.com/SscSPs/ct_order_jobs/internal/platform/config"
)

// NewServiceContainer creates the service container from configuration and outbound sources.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, m *metrics.JobMetrics) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		OrderAggregation: NewOrderAggregationService(
			repos.ExchangeRateRepo,
			repos.OrderRepo,
			WithOrderQuery(domain.OrderQuery{
				Sort:  cfg.OrdersSort,
				Limit: cfg.OrdersLimit,
				Where: cfg.OrdersWhere,
			}),
			WithOrderMetrics(m),
		),
		Customer: NewCustomerService(repos.CustomerRepo, CustomerJobConfig{
			Query: domain.CustomerQuery{
				Sort:  cfg.CustomersSort,
				Limit: cfg.CustomersLimit,
			},
			SegmentCustomerID: cfg.SegmentCustomerID,
			SegmentFieldName:  cfg.SegmentFieldName,
			SegmentValue:      cfg.SegmentValue,
		}, m),
	}
}
