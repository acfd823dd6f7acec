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

// ErrMissingCustomerVersion is returned when the platform reports no version
// for the customer to update.
var ErrMissingCustomerVersion = fmt.Errorf("%w: failed to retrieve customer version", apperrors.ErrMissingVersion)

// CustomerJobConfig configures the customer jobs.
type CustomerJobConfig struct {
	Query domain.CustomerQuery

	// Segment update target.
	SegmentCustomerID string
	SegmentFieldName  string
	SegmentValue      string
}

// customerService implements the CustomerSvcFacade interface
type customerService struct {
	customerRepo portsrepo.CustomerRepositoryFacade
	cfg          CustomerJobConfig
	metrics      *metrics.JobMetrics
}

// NewCustomerService creates the customer job service.
func NewCustomerService(repo portsrepo.CustomerRepositoryFacade, cfg CustomerJobConfig, m *metrics.JobMetrics) portssvc.CustomerSvcFacade {
	return &customerService{
		customerRepo: repo,
		cfg:          cfg,
		metrics:      m,
	}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func (s *customerService) ListCustomers(ctx context.Context) (*domain.CustomerPage, error) {
	page, err := s.customerRepo.QueryCustomers(ctx, s.cfg.Query)
	if err != nil {
		s.metrics.UpstreamError(upstreamPlatform)
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return page, nil
}

// UpdateCustomerSegment reads the customer's current version and sends a
// setCustomField action against it.
func (s *customerService) UpdateCustomerSegment(ctx context.Context) (*domain.Customer, error) {
	current, err := s.customerRepo.FindCustomerByID(ctx, s.cfg.SegmentCustomerID)
	if err != nil {
		s.metrics.UpstreamError(upstreamPlatform)
		return nil, fmt.Errorf("failed to read customer version: %w", err)
	}
	if current.Version == 0 {
		return nil, ErrMissingCustomerVersion
	}

	update := domain.CustomerUpdate{
		Version: current.Version,
		Actions: []domain.CustomerUpdateAction{
			domain.SetCustomFieldAction(s.cfg.SegmentFieldName, s.cfg.SegmentValue),
		},
	}
	updated, err := s.customerRepo.UpdateCustomer(ctx, s.cfg.SegmentCustomerID, update)
	if err != nil {
		s.metrics.UpstreamError(upstreamPlatform)
		return nil, fmt.Errorf("failed to set customer segment: %w", err)
	}
	return updated, nil
}
