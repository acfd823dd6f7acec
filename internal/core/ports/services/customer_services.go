package services

import (
	"context"

	"github.com/SscSPs/ct_order_jobs/internal/core/domain"
)

// CustomerReaderSvc defines read operations for customer jobs
type CustomerReaderSvc interface {
	// ListCustomers returns one page of customers sorted by last modification.
	ListCustomers(ctx context.Context) (*domain.CustomerPage, error)
}

// CustomerSegmentSvc defines the customer segment update job
type CustomerSegmentSvc interface {
	// UpdateCustomerSegment sets the configured segment field on the configured customer.
	UpdateCustomerSegment(ctx context.Context) (*domain.Customer, error)
}

// CustomerSvcFacade combines all customer-related service interfaces
type CustomerSvcFacade interface {
	CustomerReaderSvc
	CustomerSegmentSvc
}
