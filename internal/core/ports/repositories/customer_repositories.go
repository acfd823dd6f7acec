package repositories

import (
	"context"

	"github.com/SscSPs/ct_order_jobs/internal/core/domain"
)

// CustomerReader defines read operations for platform customers
type CustomerReader interface {
	// QueryCustomers returns a single page of customers.
	QueryCustomers(ctx context.Context, query domain.CustomerQuery) (*domain.CustomerPage, error)

	// FindCustomerByID retrieves a customer including its current version.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
}

// CustomerWriter defines write operations for platform customers
type CustomerWriter interface {
	// UpdateCustomer applies update actions against the given version.
	UpdateCustomer(ctx context.Context, customerID string, update domain.CustomerUpdate) (*domain.Customer, error)
}

// CustomerRepositoryFacade combines all customer-related repository interfaces
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
