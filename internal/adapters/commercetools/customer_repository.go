package commercetools

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/SscSPs/ct_order_jobs/internal/core/domain"
	"github.com/SscSPs/ct_order_jobs/internal/core/ports/repositories"
)

type customerRepository struct {
	client *Client
}

// NewCustomerRepository creates a customer source and writer backed by the customers endpoint.
func NewCustomerRepository(client *Client) repositories.CustomerRepositoryFacade {
	return &customerRepository{client: client}
}

func (r *customerRepository) QueryCustomers(ctx context.Context, q domain.CustomerQuery) (*domain.CustomerPage, error) {
	var page domain.CustomerPage
	if err := r.client.do(ctx, http.MethodGet, "/customers", pagedQuery(q.Sort, q.Limit), nil, &page); err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	return &page, nil
}

func (r *customerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	var customer domain.Customer
	if err := r.client.do(ctx, http.MethodGet, "/customers/"+url.PathEscape(customerID), nil, nil, &customer); err != nil {
		return nil, fmt.Errorf("failed to get customer %s: %w", customerID, err)
	}
	return &customer, nil
}

func (r *customerRepository) UpdateCustomer(ctx context.Context, customerID string, update domain.CustomerUpdate) (*domain.Customer, error) {
	var customer domain.Customer
	if err := r.client.do(ctx, http.MethodPost, "/customers/"+url.PathEscape(customerID), nil, update, &customer); err != nil {
		return nil, fmt.Errorf("failed to update customer %s: %w", customerID, err)
	}
	return &customer, nil
}
