package commercetools

import (
	"context"
	"fmt"
	"net/http"

	"github.com/SscSPs/ct_order_jobs/internal/core/domain"
	"github.com/SscSPs/ct_order_jobs/internal/core/ports/repositories"
)

type orderRepository struct {
	client *Client
}

// NewOrderRepository creates an order source backed by the orders endpoint.
func NewOrderRepository(client *Client) repositories.OrderReader {
	return &orderRepository{client: client}
}

// QueryOrders fetches one page of orders. Paging beyond that page is left to the platform.
func (r *orderRepository) QueryOrders(ctx context.Context, q domain.OrderQuery) (*domain.OrderPage, error) {
	query := pagedQuery(q.Sort, q.Limit)
	if q.Where != "" {
		query.Set("where", q.Where)
	}

	var page domain.OrderPage
	if err := r.client.do(ctx, http.MethodGet, "/orders", query, nil, &page); err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	return &page, nil
}
