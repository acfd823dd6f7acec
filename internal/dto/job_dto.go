package dto

import "github.com/SscSPs/ct_order_jobs/internal/core/domain"

// MessageResponse is the body of job outcomes that carry no data.
type MessageResponse struct {
	Message string `json:"message" example:"No completed orders found."`
}

// ErrorResponse is the body of failures that expose the cause to the caller.
type ErrorResponse struct {
	Error string `json:"error" example:"Failed to update customer: version mismatch"`
}

// OrderConversionResponse is one order converted into US dollars.
type OrderConversionResponse struct {
	OrderID         string  `json:"orderId"`
	OrderAmount     float64 `json:"orderAmount" example:"10"`
	CurrencyCode    string  `json:"currencyCode" example:"EUR"`
	AmountInDollars float64 `json:"amountInDollars" example:"11.111111111111111"`
}

// CustomerOrderGroupResponse groups the converted orders of one customer.
type CustomerOrderGroupResponse struct {
	CustomerID           string                    `json:"customerId"`
	TotalOrders          int                       `json:"totalOrders" example:"2"`
	TotalAmountInDollars float64                   `json:"totalAmountInDollars"`
	Orders               []OrderConversionResponse `json:"orders"`
}

// OrderAggregationResponse is the body of a successful order aggregation job.
// Total is the platform's total order count, not the number of grouped orders.
type OrderAggregationResponse struct {
	Total  int                          `json:"total" example:"137"`
	Result []CustomerOrderGroupResponse `json:"result"`
}

// ToOrderAggregationResponse converts the aggregator output, keeping group order.
func ToOrderAggregationResponse(a *domain.OrderAggregation) OrderAggregationResponse {
	groups := make([]CustomerOrderGroupResponse, len(a.Groups))
	for i, g := range a.Groups {
		orders := make([]OrderConversionResponse, len(g.Orders))
		for j, rec := range g.Orders {
			orders[j] = OrderConversionResponse(rec)
		}
		groups[i] = CustomerOrderGroupResponse{
			CustomerID:           g.CustomerID,
			TotalOrders:          g.TotalOrders,
			TotalAmountInDollars: g.TotalAmountInDollars,
			Orders:               orders,
		}
	}
	return OrderAggregationResponse{Total: a.Total, Result: groups}
}
