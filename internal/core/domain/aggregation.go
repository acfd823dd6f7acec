package domain

// OrderConversionRecord is one order converted into US dollars.
type OrderConversionRecord struct {
	OrderID         string  `json:"orderId"`
	OrderAmount     float64 `json:"orderAmount"`
	CurrencyCode    string  `json:"currencyCode"`
	AmountInDollars float64 `json:"amountInDollars"`
}

// CustomerOrderGroup accumulates the converted orders of one customer.
// Amounts are unrounded float64 sums.
type CustomerOrderGroup struct {
	CustomerID           string                  `json:"customerId"`
	TotalOrders          int                     `json:"totalOrders"`
	TotalAmountInDollars float64                 `json:"totalAmountInDollars"`
	Orders               []OrderConversionRecord `json:"orders"`
}

// Add folds one converted order into the group.
func (g CustomerOrderGroup) Add(rec OrderConversionRecord) CustomerOrderGroup {
	orders := make([]OrderConversionRecord, len(g.Orders), len(g.Orders)+1)
	copy(orders, g.Orders)
	g.Orders = append(orders, rec)
	g.TotalOrders++
	g.TotalAmountInDollars += rec.AmountInDollars
	return g
}

// OrderAggregation is the aggregator output. Total is the source's total
// count, which can differ from the number of orders that were grouped.
type OrderAggregation struct {
	Total  int                  `json:"total"`
	Groups []CustomerOrderGroup `json:"result"`
}

// TotalInDollars sums the group totals.
func (a *OrderAggregation) TotalInDollars() float64 {
	var sum float64
	for _, g := range a.Groups {
		sum += g.TotalAmountInDollars
	}
	return sum
}
