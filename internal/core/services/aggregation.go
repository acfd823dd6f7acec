package services

import (
	"fmt"

	"github.com/SscSPs/ct_order_jobs/internal/apperrors"
	"github.com/SscSPs/ct_order_jobs/internal/core/domain"
)

// ConvertOrder converts an order's total into US dollars using rates.
// Currencies missing from rates use the USD entry; when that is missing
// too, or the resolved rate is not positive, ErrMissingRate is returned.
func ConvertOrder(order domain.Order, rates domain.RateTable) (domain.OrderConversionRecord, error) {
	price := order.TotalPrice
	rate, ok := rates.Resolve(price.CurrencyCode)
	if !ok {
		return domain.OrderConversionRecord{}, fmt.Errorf("%w: order %s in %s has no usable rate and no %s fallback",
			apperrors.ErrMissingRate, order.ID, price.CurrencyCode, domain.BaseCurrency)
	}

	amount := price.MajorUnits()
	return domain.OrderConversionRecord{
		OrderID:         order.ID,
		OrderAmount:     amount,
		CurrencyCode:    price.CurrencyCode,
		AmountInDollars: amount / rate,
	}, nil
}

// AggregateOrders groups orders per customer in a single pass. Groups are
// emitted in the order their customer was first seen; total is the source's
// total count and is passed through unchanged. Amounts are summed without
// intermediate rounding, so totals carry ordinary float64 rounding error.
// Any order without a usable rate fails the whole batch.
func AggregateOrders(orders []domain.Order, rates domain.RateTable, total int) (*domain.OrderAggregation, error) {
	groups := make(map[string]domain.CustomerOrderGroup)
	var firstSeen []string

	for _, order := range orders {
		rec, err := ConvertOrder(order, rates)
		if err != nil {
			return nil, err
		}

		key := order.GroupKey()
		group, seen := groups[key]
		if !seen {
			group = domain.CustomerOrderGroup{CustomerID: key}
			firstSeen = append(firstSeen, key)
		}
		groups[key] = group.Add(rec)
	}

	result := make([]domain.CustomerOrderGroup, 0, len(firstSeen))
	for _, key := range firstSeen {
		result = append(result, groups[key])
	}

	return &domain.OrderAggregation{Total: total, Groups: result}, nil
}
