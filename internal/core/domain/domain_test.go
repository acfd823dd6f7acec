package domain_test

import (
	"math"
	"testing"

	"github.com/SscSPs/ct_order_jobs/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestMoney_MajorUnits(t *testing.T) {
	tests := []struct {
		name  string
		money domain.Money
		want  float64
	}{
		{"two fraction digits", domain.Money{CentAmount: 1000, FractionDigits: 2}, 10},
		{"zero fraction digits", domain.Money{CentAmount: 1500, FractionDigits: 0}, 1500},
		{"three fraction digits", domain.Money{CentAmount: 12345, FractionDigits: 3}, 12.345},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.money.MajorUnits(), 1e-9)
		})
	}
}

func TestOrder_GroupKey(t *testing.T) {
	assert.Equal(t, "c1", domain.Order{CustomerID: "c1"}.GroupKey())
	assert.Equal(t, domain.UnknownCustomer, domain.Order{}.GroupKey())
}

func TestRateTable_Resolve(t *testing.T) {
	rates := domain.RateTable{"USD": 1, "EUR": 0.9}

	rate, ok := rates.Resolve("EUR")
	assert.True(t, ok)
	assert.Equal(t, 0.9, rate)

	rate, ok = rates.Resolve("GBP")
	assert.True(t, ok, "absent currency falls back to USD")
	assert.Equal(t, 1.0, rate)

	_, ok = domain.RateTable{"EUR": 0.9}.Resolve("GBP")
	assert.False(t, ok)

	for _, bad := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, ok = domain.RateTable{"USD": 1, "JPY": bad}.Resolve("JPY")
		assert.False(t, ok, "rate %v must not be usable", bad)
	}
}

func TestCustomerOrderGroup_AddDoesNotAlias(t *testing.T) {
	base := domain.CustomerOrderGroup{CustomerID: "c1"}.Add(domain.OrderConversionRecord{OrderID: "A", AmountInDollars: 1})
	left := base.Add(domain.OrderConversionRecord{OrderID: "B", AmountInDollars: 2})
	right := base.Add(domain.OrderConversionRecord{OrderID: "C", AmountInDollars: 3})

	assert.Len(t, base.Orders, 1)
	assert.Equal(t, "B", left.Orders[1].OrderID)
	assert.Equal(t, "C", right.Orders[1].OrderID)
	assert.Equal(t, 2, left.TotalOrders)
	assert.InDelta(t, 4.0, right.TotalAmountInDollars, 1e-9)
}
