package domain

import "math"

// UnknownCustomer is the group key for orders placed without a customer account.
const UnknownCustomer = "UnknownCustomer"

// Money is a platform amount expressed in minor units.
type Money struct {
	Type           string `json:"type,omitempty"`
	CurrencyCode   string `json:"currencyCode"`
	CentAmount     int64  `json:"centAmount"`
	FractionDigits int    `json:"fractionDigits"`
}

// MajorUnits converts the minor-unit amount using FractionDigits
// (e.g. 1000 with 2 digits is 10.00).
func (m Money) MajorUnits() float64 {
	return float64(m.CentAmount) / math.Pow10(m.FractionDigits)
}

// Order is the subset of a platform order the jobs work with.
type Order struct {
	ID             string `json:"id"`
	Version        int64  `json:"version,omitempty"`
	CustomerID     string `json:"customerId,omitempty"`
	CustomerEmail  string `json:"customerEmail,omitempty"`
	OrderNumber    string `json:"orderNumber,omitempty"`
	OrderState     string `json:"orderState,omitempty"`
	TotalPrice     Money  `json:"totalPrice"`
	CreatedAt      string `json:"createdAt,omitempty"`
	LastModifiedAt string `json:"lastModifiedAt,omitempty"`
}

// GroupKey returns the customer the order is attributed to.
func (o Order) GroupKey() string {
	if o.CustomerID == "" {
		return UnknownCustomer
	}
	return o.CustomerID
}

// OrderPage is one page of a platform order query.
type OrderPage struct {
	Limit   int     `json:"limit"`
	Offset  int     `json:"offset"`
	Count   int     `json:"count"`
	Total   int     `json:"total"`
	Results []Order `json:"results"`
}

// OrderQuery describes the single paged query sent to the order source.
type OrderQuery struct {
	Sort  []string
	Limit int
	Where string
}
