package utils

import (
	"github.com/shopspring/decimal"
)

// UsdPrecision is the number of decimals US dollar amounts are presented with.
const UsdPrecision = 2

// FormatWithPrecision formats an amount with the given precision.
// Example: 11.111111 with precision 2 returns "11.11"
// Example: 12.5 with precision 0 returns "13"
// Rounding only happens here; stored amounts stay unrounded.
func FormatWithPrecision(amount float64, precision int) string {
	return decimal.NewFromFloat(amount).StringFixed(int32(precision))
}

// FormatUSD formats a dollar amount with cent precision.
func FormatUSD(amount float64) string {
	return FormatWithPrecision(amount, UsdPrecision)
}
