package domain

import "math"

// BaseCurrency is the currency every rate in a RateTable is quoted against.
const BaseCurrency = "USD"

// RateTable maps a currency code to units of that currency per one US dollar.
type RateTable map[string]float64

// Resolve returns the rate for code, falling back to the USD entry when the
// code is absent. The boolean is false when neither entry exists or the
// resolved rate cannot be divided by (zero, negative, NaN, Inf).
func (t RateTable) Resolve(code string) (float64, bool) {
	rate, ok := t[code]
	if !ok {
		rate, ok = t[BaseCurrency]
	}
	if !ok || !isUsableRate(rate) {
		return 0, false
	}
	return rate, true
}

func isUsableRate(rate float64) bool {
	return rate > 0 && !math.IsInf(rate, 0) && !math.IsNaN(rate)
}
