// Package economics holds the investment cost helpers scenario
// parameterizations rely on.
package economics

import "math"

// Annuity spreads a capital expenditure over n periods at the weighted
// average cost of capital wacc, returning the per-period payment.
func Annuity(capex float64, n int, wacc float64) float64 {
	q := math.Pow(1+wacc, float64(n))
	return capex * (wacc * q) / (q - 1)
}
