package pricing

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Delta calculates the sensitivity of the option price to the spot rate.
// Under Garman-Kohlhagen the foreign rate discounts the spot leg, so
// call delta lives in (0, exp(-foreignRate*term)) and put delta in
// (-exp(-foreignRate*term), 0).
//
// Same input contract as D1: no guards, invalid inputs yield NaN/Inf.
func Delta(
	isCall bool,
	strike float64,
	term float64,
	spot float64,
	volatility float64,
	domesticRate float64,
	foreignRate float64,
) float64 {
	d1 := D1(strike, term, spot, volatility, domesticRate, foreignRate)
	if isCall {
		return Discount(foreignRate, term) * stdNormal.CDF(d1)
	}
	return Discount(foreignRate, term) * (stdNormal.CDF(d1) - 1)
}

// Vega calculates the sensitivity of the option price to volatility.
// Identical for calls and puts, and strictly positive for valid inputs.
func Vega(
	strike float64,
	term float64,
	spot float64,
	volatility float64,
	domesticRate float64,
	foreignRate float64,
) float64 {
	d1 := D1(strike, term, spot, volatility, domesticRate, foreignRate)
	return spot * Discount(foreignRate, term) * distuv.UnitNormal.Prob(d1) * math.Sqrt(term)
}
