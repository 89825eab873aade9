// Package pricing implements closed-form valuation of European FX options
// under the Garman-Kohlhagen model, the two-rate extension of
// Black-Scholes: the foreign risk-free rate takes the place of a
// continuous dividend yield on the underlying currency.
//
// Everything in this package is a pure function over float64 inputs.
// No validation is performed and no errors are returned: zero volatility
// or a zero term divides by zero, a non-positive spot or strike feeds
// math.Log a value outside its domain, and the resulting NaN or Inf
// propagates to the caller unchanged. Callers own their inputs.
package pricing

import (
	"math"
	"time"

	"github.com/contactkeval/fx-pricer/daycount"
	"github.com/contactkeval/fx-pricer/internal/logger"
)

// Discount returns the present-value multiplier exp(-rate * term) for an
// annualized simple rate and a term in years.
//
//	presentValue = futureValue * Discount(rate, term)
//
// A zero term yields 1.0 for any rate, including negative rates.
func Discount(rate, term float64) float64 {
	return math.Exp(-rate * term)
}

// D1 calculates the d1 statistic of the Garman-Kohlhagen formula.
//
// Requires volatility > 0, term > 0, spot > 0 and strike > 0 for a
// meaningful result; see the package comment for what happens otherwise.
func D1(
	strike float64, // strike, domestic units per foreign unit
	term float64, // time to expiry in years
	spot float64, // spot exchange rate, same units as strike
	volatility float64, // annualized vol of log returns
	domesticRate float64, // domestic risk-free rate (annual)
	foreignRate float64, // foreign risk-free rate (annual)
) float64 {
	numerator := math.Log(spot/strike) + (domesticRate-foreignRate+0.5*volatility*volatility)*term
	return numerator / (volatility * math.Sqrt(term))
}

// D2 calculates the d2 statistic from a previously computed d1.
// d1 carries all the other inputs, so compute it first and pass it in.
func D2(term, volatility, d1 float64) float64 {
	return d1 - volatility*math.Sqrt(term)
}

// Price calculates the fair value of a European FX option, in domestic
// currency per unit of foreign currency.
//
// Parameters:
//   - isCall: true for a call option, false for a put option
//   - strike: exchange rate at which the holder may transact
//   - expiration: date the exchange would take place if exercised
//   - spotDate: valuation date
//   - spot: market exchange rate on spotDate (same units as strike)
//   - volatility: annualized standard deviation of log returns
//   - domesticRate: annualized simple domestic risk-free rate
//   - foreignRate: annualized simple foreign risk-free rate
//
// Uses the package-default standard normal distribution; see PriceDist
// to substitute another one. Inputs are not validated: an expiration
// equal to the spot date or a non-positive volatility, spot or strike
// divides by zero or leaves the log domain, and the resulting NaN/Inf
// flows through the formula rather than hitting a guarded fallback.
func Price(
	isCall bool,
	strike float64,
	expiration time.Time,
	spotDate time.Time,
	spot float64,
	volatility float64,
	domesticRate float64,
	foreignRate float64,
) float64 {
	return PriceDist(stdNormal, isCall, strike, expiration, spotDate,
		spot, volatility, domesticRate, foreignRate)
}

// PriceDist is Price with an explicit cumulative distribution, so a
// caller can swap in any compliant Φ implementation.
func PriceDist(
	dist CumDist,
	isCall bool,
	strike float64,
	expiration time.Time,
	spotDate time.Time,
	spot float64,
	volatility float64,
	domesticRate float64,
	foreignRate float64,
) float64 {
	t := daycount.YearFraction(spotDate, expiration)
	d1 := D1(strike, t, spot, volatility, domesticRate, foreignRate)
	d2 := D2(t, volatility, d1)
	logger.Tracef("gk: term=%v d1=%v d2=%v", t, d1, d2)

	discSpot := spot * Discount(foreignRate, t)
	discStrike := strike * Discount(domesticRate, t)

	if isCall {
		return discSpot*dist.CDF(d1) - discStrike*dist.CDF(d2)
	}
	return discStrike*dist.CDF(-d2) - discSpot*dist.CDF(-d1)
}
