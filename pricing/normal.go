package pricing

import "gonum.org/v1/gonum/stat/distuv"

// CumDist is the cumulative distribution function consumed by the
// pricer. distuv.Normal satisfies it directly; so does anything else
// with a CDF method, which keeps the statistics dependency behind a
// single seam.
type CumDist interface {
	// CDF returns the probability that a draw from the distribution
	// is less than or equal to x.
	CDF(x float64) float64
}

// stdNormal is the default Φ used by Price: the gonum unit normal,
// accurate to well under 1e-9 across the range the pricer produces.
var stdNormal CumDist = distuv.UnitNormal
