package uqfn

import "math"

// EOQModelDim is the input-vector length EOQModel expects.
const EOQModelDim = 3

// EOQModel computes the optimal economic order quantity (EOQ) following the
// classical inventory model of Harris (1913): the order size that minimizes the
// sum of holding costs and ordering costs.
//
// How it works:
// - Unpacks the input positionally into the three core model parameters
// - Trades the per-order setup cost against the interest paid on held stock
// - Output grows with demand and setup cost, shrinks with price and interest
//
// Parameters:
// - x: Core model parameters, unpacked positionally as (m, c, s) where m is the
//   number of units needed per period, c is the unit price of items in stock,
//   and s is the setup cost of placing an order
// - p: Scalar hyperparameter; DefaultEOQParams gives the conventional annual
//   interest rate r=0.1
//
// Mathematical formula:
//
//	EOQModel(x) = sqrt((24 * m * s) / (r * c))
//
// Important notes:
// - There is no length check beyond the positional unpack itself, which panics
//   unless x contains exactly 3 elements
// - r*c must be positive for a real-valued result; otherwise the square root
//   yields NaN (or +Inf for a zero denominator) per math.Sqrt conventions,
//   without any special handling
//
// Example:
//
//	q := uqfn.EOQModel([]float64{1, 2, 3}, uqfn.DefaultEOQParams())
//	// q is about 18.9737
func EOQModel(x []float64, p EOQParams) float64 {
	m, c, s := unpack3("EOQModel", x)

	return math.Sqrt((24 * m * s) / (p.InterestRate * c))
}

//////
// Factory.
//////

// DefaultEOQParams returns the conventional annual interest rate used with the
// EOQ model when none is given: r=0.1.
func DefaultEOQParams() EOQParams {
	return EOQParams{
		InterestRate: 0.1,
	}
}
