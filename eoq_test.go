package uqfn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEOQModelReferenceValue(t *testing.T) {
	// Reference example: one unit per period, unit price 2, setup cost 3,
	// default interest rate.
	q := EOQModel([]float64{1, 2, 3}, DefaultEOQParams())
	assert.InDelta(t, 18.973665961010276, q, 1e-12)
}

func TestEOQModelCustomRate(t *testing.T) {
	q := EOQModel([]float64{12, 4, 25}, EOQParams{InterestRate: 0.05})
	assert.InDelta(t, 189.73665961010275, q, 1e-12)
}

func TestEOQModelDefaultParams(t *testing.T) {
	assert.Equal(t, 0.1, DefaultEOQParams().InterestRate)
}

func TestEOQModelSetupCostMonotonic(t *testing.T) {
	p := DefaultEOQParams()

	// Increasing the setup cost with everything else fixed must strictly
	// increase the optimal order quantity.
	prev := EOQModel([]float64{1, 2, 3}, p)
	for _, s := range []float64{4, 5, 6} {
		q := EOQModel([]float64{1, 2, s}, p)
		assert.Greater(t, q, prev)
		prev = q
	}
}

func TestEOQModelDeterministic(t *testing.T) {
	x := []float64{230, 0.5, 2}
	p := DefaultEOQParams()

	assert.Equal(t, EOQModel(x, p), EOQModel(x, p))
}

func TestEOQModelUnpackPanics(t *testing.T) {
	p := DefaultEOQParams()

	// Too short to unpack.
	assert.PanicsWithValue(t,
		"EOQModel: cannot unpack input vector of 2 elements into (m, c, s)",
		func() { EOQModel([]float64{1, 2}, p) })

	// Too long to unpack: the unpack is strict, not a prefix read.
	assert.PanicsWithValue(t,
		"EOQModel: cannot unpack input vector of 4 elements into (m, c, s)",
		func() { EOQModel([]float64{1, 2, 3, 4}, p) })

	assert.PanicsWithValue(t,
		"EOQModel: cannot unpack input vector of 0 elements into (m, c, s)",
		func() { EOQModel(nil, p) })
}

func TestEOQModelDomainAnomaliesPropagate(t *testing.T) {
	// A negative unit price makes r*c negative and the square root NaN.
	assert.True(t, math.IsNaN(EOQModel([]float64{1, -2, 3}, DefaultEOQParams())))

	// A zero unit price divides by zero; the square root of +Inf is +Inf.
	assert.True(t, math.IsInf(EOQModel([]float64{1, 0, 3}, DefaultEOQParams()), 1))
}
