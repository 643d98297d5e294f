package uqfn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIshigamiReferenceValues(t *testing.T) {
	p := DefaultIshigamiParams()

	// All-zero input: both sine terms vanish.
	assert.Equal(t, 0.0, Ishigami([]float64{0, 0, 0}, p))

	// sin(pi/2) is 1 and the remaining terms vanish.
	assert.InDelta(t, 1.0, Ishigami([]float64{math.Pi / 2, 0, 0}, p), 1e-15)

	// General point under the literature hyperparameters.
	assert.InDelta(t, 13.445138634774501, Ishigami([]float64{1, 2, 3}, p), 1e-12)
}

func TestIshigamiCustomParams(t *testing.T) {
	y := Ishigami([]float64{1, 1, 1}, IshigamiParams{A: 2, B: 1})
	assert.InDelta(t, 3.0990888061629356, y, 1e-12)

	// With B zero the interaction term disappears and x[2] has no effect.
	p := DefaultIshigamiParams()
	p.B = 0
	assert.Equal(t,
		Ishigami([]float64{1, 2, 0}, p),
		Ishigami([]float64{1, 2, 1000}, p))
}

func TestIshigamiDefaultParams(t *testing.T) {
	p := DefaultIshigamiParams()

	assert.Equal(t, 7.0, p.A)
	assert.Equal(t, 0.1, p.B)
}

func TestIshigamiDeterministic(t *testing.T) {
	x := []float64{-math.Pi, math.Pi / 4, 1}
	p := DefaultIshigamiParams()

	assert.Equal(t, Ishigami(x, p), Ishigami(x, p))
}

func TestIshigamiWrongLengthPanics(t *testing.T) {
	p := DefaultIshigamiParams()

	assert.PanicsWithValue(t,
		"Ishigami: input vector must have exactly 3 elements, got 2",
		func() { Ishigami([]float64{1, 2}, p) })

	assert.PanicsWithValue(t,
		"Ishigami: input vector must have exactly 3 elements, got 4",
		func() { Ishigami([]float64{1, 2, 3, 4}, p) })

	assert.PanicsWithValue(t,
		"Ishigami: input vector must have exactly 3 elements, got 0",
		func() { Ishigami(nil, p) })
}

func TestIshigamiOverflowsToInf(t *testing.T) {
	// An extreme third input overflows the x[2]^4 term; with sin(x[0]) positive
	// the result is +Inf, following IEEE-754 arithmetic.
	y := Ishigami([]float64{math.Pi / 2, 0, 1e100}, DefaultIshigamiParams())
	assert.True(t, math.IsInf(y, 1))
}
