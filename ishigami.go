package uqfn

import "math"

// IshigamiDim is the input-vector length Ishigami expects.
const IshigamiDim = 3

// Ishigami evaluates the Ishigami function of Ishigami and Homma (1990), a
// standard example for uncertainty and sensitivity analysis methods because it
// exhibits strong nonlinearity and nonmonotonicity.
//
// How it works:
// - x[0] enters through a sine modulated by the x[2]^4 interaction term
// - x[1] enters only through a squared sine weighted by p.A
// - x[2] has no main effect on its own, only the interaction with x[0],
//   which is what makes the function a good test of sensitivity indices
//
// Parameters:
// - x: Input vector of exactly 3 elements; trigonometry is in radians
// - p: Scalar hyperparameters; DefaultIshigamiParams gives the literature
//   values A=7, B=0.1
//
// Mathematical formula:
//
//	Ishigami(x) = (1 + B*x[2]^4) * sin(x[0]) + A * sin(x[1])^2
//
// Important notes:
// - Panics if x does not contain exactly 3 elements
// - Inputs may be any real numbers; extreme magnitudes overflow to +/-Inf
//   following IEEE-754 arithmetic, without any special handling
//
// Example:
//
//	y := uqfn.Ishigami([]float64{math.Pi / 2, 0, 0}, uqfn.DefaultIshigamiParams())
//	// y == 1: sin(pi/2) is 1 and both remaining terms vanish
func Ishigami(x []float64, p IshigamiParams) float64 {
	mustLen("Ishigami", x, IshigamiDim)

	x2sq := x[2] * x[2]
	s1 := math.Sin(x[1])

	return (1+p.B*(x2sq*x2sq))*math.Sin(x[0]) + p.A*(s1*s1)
}

//////
// Factory.
//////

// DefaultIshigamiParams returns the hyperparameter values the Ishigami function
// was published with and which nearly all of the literature uses: A=7, B=0.1.
func DefaultIshigamiParams() IshigamiParams {
	return IshigamiParams{
		A: 7,
		B: 0.1,
	}
}
