package uqfn

// Function is the common signature shared by every benchmark in this package:
// one input vector in, one scalar out. Drivers built against Function can swap
// benchmarks without code changes, which is the usual workflow in uncertainty
// quantification studies (sample, evaluate, aggregate, repeat with the next
// function).
//
// Parameters:
//   - x: Input vector. Each benchmark documents its expected length and the
//     meaning of every position.
//
// Returns:
// - float64: The benchmark value at x.
//
// Built-in benchmarks with this signature (directly or via instantiation):
// - Borehole: water flow rate through a borehole (8 inputs)
// - Ishigami: strongly nonlinear sensitivity-analysis target (3 inputs)
// - EOQModel: optimal economic order quantity (3 inputs)
// - SimpleLinearFunction[float64]: arithmetic sum (any number of inputs)
//
// Usage example:
//
//	// Example 1: Holding benchmarks uniformly
//	funcs := []uqfn.Function{
//	    uqfn.Borehole,
//	    uqfn.SimpleLinearFunction[float64],
//	}
//
//	// Example 2: Binding hyperparameters into a Function
//	p := uqfn.DefaultIshigamiParams()
//	f := uqfn.Function(func(x []float64) float64 {
//	    return uqfn.Ishigami(x, p)
//	})
//
// Implementation notes for custom Functions:
// - Must be pure: no retained references to x, no hidden state
// - Must tolerate x being reused by the caller after the call returns
// - Should panic on wrong input length rather than guessing
// - Numeric domain anomalies should propagate as IEEE-754 Inf/NaN values.
type Function func(x []float64) float64

// IshigamiParams holds the scalar hyperparameters of the Ishigami function. The
// two knobs shape the function's nonlinearity and are part of its published
// definition, so sensitivity studies routinely vary them alongside the inputs.
type IshigamiParams struct {
	// A weights the sin(x[1])^2 term. The literature default is 7; larger values
	// strengthen the second input's influence on the output.
	A float64

	// B weights the x[2]^4 interaction term. The literature default is 0.1;
	// larger values strengthen the third input's interaction with the first.
	B float64
}

// EOQParams holds the scalar hyperparameter of the economic order quantity
// model.
type EOQParams struct {
	// InterestRate is the annual interest rate r used to price holding costs.
	// The default is 0.1. The model needs r times the unit price to be positive
	// for a real-valued result; nothing enforces that here.
	InterestRate float64
}
