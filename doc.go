// Package uqfn provides closed-form mathematical test functions commonly used as
// benchmarks in uncertainty quantification and sensitivity analysis research. Every
// function maps a fixed-length input vector (plus, in some cases, scalar
// hyperparameters) to a single scalar through a closed-form formula, making the
// package a drop-in evaluation layer for Monte Carlo drivers, surrogate-model
// builders, and sensitivity-analysis tooling.
//
// # Features
//
// The package includes the following key features:
//
//   - Standard UQ Benchmarks: the borehole water-flow model, the Ishigami
//     function, the economic order quantity (EOQ) model, and a trivial linear sum
//   - Pure Functions: no package state, no caching, no side effects; identical
//     inputs always produce identical outputs
//   - Uniform Call Shape: every benchmark is (or instantiates to) a
//     Function, so drivers can treat the whole suite interchangeably
//   - Named Suite: Suite and Names expose the benchmarks as a registry for
//     configuration-driven experiment pipelines
//   - Batch Evaluation: EvaluateRows applies any Function to every row of a
//     gonum sample matrix, one output per row
//   - Generic Summation: SimpleLinearFunction accepts any integer or float
//     element type
//   - Permissive Numerics: only input length is validated; division by zero,
//     logarithms of non-positive values, and square roots of negative values
//     propagate as IEEE-754 infinities and NaNs for callers to inspect
//
// # Installation
//
// To install the package, use:
//
//	go get github.com/thalesfsp/uqfn
//
// # Test Functions
//
// The library provides four benchmark functions spanning different input shapes:
//
// 1. Borehole (8 inputs):
//
//   - Models water flow rate through a borehole
//
//   - Cheap to evaluate, widely used to exercise computer-experiment methods
//
//     flow := uqfn.Borehole([]float64{0.1, 1000, 100000, 1000, 100, 700, 1500, 10000})
//
// 2. Ishigami (3 inputs, hyperparameters a and b):
//
//   - Strongly nonlinear and nonmonotonic
//
//   - A standard target for sensitivity-analysis methods
//
//     y := uqfn.Ishigami(x, uqfn.DefaultIshigamiParams())
//
// 3. EOQ model (3 inputs, hyperparameter r):
//
//   - Optimal economic order quantity for given demand, price, and setup cost
//
//     q := uqfn.EOQModel([]float64{1, 2, 3}, uqfn.DefaultEOQParams())
//
// 4. Simple linear function (any number of inputs):
//
//   - Arithmetic sum of the elements, handy as a sanity-check benchmark
//
//     s := uqfn.SimpleLinearFunction([]float64{1, 2, 3})
//
// # Hyperparameters
//
// Functions with tunable scalar hyperparameters take a small params struct with a
// Default factory:
//
//	p := uqfn.DefaultIshigamiParams() // A: 7, B: 0.1
//	p.B = 0.05
//	y := uqfn.Ishigami(x, p)
//
// # Input Validation
//
// Input vectors must have the exact length each function documents; a wrong length
// panics immediately with an explanatory message. Beyond length there is no domain
// validation: supplying physically meaningless values is allowed and yields
// whatever the floating-point arithmetic produces. Check results with math.IsNaN
// and math.IsInf when inputs may leave a function's natural domain.
//
// # Batch Evaluation
//
// Sampling drivers usually evaluate one function on many input vectors at once.
// Stack the vectors as rows of a matrix and use EvaluateRows:
//
//	samples := mat.NewDense(n, uqfn.BoreholeDim, nil)
//	// ... fill rows with sampled inputs ...
//	outputs := uqfn.EvaluateRows(uqfn.Borehole, samples)
//
// # Thread Safety
//
// All functions are safe for unsynchronized concurrent use: they hold no shared
// mutable state and operate only on their own arguments and local temporaries.
// Suite builds a fresh registry on every call, so callers may mutate the returned
// map freely.
//
// # Contributing
//
// To contribute to the project:
//  1. Fork the repository
//  2. Clone your fork
//  3. Create a feature branch
//  4. Make your changes
//  5. Run tests
//  6. Create a pull request
package uqfn
