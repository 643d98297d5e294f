package uqfn

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// EvaluateRows applies f to every row of samples and returns one output per
// row, in row order. Stacking input vectors as matrix rows is the natural unit
// of work for sampling drivers: generate an n-by-d design, evaluate, aggregate.
//
// Parameters:
// - f: The benchmark to evaluate; its arity contract applies to every row
// - samples: Matrix whose rows are input vectors of the length f expects
//
// Returns:
// - []float64: Output i is f applied to row i. A zero-row matrix yields an
//   empty slice.
//
// Important notes:
// - Rows are visited once each, in order, on the calling goroutine
// - f receives a scratch vector that is reused between rows; a Function must
//   not retain its argument (see the Function contract), and a custom f that
//   does must copy it first
//
// Usage example:
//
//	samples := mat.NewDense(n, uqfn.IshigamiDim, nil)
//	// ... fill rows with sampled inputs ...
//	outputs := uqfn.EvaluateRows(uqfn.Suite()["ishigami"], samples)
func EvaluateRows(f Function, samples mat.Matrix) []float64 {
	rows, _ := samples.Dims()

	return EvaluateRowsInto(make([]float64, rows), f, samples)
}

// EvaluateRowsInto is EvaluateRows writing into a caller-provided output slice,
// so repeated evaluation loops can reuse one buffer instead of allocating per
// call.
//
// Parameters:
// - dst: Output slice; its length must equal the number of sample rows
// - f, samples: As in EvaluateRows
//
// Returns:
// - []float64: dst, for chaining.
//
// Important notes:
// - Panics if len(dst) does not match the row count, following the dimension
//   panic convention of the mat package itself.
func EvaluateRowsInto(dst []float64, f Function, samples mat.Matrix) []float64 {
	rows, cols := samples.Dims()
	if len(dst) != rows {
		panic(fmt.Sprintf("EvaluateRowsInto: dst length %d does not match %d sample rows", len(dst), rows))
	}

	row := make([]float64, cols)
	for i := 0; i < rows; i++ {
		mat.Row(row, i, samples)
		dst[i] = f(row)
	}

	return dst
}
