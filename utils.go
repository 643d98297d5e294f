package uqfn

import "fmt"

//////
// Helper functions.
//////

// Helper function used by Borehole and Ishigami to enforce their fixed input
// length. The op name qualifies the panic message so a driver iterating over
// the suite can tell which benchmark was fed the wrong vector.
//
// Panics:
// - When len(x) != want, with a message naming op, want, and the actual length.
func mustLen(op string, x []float64, want int) {
	if len(x) != want {
		panic(fmt.Sprintf("%s: input vector must have exactly %d elements, got %d", op, want, len(x)))
	}
}

// Helper function used by EOQModel to unpack its input vector into the three
// positional model parameters. The unpack itself carries the arity contract:
// there is no separate length check, and short and long vectors fail the same
// way.
//
// Panics:
// - When len(x) != 3, with a message naming op and the actual length.
func unpack3(op string, x []float64) (m, c, s float64) {
	if len(x) != 3 {
		panic(fmt.Sprintf("%s: cannot unpack input vector of %d elements into (m, c, s)", op, len(x)))
	}

	return x[0], x[1], x[2]
}
