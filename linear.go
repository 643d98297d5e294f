package uqfn

import "golang.org/x/exp/constraints"

// SimpleLinearFunction computes the arithmetic sum of all elements of x. It is
// the trivial member of the suite, useful for sanity-checking a sampling or
// sensitivity pipeline before pointing it at an interesting benchmark: every
// input contributes linearly and with equal weight.
//
// Type Parameter:
//   - T: The numeric element type (any integer or float type)
//
// Important notes:
// - Accepts any input length; an empty or nil slice sums to zero
// - No panic path and no validation of any kind
// - Integer instantiations follow Go's wrap-around overflow semantics
// - SimpleLinearFunction[float64] satisfies Function
//
// Example:
//
//	s := uqfn.SimpleLinearFunction([]float64{1, 2, 3}) // 6
//	n := uqfn.SimpleLinearFunction([]int{-1, 1})       // 0
func SimpleLinearFunction[T constraints.Integer | constraints.Float](x []T) T {
	var sum T
	for _, v := range x {
		sum += v
	}

	return sum
}
