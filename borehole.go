package uqfn

import "math"

// BoreholeDim is the input-vector length Borehole expects.
const BoreholeDim = 8

// Borehole models steady-state water flow rate through a borehole drilled from
// the ground surface through two aquifers. Its simplicity and quick evaluation
// make it a standard benchmark for a wide range of computer-experiment and
// uncertainty-quantification methods.
//
// How it works:
// - Combines the physical parameters into four intermediate terms
// - Returns the flow rate implied by those terms
// - Strictly positive output for physically meaningful inputs
//
// Parameters, in fixed positional order:
// - x[0]: borehole radius (r_w)
// - x[1]: radius of influence (r)
// - x[2]: transmissivity of the upper aquifer (T_u)
// - x[3]: potentiometric head of the upper aquifer (H_u)
// - x[4]: transmissivity of the lower aquifer (T_l)
// - x[5]: potentiometric head of the lower aquifer (H_l)
// - x[6]: length of the borehole (L)
// - x[7]: hydraulic conductivity of the borehole (K_w)
//
// Mathematical formula:
//
//	a = 2 * pi * T_u * (H_u - H_l)
//	b = ln(r / r_w)
//	c = (2 * L * T_u) / (b * r_w^2 * K_w)
//	d = T_u / T_l
//	Borehole(x) = a / (b * (1 + c + d))
//
// Important notes:
// - Panics if x does not contain exactly 8 elements
// - No domain validation beyond length: zero denominators and non-positive
//   log ratios propagate as IEEE-754 Inf/NaN values, never as errors
// - Callers own x; it is neither modified nor retained
//
// Example:
//
//	// A test point from the computer-experiments literature.
//	x := []float64{0.1, 1000, 100000, 1000, 100, 700, 1500, 10000}
//	flow := uqfn.Borehole(x) // about 62.639
func Borehole(x []float64) float64 {
	mustLen("Borehole", x, BoreholeDim)

	rw := x[0]
	r := x[1]
	tu := x[2]
	hu := x[3]
	tl := x[4]
	hl := x[5]
	length := x[6]
	kw := x[7]

	a := 2 * math.Pi * tu * (hu - hl)
	b := math.Log(r / rw)
	c := (2 * length * tu) / (b * (rw * rw) * kw)
	d := tu / tl

	return a / (b * (1 + c + d))
}
