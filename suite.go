package uqfn

import "sort"

//////
// Named access to the benchmarks.
// Experiment pipelines are usually configuration-driven: a config file names a
// test function and a sample count, and the driver resolves the name here.
//////

// Suite returns the package's benchmark functions keyed by the names they carry
// in the uncertainty-quantification literature:
//
// - "borehole"
// - "eoq_model"
// - "ishigami"
// - "simple_linear_function"
//
// Benchmarks with hyperparameters are bound to their Default* values; callers
// wanting other values should wrap the underlying function themselves.
//
// A fresh map is built on every call, so the package holds no shared mutable
// state and callers may add, replace, or delete entries in their copy freely.
//
// Usage example:
//
//	f, ok := uqfn.Suite()[cfg.Function]
//	if !ok {
//	    return fmt.Errorf("unknown test function %q", cfg.Function)
//	}
//	y := f(sample)
func Suite() map[string]Function {
	return map[string]Function{
		"borehole": Borehole,
		"eoq_model": func(x []float64) float64 {
			return EOQModel(x, DefaultEOQParams())
		},
		"ishigami": func(x []float64) float64 {
			return Ishigami(x, DefaultIshigamiParams())
		},
		"simple_linear_function": SimpleLinearFunction[float64],
	}
}

// Names returns the suite's benchmark names in sorted order, giving experiment
// configs and report generators a deterministic enumeration.
func Names() []string {
	suite := Suite()

	names := make([]string, 0, len(suite))
	for name := range suite {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
