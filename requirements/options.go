package requirements

import (
	"math"

	"github.com/katalvlaran/lvdesign/design"
)

const panicToleranceInvalid = "requirements: WithTolerance: tolerance must be finite and non-negative"

// Option mutates Options.
type Option func(*Options)

// Options configures the validator.
type Options struct {
	Tolerance float64 // positioning tolerance in LDU
}

// DefaultOptions returns the default positioning tolerance.
func DefaultOptions() Options {
	return Options{Tolerance: design.DefaultTolerance}
}

// WithTolerance overrides the positioning tolerance (LDU).
// Panics on negative or non-finite values.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.Tolerance = tol }
}
