// SPDX-License-Identifier: MIT

package gauss

import (
	"math"
)

// DefaultTolerance is the pivot magnitude at or below which a system is
// treated as singular. Zero keeps the exact-zero test.
const DefaultTolerance = 0.0

const panicToleranceInvalid = "gauss: WithTolerance: tol must be finite, non-negative"

// Option configures Solve, Invert and Determinant.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	tol float64 // singular when |pivot| ≤ tol
}

// WithTolerance sets the singular-pivot threshold.
// Panics if tol is negative, NaN or ±Inf (programmer error, like a bad regexp).
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// Tolerance returns the configured singular-pivot threshold.
func (o Options) Tolerance() float64 { return o.tol }

// NewOptions resolves opts over the defaults.
func NewOptions(opts ...Option) Options {
	o := Options{tol: DefaultTolerance}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
