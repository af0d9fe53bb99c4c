// SPDX-License-Identifier: MIT

package cofactor

import "math"

// DefaultTolerance is the |det| at or below which Inverse reports
// matrix.ErrSingular. Zero keeps the exact-zero test.
const DefaultTolerance = 0.0

// Option configures Inverse.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	tol float64
}

// WithTolerance sets the singular-determinant threshold.
// Panics if tol is negative, NaN or ±Inf.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic("cofactor: WithTolerance: tol must be finite, non-negative")
	}

	return func(o *Options) { o.tol = tol }
}

func gatherOptions(opts ...Option) Options {
	o := Options{tol: DefaultTolerance}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
