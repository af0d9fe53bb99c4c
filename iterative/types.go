// SPDX-License-Identifier: MIT

package iterative

import (
	"math"

	"github.com/katalvlaran/linalg/matrix"
)

// DefaultTolerance is the convergence threshold used by CG (on sᵀs) and
// GMRES (on the residual estimate). Zero keeps only exact convergence.
const DefaultTolerance = 0.0

// DefaultPivotTolerance is forwarded to the elimination that inverts D − w·E.
const DefaultPivotTolerance = 0.0

// Result is the outcome of an iterative solve.
type Result struct {
	// X is the A.Cols()×1 solution column.
	X matrix.Matrix

	// Iterations is the number of iterations actually performed.
	Iterations int

	// Residual is ‖A·X − b‖₂ for the returned X.
	Residual float64
}

// IterationHook observes progress: k is the 1-based iteration number and x
// the current iterate. x must not be retained or modified.
type IterationHook func(k int, x []float64)

// Option configures the solvers.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	tol      float64
	pivotTol float64
	onIter   IterationHook
}

// WithTolerance sets the early-exit threshold of CG and GMRES.
// SOR always runs the full iteration count. Panics if tol is negative, NaN or ±Inf.
func WithTolerance(tol float64) Option {
	if !validTolerance(tol) {
		panic("iterative: WithTolerance: tol must be finite, non-negative")
	}

	return func(o *Options) { o.tol = tol }
}

// WithPivotTolerance sets the singular-pivot threshold used when SOR inverts D − w·E.
// Panics if tol is negative, NaN or ±Inf.
func WithPivotTolerance(tol float64) Option {
	if !validTolerance(tol) {
		panic("iterative: WithPivotTolerance: tol must be finite, non-negative")
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithOnIteration installs a progress hook. SOR and CG call it after every
// iteration; GMRES calls it at the end of every restart cycle, when a new
// iterate is formed.
func WithOnIteration(fn IterationHook) Option {
	return func(o *Options) { o.onIter = fn }
}

func validTolerance(tol float64) bool {
	return tol >= 0 && !math.IsNaN(tol) && !math.IsInf(tol, 0)
}

func gatherOptions(opts ...Option) Options {
	o := Options{tol: DefaultTolerance, pivotTol: DefaultPivotTolerance}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// notify calls the hook when one is installed.
func (o Options) notify(k int, x []float64) {
	if o.onIter != nil {
		o.onIter(k, x)
	}
}
