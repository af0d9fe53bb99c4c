// SPDX-License-Identifier: MIT

// Package iterative provides approximate solvers for A·x = b that work on the
// normal equations (AᵀA)·x = Aᵀb, so A may be rectangular or non-symmetric at
// the cost of squaring its condition number.
//
//   - SOR   – Successive Over-Relaxation with the fixed-point update
//     x ← B·x + C, run for exactly the requested number of sweeps.
//   - CG    – Conjugate Gradient on the normal equations (CGNR), stopping
//     early when the normal residual vanishes.
//   - GMRES – restarted GMRES(k): Arnoldi with modified Gram–Schmidt, Givens
//     rotations and a triangular least-squares solve per cycle.
//
// Every solver starts from the zero vector and returns a *Result holding the
// solution column, the iterations performed and the true residual ‖A·x − b‖₂.
// The solvers never fail on numeric grounds: a divergent sequence (for
// example SOR with w outside (0,2)) is returned as is, which is why the
// solution column is built with NaN/Inf validation disabled. Errors are
// limited to invalid arguments and, for SOR, a singular D − w·E.
//
// Progress can be observed through WithOnIteration; the hook receives the
// iteration number and the current iterate (read only, reused between calls).
package iterative
