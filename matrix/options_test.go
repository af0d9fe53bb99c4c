// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

// TestDefaultOptionsDocumented verifies that NewOptions() equals documented defaults.
func TestDefaultOptionsDocumented(t *testing.T) {
	t.Parallel()
	o := matrix.NewOptions()
	require.Equal(t, matrix.DefaultEpsilon, o.Epsilon())
	require.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf())
}

// TestOptionsLastWriterWins ensures repeated options resolve in order.
func TestOptionsLastWriterWins(t *testing.T) {
	t.Parallel()
	o := matrix.NewOptions(
		matrix.WithValidateNaNInf(false),
		matrix.WithEpsilon(1e-3),
		matrix.WithValidateNaNInf(true),
		nil, // ignored
		matrix.WithEpsilon(0),
	)
	require.True(t, o.ValidateNaNInf())
	require.Equal(t, 0.0, o.Epsilon())
}

// TestWithEpsilonPanics covers the programmer-error guard.
func TestWithEpsilonPanics(t *testing.T) {
	t.Parallel()
	for _, bad := range []float64{-1e-9, math.NaN(), math.Inf(1)} {
		bad := bad
		require.Panics(t, func() { matrix.WithEpsilon(bad) }, "eps=%v", bad)
	}
}
