// SPDX-License-Identifier: MIT
package matrix_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

func TestFprint(t *testing.T) {
	t.Parallel()
	for _, m := range bothKinds(t, [][]float64{{1, 0.25}, {0, -3}}) {
		var buf bytes.Buffer
		require.NoError(t, matrix.Fprint(&buf, m))
		require.Equal(t, "1 0.25\n0 -3\n", buf.String())
	}
}

// TestFprintIncompleteDense reports the missing entry and writes nothing.
func TestFprintIncompleteDense(t *testing.T) {
	t.Parallel()
	m := MustDense(t, 2, 2)
	require.NoError(t, m.Set(0, 0, 1))

	var buf bytes.Buffer
	require.ErrorIs(t, matrix.Fprint(&buf, m), matrix.ErrEntryNotFound)
	require.Zero(t, buf.Len())

	require.ErrorIs(t, matrix.Fprint(&buf, nil), matrix.ErrNilMatrix)
}
