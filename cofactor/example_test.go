// SPDX-License-Identifier: MIT

package cofactor_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/linalg/cofactor"
	"github.com/katalvlaran/linalg/matrix"
)

func ExampleAdjoint() {
	a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})

	adj, _ := cofactor.Adjoint(a)
	_ = matrix.Fprint(os.Stdout, adj)
	// Output:
	// 4 -2
	// -3 1
}

func ExampleDeterminant() {
	a, _ := matrix.FromRows([][]float64{{2, -3, 1}, {2, 0, -1}, {1, 4, 5}})

	det, _ := cofactor.Determinant(a)
	fmt.Println(det)
	// Output:
	// 49
}
