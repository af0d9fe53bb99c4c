// SPDX-License-Identifier: MIT

package gauss_test

import (
	"fmt"

	"github.com/katalvlaran/linalg/gauss"
	"github.com/katalvlaran/linalg/matrix"
)

// ExampleSolve solves a 2×2 system and prints the solution column.
func ExampleSolve() {
	a, _ := matrix.FromRows([][]float64{{4, 1}, {1, 3}})
	b, _ := matrix.NewColumn([]float64{1, 2})

	x, err := gauss.Solve(a, b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	col, _ := matrix.Column(x, 0)
	fmt.Printf("x = [%.4f %.4f]\n", col[0], col[1])
	// Output:
	// x = [0.0909 0.6364]
}

// ExampleDeterminant shows the sign flip caused by a row swap.
func ExampleDeterminant() {
	a, _ := matrix.FromRows([][]float64{{0, 2}, {3, 1}})

	det, _ := gauss.Determinant(a)
	fmt.Println(det)
	// Output:
	// -6
}
