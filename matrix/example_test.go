// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/linalg/matrix"
)

// ExampleMul multiplies two small matrices and prints the product.
func ExampleMul() {
	a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.FromRows([][]float64{{0, 1}, {1, 0}})

	p, err := matrix.Mul(a, b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = matrix.Fprint(os.Stdout, p)
	// Output:
	// 2 1
	// 4 3
}

// ExampleSparse shows that zero writes never create entries.
func ExampleSparse() {
	s, _ := matrix.NewSparse(3, 3)
	_ = s.Set(0, 0, 2)
	_ = s.Set(1, 1, 0)
	_ = s.Set(2, 1, -1)

	v, _ := s.At(1, 2)
	fmt.Println("non-zero:", s.NonZero(), "missing reads:", v)
	fmt.Print(s)
	// Output:
	// non-zero: 2 missing reads: 0
	// 2 0 0
	// 0 0 0
	// 0 -1 0
}

// ExampleDense_At shows the loud failure on a never-written dense entry.
func ExampleDense_At() {
	d, _ := matrix.NewDense(2, 2)
	_ = d.Set(0, 0, 1)

	_, err := d.At(1, 1)
	fmt.Println(errors.Is(err, matrix.ErrEntryNotFound))
	// Output:
	// true
}

// ExampleSlice extracts an inclusive window.
func ExampleSlice() {
	m, _ := matrix.FromSlice(3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})

	s, _ := matrix.Slice(m, 0, 1, 1, 2)
	fmt.Print(s)
	// Output:
	// 2 3
	// 5 6
}
