// SPDX-License-Identifier: MIT

package matrix

import (
	"bufio"
	"fmt"
	"io"
)

const opFprint = "Fprint"

// Fprint writes m to w as rows of space-separated values, one row per line.
//
// An incomplete dense matrix is reported with ErrEntryNotFound before anything
// is written, instead of being skipped silently.
func Fprint(w io.Writer, m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opFprint, err)
	}
	rows, err := ToRows(m)
	if err != nil {
		return matrixErrorf(opFprint, err)
	}
	bw := bufio.NewWriter(w)
	for _, row := range rows {
		for j, v := range row {
			if j > 0 {
				if _, err = bw.WriteString(_fmtSep); err != nil {
					return matrixErrorf(opFprint, err)
				}
			}
			if _, err = fmt.Fprintf(bw, _fmtElement, v); err != nil {
				return matrixErrorf(opFprint, err)
			}
		}
		if _, err = bw.WriteString(_fmtRowEnd); err != nil {
			return matrixErrorf(opFprint, err)
		}
	}
	if err = bw.Flush(); err != nil {
		return matrixErrorf(opFprint, err)
	}

	return nil
}
