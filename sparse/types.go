// SPDX-License-Identifier: MIT

// Package sparse: domain types used by assembly and structural builders.
// This file intentionally contains ONLY domain-facing types; errors live in
// errors.go per the global conventions.
package sparse

// Triple is one coordinate entry (row, col, value) handed to NewCSC.
// Triples may arrive in any order; assembly is deterministic regardless,
// and triples addressing the same cell are summed.
type Triple struct {
	// Row is the zero-based row index of the entry.
	Row int

	// Col is the zero-based column index of the entry.
	Col int

	// Val is the numeric value of the entry.
	Val float64
}

// CSC is an immutable sparse matrix in column-compressed form.
//
// Storage layout (the classic CSC triplet of slices):
//   - colPtr has length cols+1; column j owns the half-open range
//     [colPtr[j], colPtr[j+1]) of rowIdx/val.
//   - rowIdx holds row indices, strictly increasing within each column.
//   - val holds the matching values.
//
// A CSC is never mutated after NewCSC returns, so concurrent reads need
// no synchronization.
type CSC struct {
	rows, cols int       // matrix shape (>= 0; zero-sized maps are legal)
	colPtr     []int     // column extents, len == cols+1
	rowIdx     []int     // row index per stored entry, sorted within a column
	val        []float64 // value per stored entry
}
