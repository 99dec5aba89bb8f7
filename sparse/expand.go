// SPDX-License-Identifier: MIT

// Package sparse - upper-triangular expansion map.
//
// Purpose:
//   - Build the one structural operator the modeling core needs: the map that
//     turns a packed upper-triangular parameterization of a symmetric n×n
//     matrix into its full column-major form, mirroring every off-diagonal
//     entry into both of its positions.
//
// Packing order (single source of truth, shared with expr.Canonicalize):
//   - pairs (i, j) with 0 <= i <= j < n, enumerated "for i, for j from i",
//     each pair consuming one packed index.

package sparse

import "fmt"

// PackedLen returns the packed length n(n+1)/2 of the upper triangle of an
// n×n matrix, or ErrBadDimension for negative n.
// Complexity: O(1).
func PackedLen(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("PackedLen(%d): %w", n, ErrBadDimension)
	}

	return n * (n + 1) / 2, nil
}

// UpperTriToFull builds the expansion map M of shape (n², n(n+1)/2) such
// that for any packed vector p, M·p is the column-major flattening of the
// full symmetric matrix whose (i,j) and (j,i) entries both equal p's entry
// for the pair (i,j).
//
// Stage 1 (Validate): reject negative n (n = 0 yields the empty (0,0) map,
// n = 1 the 1×1 identity).
// Stage 2 (Execute): enumerate pairs (i, j), 0 <= i <= j < n, in fixed
// order; each pair owns packed column `count`; record 1.0 at flattened row
// j*n+i, and — off-diagonal only — a mirror 1.0 at flattened row i*n+j.
// Stage 3 (Finalize): assemble the triples into CSC form.
//
// Every column therefore carries exactly one entry (diagonal pair) or two
// (off-diagonal pair), all equal to 1.0.
//
// Complexity: O(n²) time and memory (at most 2 entries per packed column).
func UpperTriToFull(n int) (*CSC, error) {
	// Validate the dimension before enumerating.
	if n < 0 {
		return nil, fmt.Errorf("UpperTriToFull(%d): %w", n, ErrBadDimension)
	}
	entries, _ := PackedLen(n) // n already validated

	// Enumerate the upper triangle in the fixed packing order.
	triples := make([]Triple, 0, n*n)
	count := 0 // packed column index, one per (i,j) pair
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			// Position (i,j) in the full matrix, column-major.
			triples = append(triples, Triple{Row: j*n + i, Col: count, Val: 1.0})
			if i != j {
				// Mirror position (j,i) in the full matrix, column-major.
				triples = append(triples, Triple{Row: i*n + j, Col: count, Val: 1.0})
			}
			count++
		}
	}

	// Assemble; triples are already in-range by construction.
	return NewCSC(n*n, entries, triples)
}
