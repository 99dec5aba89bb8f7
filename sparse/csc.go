// SPDX-License-Identifier: MIT

// Package sparse - CSC assembly & safe accessors.
//
// Purpose:
//   - Assemble coordinate triples into column-compressed storage with a fixed,
//     input-order-independent result (sorted rows per column, duplicates summed).
//   - Guarantee safety at the public surface: At/ColNNZ/MulVec return errors
//     instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewCSC: O(nnz log nnz) worst-case (per-column sort); O(nnz) for presorted input.
//   - At: O(log colNNZ); ColNNZ: O(1); MulVec: O(nnz); Dense: O(rows*cols + nnz).

package sparse

import (
	"fmt"
	"sort"
	"strings"
)

// cscErrorf wraps an error with a uniform CSC context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
func cscErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("CSC.%s(%d,%d): %w", method, i, j, err)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*CSC)(nil)

// NewCSC assembles a rows×cols sparse matrix from coordinate triples.
// Stage 1 (Validate): ensure rows, cols >= 0 and every triple is in range.
// Stage 2 (Prepare): count entries per column and build column extents.
// Stage 3 (Execute): scatter triples, sort each column by row, sum duplicates.
// Stage 4 (Finalize): return the immutable CSC.
//
// Triples addressing the same cell are summed, matching conventional
// coordinate-to-compressed conversion semantics. Zero-sized shapes are
// legal and yield an empty map.
//
// Complexity: O(nnz log nnz) time worst-case, O(nnz + cols) memory.
func NewCSC(rows, cols int, triples []Triple) (*CSC, error) {
	// Validate shape before any allocation.
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewCSC(%d,%d): %w", rows, cols, ErrBadDimension)
	}
	// Validate every triple against the declared shape.
	for _, t := range triples {
		if t.Row < 0 || t.Row >= rows || t.Col < 0 || t.Col >= cols {
			return nil, cscErrorf("NewCSC", t.Row, t.Col, ErrTripleOutOfRange)
		}
	}

	// Count entries per column (fixed j order downstream).
	counts := make([]int, cols)
	for _, t := range triples {
		counts[t.Col]++
	}
	// Prefix-sum the counts into column extents.
	colPtr := make([]int, cols+1)
	for j := 0; j < cols; j++ {
		colPtr[j+1] = colPtr[j] + counts[j]
	}

	// Scatter triples into their column segments in input order.
	rowIdx := make([]int, len(triples))
	val := make([]float64, len(triples))
	next := make([]int, cols)
	copy(next, colPtr[:cols])
	for _, t := range triples {
		k := next[t.Col]
		rowIdx[k] = t.Row
		val[k] = t.Val
		next[t.Col]++
	}

	// Sort each column segment by row index (deterministic result
	// regardless of triple order), then compact duplicates by summing.
	outPtr := make([]int, cols+1)
	outRow := rowIdx[:0] // in-place compaction is safe: write index never passes read index
	outVal := val[:0]
	for j := 0; j < cols; j++ {
		lo, hi := colPtr[j], colPtr[j+1]
		seg := colSegment{rows: rowIdx[lo:hi], vals: val[lo:hi]}
		sort.Stable(seg)
		for k := lo; k < hi; k++ {
			n := len(outRow)
			if n > outPtr[j] && outRow[n-1] == rowIdx[k] {
				outVal[n-1] += val[k] // same cell: accumulate
				continue
			}
			outRow = append(outRow, rowIdx[k])
			outVal = append(outVal, val[k])
		}
		outPtr[j+1] = len(outRow)
	}

	return &CSC{rows: rows, cols: cols, colPtr: outPtr, rowIdx: outRow, val: outVal}, nil
}

// colSegment sorts one column's (row, value) pairs together by row index.
type colSegment struct {
	rows []int
	vals []float64
}

func (s colSegment) Len() int           { return len(s.rows) }
func (s colSegment) Less(i, j int) bool { return s.rows[i] < s.rows[j] }
func (s colSegment) Swap(i, j int) {
	s.rows[i], s.rows[j] = s.rows[j], s.rows[i]
	s.vals[i], s.vals[j] = s.vals[j], s.vals[i]
}

// Identity returns the n×n identity map I_n in CSC form.
// Determinism: fixed j-loop; one entry per column.
// Complexity: O(n) time and memory.
func Identity(n int) (*CSC, error) {
	// Reject negative dimension; n = 0 yields an empty (0,0) map.
	if n < 0 {
		return nil, fmt.Errorf("Identity(%d): %w", n, ErrBadDimension)
	}
	colPtr := make([]int, n+1)
	rowIdx := make([]int, n)
	val := make([]float64, n)
	for j := 0; j < n; j++ {
		colPtr[j+1] = j + 1
		rowIdx[j] = j
		val[j] = 1.0
	}

	return &CSC{rows: n, cols: n, colPtr: colPtr, rowIdx: rowIdx, val: val}, nil
}

// Rows returns the number of rows in the map.
// Complexity: O(1).
func (m *CSC) Rows() int { return m.rows }

// Cols returns the number of columns in the map.
// Complexity: O(1).
func (m *CSC) Cols() int { return m.cols }

// NNZ returns the number of stored entries.
// Complexity: O(1).
func (m *CSC) NNZ() int { return len(m.val) }

// ColNNZ returns the number of stored entries in column j.
// Returns ErrOutOfRange if j is outside [0, Cols()).
// Complexity: O(1).
func (m *CSC) ColNNZ(j int) (int, error) {
	if j < 0 || j >= m.cols {
		return 0, cscErrorf("ColNNZ", 0, j, ErrOutOfRange)
	}

	return m.colPtr[j+1] - m.colPtr[j], nil
}

// At retrieves the element at (i, j); absent cells read as 0.
// Returns ErrOutOfRange for indices outside the shape.
// Complexity: O(log colNNZ) via binary search within the column.
func (m *CSC) At(i, j int) (float64, error) {
	// Validate both indices up front.
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, cscErrorf("At", i, j, ErrOutOfRange)
	}
	// Binary-search the sorted row indices of column j.
	lo, hi := m.colPtr[j], m.colPtr[j+1]
	k := lo + sort.SearchInts(m.rowIdx[lo:hi], i)
	if k < hi && m.rowIdx[k] == i {
		return m.val[k], nil
	}

	return 0, nil // structural zero
}

// MulVec computes y = M·x for a dense vector x of length Cols().
// Returns ErrDimensionMismatch when len(x) != Cols().
// Determinism: fixed column-major accumulation order.
// Complexity: O(rows + nnz) time, O(rows) memory for the result.
func (m *CSC) MulVec(x []float64) ([]float64, error) {
	// Validate operand length against the column count.
	if len(x) != m.cols {
		return nil, fmt.Errorf("CSC.MulVec(len %d, want %d): %w", len(x), m.cols, ErrDimensionMismatch)
	}
	// Accumulate column contributions into a zeroed result.
	y := make([]float64, m.rows)
	for j := 0; j < m.cols; j++ {
		xj := x[j]
		if xj == 0 {
			continue // skip structural work for zero coordinates
		}
		for k := m.colPtr[j]; k < m.colPtr[j+1]; k++ {
			y[m.rowIdx[k]] += m.val[k] * xj
		}
	}

	return y, nil
}

// Dense materializes the map as a rows×cols slice-of-slices.
// Intended for tests and debugging, not hot paths.
// Complexity: O(rows*cols + nnz) time and O(rows*cols) memory.
func (m *CSC) Dense() [][]float64 {
	out := make([][]float64, m.rows)
	for i := range out {
		out[i] = make([]float64, m.cols)
	}
	for j := 0; j < m.cols; j++ {
		for k := m.colPtr[j]; k < m.colPtr[j+1]; k++ {
			out[m.rowIdx[k]][j] = m.val[k]
		}
	}

	return out
}

// String implements fmt.Stringer for easy debugging.
// Format: "CSC(rows×cols, nnz=k)".
func (m *CSC) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "CSC(%d×%d, nnz=%d)", m.rows, m.cols, len(m.val))

	return b.String()
}
