// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the sparse
// package. All constructors and accessors MUST return these sentinels and
// tests MUST check them via errors.Is. No operation here panics on
// user-triggered error conditions.

package sparse

import "errors"

var (
	// ErrBadDimension is returned when a requested dimension is negative.
	// Constructors must validate shape before any allocation.
	ErrBadDimension = errors.New("sparse: negative dimension")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/ColNNZ) MUST return this, not panic.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrTripleOutOfRange indicates a coordinate triple referencing a cell
	// outside the declared shape during assembly.
	ErrTripleOutOfRange = errors.New("sparse: triple out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., MulVec where len(x) != Cols().
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")
)
