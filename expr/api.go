// SPDX-License-Identifier: MIT
// Package expr — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for the common variable shapes.
//   - Avoid any logic duplication — each facade delegates to NewVariable.
//   - Keep function names explicit and intention-revealing to improve discoverability.

package expr

// NewScalar returns a (1,1) Variable; a thin alias of NewVariable with an
// intention-revealing name.
// Complexity: O(1).
func NewScalar(opts ...VarOption) (*Variable, error) {
	// Delegate to the strict constructor with the scalar canonical shape.
	return NewVariable(1, 1, opts...)
}

// NewVector returns an (n,1) column-vector Variable.
// Complexity: O(1).
//
// Note: Returns (*Variable, error) to surface ErrInvalidShape for n < 0.
func NewVector(n int, opts ...VarOption) (*Variable, error) {
	// Delegate to the strict constructor with the column canonical shape.
	return NewVariable(n, 1, opts...)
}
