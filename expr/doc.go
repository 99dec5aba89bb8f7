// Package expr models decision variables for convex-optimization problem
// descriptions and lowers them into solver primitives.
//
// 🚀 What is a Variable?
//
//	One declared unknown of an optimization problem: a tensor of free
//	scalars with a process-unique identity, a 2-D shape, a closed set of
//	structural attributes, and a mutable primal-value slot filled in
//	after a solve.
//
// ✨ Key features:
//   - structural attributes: nonneg, nonpos, symmetric, PSD, NSD
//     (PSD/NSD imply symmetry; conflicting combinations are rejected
//     at construction, never at dispatch time)
//   - Canonicalize: attribute-driven lowering into one primitive affine
//     term plus at most one auxiliary constraint
//   - symmetric packing: a symmetric n×n variable travels to the solver
//     as its n(n+1)/2 upper-triangular scalars, re-expanded through one
//     structural sparse map
//   - Gradient: the variable as its own derivative under the vectorized
//     (column-major) convention
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlopt/expr"
//
//	X, err := expr.NewVariable(3, 3, expr.WithPSD())
//	if err != nil {
//	  // handle ErrInvalidShape / ErrConflictingAttrs
//	}
//
//	term, constrs, err := X.Canonicalize()
//	// term:    3×3 affine view built from 6 packed scalars
//	// constrs: exactly one PSD constraint on the term
//
// Values are column-major []float64 slices; scalars are shape (1,1) and
// column vectors shape (n,1), matching the 2-D canonical shape convention.
//
// Concurrency: Variables are safe for concurrent reads; SetValue/SaveValue
// require external synchronization per instance. Identity draws are
// lock-free and safe everywhere.
package expr
