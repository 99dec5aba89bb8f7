// Package sparse provides column-compressed (CSC) sparse linear maps for
// the lvlopt modeling core.
//
// The sparse package provides:
//
//   - CSC, an immutable column-compressed matrix of float64, assembled
//     deterministically from coordinate triples (duplicates are summed).
//   - UpperTriToFull, the structural expansion map that mirrors a packed
//     upper-triangular parameterization of a symmetric matrix into its
//     full column-major form.
//   - Identity, the n×n identity map used by gradient bookkeeping.
//
// Maps built here are pure data: no lifecycle beyond construction and
// use, no mutation after assembly, safe for concurrent reads. They are
// intentionally narrow — structural operators with {0,1}-style patterns,
// not a general sparse-arithmetic toolkit.
//
// See the examples in this package and expr for usage patterns.
package sparse
