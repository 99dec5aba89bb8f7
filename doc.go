// Package lvlopt is an in-memory modeling core for convex optimization:
// declare decision variables with structural attributes and lower them
// into the primitive affine terms and constraints a conic solver consumes.
//
// 🚀 What is lvlopt?
//
//	A small, deterministic, zero-dependency library that brings together:
//		• Decision variables: shape, identity, attributes & primal values
//		• Structural attributes: nonneg, nonpos, symmetric, PSD, NSD
//		• Canonicalization: attribute-driven lowering to leaf terms + constraints
//		• Sparse maps: column-compressed structural operators (upper-tri expansion)
//		• Affine nodes: leaf / constant / multiply / reshape / negate primitives
//
// ✨ Why choose lvlopt?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – fixed enumeration orders, no hidden randomness
//   - Pure Go – no cgo, no hidden deps
//   - Solver-agnostic – emits primitives, never talks to a solver
//
// Under the hood, everything is organized under three subpackages:
//
//	expr/   — the Variable type, value lifecycle, gradient & canonicalization
//	linop/  — primitive affine-expression nodes, constraints & identity source
//	sparse/ — column-compressed sparse maps (upper-triangular expansion, identity)
//
// Quick sketch of the lowering for a symmetric 2×2 variable X:
//
//	packed (3×1) ──expand──▶ full (4×1) ──reshape──▶ X (2×2)
//
//	only the upper triangle travels to the solver; the full symmetric
//	view is reconstructed by one structural sparse map.
//
// Canonicalization is the single translation point from declared
// structure to solver primitives: a variable becomes one affine term
// plus at most one auxiliary constraint (inequality or semidefinite).
//
//	go get github.com/katalvlaran/lvlopt
package lvlopt
