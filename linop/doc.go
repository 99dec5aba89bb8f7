// Package linop defines the primitive affine-expression nodes, constraint
// values, and identity source consumed by canonicalization.
//
// The linop package provides:
//
//   - LinOp, an immutable affine-expression node: a variable leaf, a sparse
//     constant, or a multiply/reshape/negate combinator over child nodes.
//   - Constraint values (NonNeg, NonPos, PSD) that pair one affine term
//     with a process-unique identity.
//   - IDSource, the injected monotonic identity counter shared by variables
//     and constraints, with an atomic package-wide default.
//
// Nodes are plain data for downstream compilation passes: linop performs
// no simplification, no evaluation, and no solver interaction. Shape
// bookkeeping is the only validation done here; combinators reject
// incompatible operand shapes with sentinel errors.
package linop
