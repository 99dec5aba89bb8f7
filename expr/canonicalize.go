// SPDX-License-Identifier: MIT

// Package expr - canonicalization: lowering a declared variable into the
// primitive affine term and auxiliary constraints a conic solver consumes.
//
// The dispatch is one explicit, ordered decision table:
//
//	shape resolution:   symmetric structure ⇒ packed leaf expanded through
//	                    sparse.UpperTriToFull; otherwise a plain leaf.
//	constraint branch:  nonneg > nonpos > PSD > NSD > none (first match wins;
//	                    at most one auxiliary constraint is ever produced).
//
// Conflicting attribute sets were rejected at construction, so both stages
// here are total over any live Variable.

package expr

import (
	"github.com/katalvlaran/lvlopt/linop"
	"github.com/katalvlaran/lvlopt/sparse"
)

// Canonicalize lowers the variable into (affine term, auxiliary constraints).
//
// For a symmetric variable (declared, or implied by PSD/NSD) of shape n×n,
// the term is built over the n(n+1)/2 packed upper-triangular scalars: a
// packed leaf carrying this variable's identity, left-multiplied by the
// expansion map, reshaped to n×n. This halves the free scalars a solver
// reasons about while preserving the full-matrix algebraic view. Every
// other variable lowers to a plain leaf over its full shape.
//
// The constraint sequence holds at most one element, chosen by the fixed
// priority nonneg > nonpos > PSD > NSD; NSD emits a PSD constraint on the
// negated term. Constraint identities are drawn from the variable's
// identity source.
//
// The error return only surfaces internal shape mismatches from linop
// constructors; a well-constructed Variable never produces one.
//
// Complexity: O(n²) for symmetric variables (expansion-map build), O(1)
// otherwise.
func (v *Variable) Canonicalize() (*linop.LinOp, []linop.Constraint, error) {
	// Stage 1: shape resolution.
	obj, err := v.canonicalTerm()
	if err != nil {
		return nil, nil, err
	}

	// Stage 2: auxiliary-constraint selection (ordered decision table).
	var constrs []linop.Constraint
	switch {
	case v.attrs.nonneg:
		constrs = append(constrs, linop.NewNonNeg(obj, v.ids))
	case v.attrs.nonpos:
		constrs = append(constrs, linop.NewNonPos(obj, v.ids))
	case v.attrs.psd:
		constrs = append(constrs, linop.NewPSD(obj, v.ids))
	case v.attrs.nsd:
		neg, nerr := linop.Neg(obj) // obj is non-nil here
		if nerr != nil {
			return nil, nil, nerr
		}
		constrs = append(constrs, linop.NewPSD(neg, v.ids))
	}

	return obj, constrs, nil
}

// canonicalTerm builds the variable's canonical affine form.
// Symmetric structure: packed (n(n+1)/2)×1 leaf → expand → reshape n×n.
// Otherwise: plain leaf over the full shape.
func (v *Variable) canonicalTerm() (*linop.LinOp, error) {
	if !v.IsSymmetric() {
		return linop.NewVariable(v.rows, v.cols, v.id), nil
	}

	n := v.rows                      // square by construction
	packed, _ := sparse.PackedLen(n) // n >= 0 by construction; cannot fail

	// Packed leaf carrying this variable's identity.
	leaf := linop.NewVariable(packed, 1, v.id)

	// Expansion map mirroring the packed triangle into the full matrix.
	expand, err := sparse.UpperTriToFull(n)
	if err != nil {
		return nil, err
	}
	coeff, err := linop.NewConstant(expand)
	if err != nil {
		return nil, err
	}

	// Expand to the flattened full matrix, then reinterpret as n×n.
	full, err := linop.Mul(coeff, leaf, n*n, 1)
	if err != nil {
		return nil, err
	}

	return linop.Reshape(full, n, n)
}
