// Package linop: node and constraint types.
// This file declares the LinOp node, its Kind enumeration, and the
// Constraint surface. Errors live in errors.go, the identity source in
// id.go, and constructors in ops.go / constraint.go per the global
// conventions.
package linop

import "github.com/katalvlaran/lvlopt/sparse"

// Kind discriminates the variants of a LinOp node.
//
//   - VariableKind — leaf referencing exactly one variable's identity.
//   - ConstantKind — leaf wrapping a sparse coefficient map.
//   - MulKind      — left-multiplication of a constant map by a child term.
//   - ReshapeKind  — shape reinterpretation of a child term (elements fixed).
//   - NegKind      — elementwise negation of a child term.
type Kind int

const (
	// VariableKind marks a variable leaf; VarID identifies the variable.
	VariableKind Kind = iota

	// ConstantKind marks a constant leaf; Const holds the coefficient map.
	ConstantKind

	// MulKind marks coeff·term; Args is [coefficient, operand].
	MulKind

	// ReshapeKind marks a reshape; Args is [operand].
	ReshapeKind

	// NegKind marks elementwise negation; Args is [operand].
	NegKind
)

// LinOp is one node of a primitive affine expression.
//
// A LinOp is immutable after construction and carries its own shape, so
// downstream passes never re-derive dimensions. Exactly one of VarID
// (VariableKind) or Const (ConstantKind) is meaningful on leaves; interior
// nodes keep their children in Args in operator order.
type LinOp struct {
	// Kind selects the node variant.
	Kind Kind

	// Rows and Cols give the node's 2-D shape.
	Rows, Cols int

	// VarID is the referenced variable identity (VariableKind only).
	VarID int64

	// Const is the coefficient map (ConstantKind only).
	Const *sparse.CSC

	// Args holds child nodes in operator order; nil for leaves.
	Args []*LinOp
}

// ConstraintKind discriminates the auxiliary constraints canonicalization
// can emit for a variable.
type ConstraintKind int

const (
	// NonNegKind constrains every entry of the term to be >= 0.
	NonNegKind ConstraintKind = iota

	// NonPosKind constrains every entry of the term to be <= 0.
	NonPosKind

	// PSDKind constrains the (square) term to be positive semidefinite.
	PSDKind
)

// Constraint is an auxiliary condition over one affine term, emitted by
// canonicalization and consumed downstream as an opaque value.
type Constraint interface {
	// Kind reports the constraint variant.
	Kind() ConstraintKind

	// Term returns the constrained affine term.
	Term() *LinOp

	// ID returns the constraint's process-unique identity.
	ID() int64
}
