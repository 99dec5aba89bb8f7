// Package linop: node constructors.
//
// Purpose:
//   - Provide thin, validated entry points for building affine nodes.
//   - Keep shape bookkeeping in one place; combinators reject incompatible
//     operands with sentinel errors instead of deferring to downstream passes.
//   - Perform no simplification: a Neg of a Neg stays two nodes.
package linop

import (
	"fmt"

	"github.com/katalvlaran/lvlopt/sparse"
)

// NewVariable returns a variable leaf of shape rows×cols referencing id.
// Shape validity is the caller's concern (expr validates at variable
// construction); id must come from an IDSource.
// Complexity: O(1).
func NewVariable(rows, cols int, id int64) *LinOp {
	return &LinOp{Kind: VariableKind, Rows: rows, Cols: cols, VarID: id}
}

// NewConstant wraps a sparse coefficient map as a constant leaf whose
// shape is the map's shape. Returns ErrNilOperand for a nil map.
// Complexity: O(1); the map is referenced, not copied.
func NewConstant(m *sparse.CSC) (*LinOp, error) {
	if m == nil {
		return nil, fmt.Errorf("NewConstant: %w", ErrNilOperand)
	}

	return &LinOp{Kind: ConstantKind, Rows: m.Rows(), Cols: m.Cols(), Const: m}, nil
}

// Mul builds coeff·operand with declared result shape rows×cols.
// Stage 1 (Validate): both operands non-nil; coeff.Cols == operand.Rows
// under the vectorized multiply convention.
// Stage 2 (Finalize): return the MulKind node with Args [coeff, operand].
// Complexity: O(1).
func Mul(coeff, operand *LinOp, rows, cols int) (*LinOp, error) {
	if coeff == nil || operand == nil {
		return nil, fmt.Errorf("Mul: %w", ErrNilOperand)
	}
	if coeff.Cols != operand.Rows {
		return nil, fmt.Errorf("Mul(%d×%d by %d×%d): %w",
			coeff.Rows, coeff.Cols, operand.Rows, operand.Cols, ErrMulShape)
	}

	return &LinOp{Kind: MulKind, Rows: rows, Cols: cols, Args: []*LinOp{coeff, operand}}, nil
}

// Reshape reinterprets operand as rows×cols without touching its entries.
// Returns ErrReshapeSize unless rows*cols preserves the element count.
// Complexity: O(1).
func Reshape(operand *LinOp, rows, cols int) (*LinOp, error) {
	if operand == nil {
		return nil, fmt.Errorf("Reshape: %w", ErrNilOperand)
	}
	if operand.Rows*operand.Cols != rows*cols {
		return nil, fmt.Errorf("Reshape(%d×%d to %d×%d): %w",
			operand.Rows, operand.Cols, rows, cols, ErrReshapeSize)
	}

	return &LinOp{Kind: ReshapeKind, Rows: rows, Cols: cols, Args: []*LinOp{operand}}, nil
}

// Neg negates operand elementwise; the shape is unchanged.
// Complexity: O(1).
func Neg(operand *LinOp) (*LinOp, error) {
	if operand == nil {
		return nil, fmt.Errorf("Neg: %w", ErrNilOperand)
	}

	return &LinOp{Kind: NegKind, Rows: operand.Rows, Cols: operand.Cols, Args: []*LinOp{operand}}, nil
}
