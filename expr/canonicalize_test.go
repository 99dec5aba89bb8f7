// Package expr_test contains unit tests for the canonicalization dispatch.
package expr_test

import (
	"testing"

	"github.com/katalvlaran/lvlopt/expr"
	"github.com/katalvlaran/lvlopt/linop"
	"github.com/stretchr/testify/require"
)

// evalTerm numerically evaluates an affine term built by Canonicalize,
// substituting `leaf` (column-major) for the variable leaf. It mirrors the
// semantics a downstream compiler assigns to each node kind.
func evalTerm(t *testing.T, op *linop.LinOp, leaf []float64) []float64 {
	t.Helper()
	switch op.Kind {
	case linop.VariableKind:
		require.Len(t, leaf, op.Rows*op.Cols) // substitution must match the leaf shape

		return leaf
	case linop.MulKind:
		coeff := op.Args[0]                            // constant coefficient map
		require.Equal(t, linop.ConstantKind, coeff.Kind)
		x := evalTerm(t, op.Args[1], leaf)             // evaluate the operand first
		y, err := coeff.Const.MulVec(x)                // apply the sparse map
		require.NoError(t, err)

		return y
	case linop.ReshapeKind:
		return evalTerm(t, op.Args[0], leaf) // flat data is untouched by reshape
	case linop.NegKind:
		x := evalTerm(t, op.Args[0], leaf)
		out := make([]float64, len(x))
		for i, v := range x {
			out[i] = -v
		}

		return out
	default:
		t.Fatalf("unexpected node kind %v", op.Kind)

		return nil
	}
}

// TestCanonicalizePlain verifies the fixed scenario: a (2,3) variable with
// no attributes lowers to a plain (2,3) leaf and an empty constraint set.
func TestCanonicalizePlain(t *testing.T) {
	v, err := expr.NewVariable(2, 3) // attribute-free variable
	require.NoError(t, err)          // assert construction succeeded

	obj, constrs, err := v.Canonicalize() // lower to primitives
	require.NoError(t, err)               // total over a well-constructed variable
	require.Empty(t, constrs)             // no auxiliary constraint

	require.Equal(t, linop.VariableKind, obj.Kind) // plain leaf, no packing
	require.Equal(t, 2, obj.Rows)                  // full shape preserved
	require.Equal(t, 3, obj.Cols)
	require.Equal(t, v.ID(), obj.VarID) // leaf carries the variable's identity
}

// TestCanonicalizeNonNeg verifies nonneg emits exactly one >= 0 constraint
// on the term itself.
func TestCanonicalizeNonNeg(t *testing.T) {
	v, err := expr.NewVariable(3, 1, expr.WithNonNeg())
	require.NoError(t, err) // assert construction succeeded

	obj, constrs, err := v.Canonicalize() // lower to primitives
	require.NoError(t, err)               // assert dispatch succeeded
	require.Len(t, constrs, 1)            // exactly one auxiliary constraint

	require.Equal(t, linop.NonNegKind, constrs[0].Kind()) // greater-or-equal kind
	require.Same(t, obj, constrs[0].Term())               // constrains the canonical term
}

// TestCanonicalizeNonPos verifies nonpos emits exactly one <= 0 constraint.
func TestCanonicalizeNonPos(t *testing.T) {
	v, err := expr.NewVariable(3, 1, expr.WithNonPos())
	require.NoError(t, err) // assert construction succeeded

	obj, constrs, err := v.Canonicalize() // lower to primitives
	require.NoError(t, err)               // assert dispatch succeeded
	require.Len(t, constrs, 1)            // exactly one auxiliary constraint

	require.Equal(t, linop.NonPosKind, constrs[0].Kind()) // less-or-equal kind
	require.Same(t, obj, constrs[0].Term())               // constrains the canonical term
}

// TestCanonicalizePSD verifies PSD emits one semidefinite constraint on the
// term itself, and that the term is built over the packed parameterization.
func TestCanonicalizePSD(t *testing.T) {
	v, err := expr.NewVariable(2, 2, expr.WithPSD())
	require.NoError(t, err) // assert construction succeeded

	obj, constrs, err := v.Canonicalize() // lower to primitives
	require.NoError(t, err)               // assert dispatch succeeded
	require.Len(t, constrs, 1)            // exactly one auxiliary constraint

	require.Equal(t, linop.PSDKind, constrs[0].Kind()) // semidefinite constraint
	require.Same(t, obj, constrs[0].Term())            // on the term itself, not a copy
	require.Equal(t, linop.ReshapeKind, obj.Kind)      // PSD implies the packed pipeline
}

// TestCanonicalizeNSD verifies NSD emits one semidefinite constraint on the
// negation of the term.
func TestCanonicalizeNSD(t *testing.T) {
	v, err := expr.NewVariable(2, 2, expr.WithNSD())
	require.NoError(t, err) // assert construction succeeded

	obj, constrs, err := v.Canonicalize() // lower to primitives
	require.NoError(t, err)               // assert dispatch succeeded
	require.Len(t, constrs, 1)            // exactly one auxiliary constraint

	require.Equal(t, linop.PSDKind, constrs[0].Kind()) // semidefinite constraint

	neg := constrs[0].Term()                  // the constrained term
	require.Equal(t, linop.NegKind, neg.Kind) // -obj, not obj
	require.Same(t, obj, neg.Args[0])         // wrapping the canonical term
	require.Equal(t, 2, neg.Rows)             // negation preserves the shape
	require.Equal(t, 2, neg.Cols)
}

// TestCanonicalizeSymmetricStructure verifies the packed pipeline node by
// node for a symmetric 3×3 variable: packed leaf → expansion multiply →
// n×n reshape, with the leaf carrying the variable's identity.
func TestCanonicalizeSymmetricStructure(t *testing.T) {
	v, err := expr.NewVariable(3, 3, expr.WithSymmetric())
	require.NoError(t, err) // assert construction succeeded

	obj, constrs, err := v.Canonicalize() // lower to primitives
	require.NoError(t, err)               // assert dispatch succeeded
	require.Empty(t, constrs)             // symmetric alone implies no constraint

	require.Equal(t, linop.ReshapeKind, obj.Kind) // outermost node reinterprets shape
	require.Equal(t, 3, obj.Rows)                 // back to the declared n×n view
	require.Equal(t, 3, obj.Cols)

	mul := obj.Args[0]                        // the expansion multiply
	require.Equal(t, linop.MulKind, mul.Kind) // coeff·leaf
	require.Equal(t, 9, mul.Rows)             // flattened full matrix
	require.Equal(t, 1, mul.Cols)

	coeff, leaf := mul.Args[0], mul.Args[1]           // operator order: [coefficient, operand]
	require.Equal(t, linop.ConstantKind, coeff.Kind)  // the expansion map
	require.Equal(t, 9, coeff.Const.Rows())           // (n², n(n+1)/2) shape
	require.Equal(t, 6, coeff.Const.Cols())
	require.Equal(t, linop.VariableKind, leaf.Kind) // packed leaf
	require.Equal(t, 6, leaf.Rows)                  // n(n+1)/2 packed scalars
	require.Equal(t, 1, leaf.Cols)
	require.Equal(t, v.ID(), leaf.VarID) // identity survives the packing
}

// TestCanonicalizeSymmetricEvaluates verifies the canonical term of a
// symmetric variable always evaluates to a structurally symmetric matrix,
// replaying the fixed n=3 scenario end to end.
func TestCanonicalizeSymmetricEvaluates(t *testing.T) {
	v, err := expr.NewVariable(3, 3, expr.WithSymmetric())
	require.NoError(t, err) // assert construction succeeded

	obj, _, err := v.Canonicalize() // lower to primitives
	require.NoError(t, err)         // assert dispatch succeeded

	// Packed order (0,0),(0,1),(0,2),(1,1),(1,2),(2,2).
	full := evalTerm(t, obj, []float64{1, 2, 3, 4, 5, 6})
	require.Equal(t, []float64{1, 2, 3, 2, 4, 5, 3, 5, 6}, full) // column-major [[1,2,3],[2,4,5],[3,5,6]]

	// Symmetry holds for an arbitrary packed assignment, not just the fixture.
	n := 3
	full = evalTerm(t, obj, []float64{-7, 0.5, 3, 11, -2, 0})
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.Equal(t, full[j*n+i], full[i*n+j], "cell (%d,%d)", i, j)
		}
	}
}

// TestCanonicalizeNSDEvaluates verifies the NSD constraint term evaluates
// to the negated symmetric expansion.
func TestCanonicalizeNSDEvaluates(t *testing.T) {
	v, err := expr.NewVariable(2, 2, expr.WithNSD())
	require.NoError(t, err) // assert construction succeeded

	_, constrs, err := v.Canonicalize() // lower to primitives
	require.NoError(t, err)             // assert dispatch succeeded
	require.Len(t, constrs, 1)          // one semidefinite constraint

	// Packed order (0,0),(0,1),(1,1); the constrained term is -expansion.
	got := evalTerm(t, constrs[0].Term(), []float64{1, 2, 3})
	require.Equal(t, []float64{-1, -2, -2, -3}, got) // negated column-major full matrix
}

// TestCanonicalizeConstraintIDs verifies constraint identities come from the
// variable's injected source, decoupled from the process-wide default.
func TestCanonicalizeConstraintIDs(t *testing.T) {
	ids := linop.NewIDSource() // fresh source for determinism

	v, err := expr.NewVariable(2, 1, expr.WithNonNeg(), expr.WithIDSource(ids))
	require.NoError(t, err)            // assert construction succeeded
	require.Equal(t, int64(1), v.ID()) // variable took the first identity

	_, constrs, err := v.Canonicalize() // lower to primitives
	require.NoError(t, err)             // assert dispatch succeeded
	require.Len(t, constrs, 1)          // one auxiliary constraint

	require.Equal(t, int64(2), constrs[0].ID()) // constraint took the next identity
}

// TestCanonicalizeZeroSize verifies degenerate shapes lower cleanly.
func TestCanonicalizeZeroSize(t *testing.T) {
	v, err := expr.NewVariable(0, 0, expr.WithSymmetric()) // empty symmetric variable
	require.NoError(t, err)                                // square, hence legal

	obj, constrs, err := v.Canonicalize() // lower to primitives
	require.NoError(t, err)               // degenerate sizes are not errors
	require.Empty(t, constrs)             // no auxiliary constraint
	require.Equal(t, 0, obj.Rows)         // (0,0) canonical view
	require.Equal(t, 0, obj.Cols)
}
