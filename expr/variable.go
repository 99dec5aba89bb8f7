// SPDX-License-Identifier: MIT

// Package expr - Variable construction, identity & primal-value lifecycle.
//
// Purpose:
//   - Validate shape/attribute combinations once, at construction, so every
//     later operation (Canonicalize, Gradient) is a total function.
//   - Keep the identity counter injected and explicit (IDSource), never an
//     ambient singleton baked into the type.
//   - Hold the primal value as plain column-major data with a validated
//     (SetValue) and an unvalidated (SaveValue) write path.

package expr

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlopt/linop"
	"github.com/katalvlaran/lvlopt/sparse"
)

// Variable is one decision variable of a problem description.
//
// A Variable is created once per modeling-time declaration and persists for
// the life of the problem; every structural field (identity, shape, name,
// attributes) is immutable after construction. Only the primal-value slot
// mutates, via SetValue/SaveValue, and those must not race on the same
// instance — no internal locking is provided (reads are otherwise free).
type Variable struct {
	id         int64          // process-unique identity
	rows, cols int            // 2-D shape; scalars are (1,1), column vectors (n,1)
	name       string         // display name, generated from VarPrefix+id when omitted
	attrs      attributes     // closed structural-attribute record
	ids        linop.IDSource // identity source for constraints emitted downstream
	value      []float64      // column-major primal value; nil until assigned
}

// NewVariable creates a rows×cols Variable.
// Stage 1 (Validate): reject negative dimensions, conflicting attributes,
// and symmetric/PSD/NSD requests over non-square shapes.
// Stage 2 (Prepare): resolve the identity (explicit, or drawn from the
// injected source) and the display name.
// Stage 3 (Finalize): return the Variable with an unset primal value.
//
// Side effect: when no explicit id is supplied, one draw advances the
// identity source (the module's single piece of process-wide state when
// linop.DefaultIDs is in play).
//
// Complexity: O(1).
func NewVariable(rows, cols int, opts ...VarOption) (*Variable, error) {
	// Validate raw dimensions before reading options.
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewVariable(%d,%d): %w", rows, cols, ErrInvalidShape)
	}

	// Gather option state.
	var cfg varConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	// Reject structurally impossible attribute combinations up front, so
	// the canonicalization dispatch never sees them.
	a := cfg.attrs
	if (a.nonneg && a.nonpos) || (a.psd && a.nsd) || ((a.psd || a.nsd) && (a.nonneg || a.nonpos)) {
		return nil, fmt.Errorf("NewVariable(%d,%d): %w", rows, cols, ErrConflictingAttrs)
	}
	// Symmetric structure (declared or implied by PSD/NSD) requires a square shape.
	if (a.symmetric || a.psd || a.nsd) && rows != cols {
		return nil, fmt.Errorf("NewVariable(%d,%d): symmetric structure: %w", rows, cols, ErrInvalidShape)
	}

	// Resolve the identity source and the identity itself.
	ids := cfg.ids
	if ids == nil {
		ids = linop.DefaultIDs
	}
	id := cfg.id
	if !cfg.hasID {
		id = ids.NextID()
	}

	// Resolve the display name.
	name := cfg.name
	if name == "" {
		name = fmt.Sprintf("%s%d", VarPrefix, id)
	}

	return &Variable{id: id, rows: rows, cols: cols, name: name, attrs: a, ids: ids}, nil
}

// ID returns the variable's process-unique identity.
// Complexity: O(1).
func (v *Variable) ID() int64 { return v.id }

// Rows returns the number of rows in the variable's shape.
// Complexity: O(1).
func (v *Variable) Rows() int { return v.rows }

// Cols returns the number of columns in the variable's shape.
// Complexity: O(1).
func (v *Variable) Cols() int { return v.cols }

// Name returns the display name.
// Complexity: O(1).
func (v *Variable) Name() string { return v.name }

// IsNonNeg reports whether the nonneg attribute is set.
func (v *Variable) IsNonNeg() bool { return v.attrs.nonneg }

// IsNonPos reports whether the nonpos attribute is set.
func (v *Variable) IsNonPos() bool { return v.attrs.nonpos }

// IsSymmetric reports whether the variable has symmetric structure,
// declared directly or implied by PSD/NSD.
func (v *Variable) IsSymmetric() bool { return v.attrs.symmetric || v.attrs.psd || v.attrs.nsd }

// IsPSD reports whether the PSD attribute is set.
func (v *Variable) IsPSD() bool { return v.attrs.psd }

// IsNSD reports whether the NSD attribute is set.
func (v *Variable) IsNSD() bool { return v.attrs.nsd }

// String implements fmt.Stringer: "Variable(rows, cols)".
func (v *Variable) String() string {
	return fmt.Sprintf("Variable(%d, %d)", v.rows, v.cols)
}

// SetValue validates val and stores it as the primal value.
// Stage 1 (Validate): length must equal rows*cols; every entry must be
// finite; symmetric structure must hold within DefaultEpsilon when the
// symmetric attribute (or PSD/NSD) is set. Definiteness itself is NOT
// checked here — that validation belongs to the solution-retrieval layer.
// Stage 2 (Execute): copy val into owned storage.
//
// On any failure the error wraps ErrInvalidValue and the previously stored
// value is left unchanged. A nil val clears the slot.
//
// val is column-major: entry (i,j) lives at index j*rows+i.
//
// Complexity: O(rows*cols).
func (v *Variable) SetValue(val []float64) error {
	// nil clears the primal value; nothing to validate.
	if val == nil {
		v.value = nil

		return nil
	}
	// Validate length against the variable's own shape.
	if len(val) != v.rows*v.cols {
		return fmt.Errorf("%s.SetValue(len %d, want %d): %w", v.name, len(val), v.rows*v.cols, ErrInvalidValue)
	}
	// Validate finiteness (NaN/±Inf rejected under the numeric policy).
	for k, x := range val {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%s.SetValue: non-finite entry at %d: %w", v.name, k, ErrInvalidValue)
		}
	}
	// Validate symmetry within epsilon for symmetric structure.
	if v.IsSymmetric() {
		n := v.rows // square by construction
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if math.Abs(val[j*n+i]-val[i*n+j]) > DefaultEpsilon {
					return fmt.Errorf("%s.SetValue: asymmetric at (%d,%d): %w", v.name, i, j, ErrInvalidValue)
				}
			}
		}
	}

	// Store an owned copy so later caller mutations cannot corrupt state.
	owned := make([]float64, len(val))
	copy(owned, val)
	v.value = owned

	return nil
}

// SaveValue stores val verbatim as the primal value, with no validation
// and no copy: the solution-retrieval path calling it has already
// guaranteed compatibility upstream and transfers ownership of the slice.
// In particular, no packed-vector re-expansion happens here — a retrieval
// layer that receives packed symmetric solutions must expand them itself
// (sparse.UpperTriToFull) before calling SaveValue.
// Complexity: O(1).
func (v *Variable) SaveValue(val []float64) {
	v.value = val
}

// Value returns the stored primal value, or nil when unset.
// The slice is the variable's own storage; treat it as read-only.
// Complexity: O(1).
func (v *Variable) Value() []float64 {
	return v.value
}

// Gradient returns the (sub/super)gradient of the variable with respect to
// each variable it references — itself, with the identity map of size
// rows*cols under the vectorized (column-major) convention.
// Total function of the shape; no error conditions.
// Complexity: O(rows*cols).
func (v *Variable) Gradient() map[*Variable]*sparse.CSC {
	eye, _ := sparse.Identity(v.rows * v.cols) // shape validated at construction; cannot fail

	return map[*Variable]*sparse.CSC{v: eye}
}

// Variables returns the variable itself, the leaf base-case for walks that
// collect the variables referenced by an expression tree.
// Complexity: O(1).
func (v *Variable) Variables() []*Variable {
	return []*Variable{v}
}
