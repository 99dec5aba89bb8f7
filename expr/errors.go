package expr

import "errors"

var (
	// ErrInvalidShape indicates a negative dimension, or a symmetric/PSD/NSD
	// attribute requested with a non-square shape. Fatal to construction.
	ErrInvalidShape = errors.New("expr: invalid shape")

	// ErrConflictingAttrs indicates a structurally impossible attribute
	// combination (nonneg+nonpos, PSD+NSD, or a sign attribute on a
	// PSD/NSD variable). Fatal to construction.
	ErrConflictingAttrs = errors.New("expr: conflicting attributes")

	// ErrInvalidValue indicates a primal value rejected by SetValue (wrong
	// length, non-finite entry, or symmetry violated within epsilon). The
	// stored value is left unchanged; callers may retry with a corrected one.
	ErrInvalidValue = errors.New("expr: invalid value")
)
