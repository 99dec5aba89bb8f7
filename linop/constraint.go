// Package linop: auxiliary constraint values.
//
// Each constraint pairs one affine term with a fresh identity drawn from
// an IDSource (DefaultIDs when nil is passed). Constraints are opaque
// values to this module: no feasibility logic lives here.
package linop

// constraintBase carries the fields shared by every constraint kind.
type constraintBase struct {
	term *LinOp // the constrained affine term; non-nil by construction contract
	id   int64  // process-unique identity
}

// Term returns the constrained affine term.
func (c constraintBase) Term() *LinOp { return c.term }

// ID returns the constraint's process-unique identity.
func (c constraintBase) ID() int64 { return c.id }

// NonNegConstraint requires every entry of its term to be >= 0.
type NonNegConstraint struct{ constraintBase }

// Kind reports NonNegKind.
func (NonNegConstraint) Kind() ConstraintKind { return NonNegKind }

// NonPosConstraint requires every entry of its term to be <= 0.
type NonPosConstraint struct{ constraintBase }

// Kind reports NonPosKind.
func (NonPosConstraint) Kind() ConstraintKind { return NonPosKind }

// PSDConstraint requires its (square) term to be positive semidefinite.
type PSDConstraint struct{ constraintBase }

// Kind reports PSDKind.
func (PSDConstraint) Kind() ConstraintKind { return PSDKind }

// Compile-time assertions for Constraint conformance.
var (
	_ Constraint = NonNegConstraint{}
	_ Constraint = NonPosConstraint{}
	_ Constraint = PSDConstraint{}
)

// NewNonNeg builds an elementwise >= 0 constraint over term, drawing its
// identity from ids (DefaultIDs when nil). term must be non-nil.
func NewNonNeg(term *LinOp, ids IDSource) NonNegConstraint {
	return NonNegConstraint{newBase(term, ids)}
}

// NewNonPos builds an elementwise <= 0 constraint over term, drawing its
// identity from ids (DefaultIDs when nil). term must be non-nil.
func NewNonPos(term *LinOp, ids IDSource) NonPosConstraint {
	return NonPosConstraint{newBase(term, ids)}
}

// NewPSD builds a positive-semidefiniteness constraint over term, drawing
// its identity from ids (DefaultIDs when nil). term must be non-nil.
func NewPSD(term *LinOp, ids IDSource) PSDConstraint {
	return PSDConstraint{newBase(term, ids)}
}

// newBase assembles the shared fields, defaulting the identity source.
func newBase(term *LinOp, ids IDSource) constraintBase {
	if ids == nil {
		ids = DefaultIDs
	}

	return constraintBase{term: term, id: ids.NextID()}
}
