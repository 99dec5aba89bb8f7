// Package expr: attribute record, constants, and functional options.
// This file intentionally contains ONLY configuration-facing declarations;
// errors live in errors.go and behavior in variable.go / canonicalize.go
// per the global conventions.
package expr

import "github.com/katalvlaran/lvlopt/linop"

// DEFAULTS - single source of truth for construction-time behavior.
const (
	// VarPrefix is the fixed prefix for generated display names: VarPrefix
	// concatenated with the decimal identity, e.g. "var7".
	VarPrefix = "var"

	// DefaultEpsilon is the non-negative tolerance used by the symmetry
	// check in SetValue.
	DefaultEpsilon = 1e-9
)

// attributes is the closed structural-attribute record of a variable.
// It is populated only through VarOption constructors and is immutable
// after NewVariable returns; invalid combinations never reach dispatch.
type attributes struct {
	nonneg    bool // every entry >= 0
	nonpos    bool // every entry <= 0
	symmetric bool // square with mirrored off-diagonal entries
	psd       bool // positive semidefinite (implies symmetric)
	nsd       bool // negative semidefinite (implies symmetric)
}

// varConfig accumulates option state before validation in NewVariable.
type varConfig struct {
	name  string        // display name; "" means derive from VarPrefix+id
	id    int64         // explicit identity, meaningful only when hasID
	hasID bool          // true when WithID was applied
	ids   linop.IDSource // identity source; nil means linop.DefaultIDs
	attrs attributes    // structural attributes
}

// VarOption configures a Variable before creation.
type VarOption func(*varConfig)

// WithName sets an explicit display name instead of the generated one.
func WithName(name string) VarOption {
	return func(c *varConfig) { c.name = name }
}

// WithID preserves an explicit identity, bypassing the identity source.
// Intended for reconstruction paths (deserialization) that must keep a
// variable's identity stable; uniqueness is then the caller's contract.
func WithID(id int64) VarOption {
	return func(c *varConfig) { c.id, c.hasID = id, true }
}

// WithIDSource injects the identity source consulted for the variable's id
// and for ids of constraints emitted by Canonicalize. Defaults to
// linop.DefaultIDs; inject a fresh source for deterministic tests.
func WithIDSource(ids linop.IDSource) VarOption {
	return func(c *varConfig) { c.ids = ids }
}

// WithNonNeg constrains every entry of the variable to be >= 0.
func WithNonNeg() VarOption {
	return func(c *varConfig) { c.attrs.nonneg = true }
}

// WithNonPos constrains every entry of the variable to be <= 0.
func WithNonPos() VarOption {
	return func(c *varConfig) { c.attrs.nonpos = true }
}

// WithSymmetric declares the variable symmetric; the shape must be square.
func WithSymmetric() VarOption {
	return func(c *varConfig) { c.attrs.symmetric = true }
}

// WithPSD declares the variable positive semidefinite (and symmetric);
// the shape must be square.
func WithPSD() VarOption {
	return func(c *varConfig) { c.attrs.psd = true }
}

// WithNSD declares the variable negative semidefinite (and symmetric);
// the shape must be square.
func WithNSD() VarOption {
	return func(c *varConfig) { c.attrs.nsd = true }
}
