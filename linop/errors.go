package linop

import "errors"

var (
	// ErrNilOperand indicates a nil *LinOp (or nil constant map) was passed
	// to a combinator or constructor.
	ErrNilOperand = errors.New("linop: nil operand")

	// ErrMulShape indicates a multiply whose coefficient column count does
	// not match the operand row count.
	ErrMulShape = errors.New("linop: multiply shape mismatch")

	// ErrReshapeSize indicates a reshape that does not preserve the total
	// element count of its operand.
	ErrReshapeSize = errors.New("linop: reshape changes element count")
)
