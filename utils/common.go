package utils

import "errors"

const (
	NODETOL = 1.e-12
)

var (
	// ErrShapeMismatch is wrapped into the panic raised when the operands of a
	// shape sensitive Matrix operation disagree on their dimensions.
	ErrShapeMismatch = errors.New("utils: matrix shape mismatch")

	// ErrBadShape marks a negative row or column count.
	ErrBadShape = errors.New("utils: invalid matrix shape")

	// ErrDegenerateLinspace is returned by Linspace for fewer than two points,
	// where the step (end-start)/(n-1) is undefined.
	ErrDegenerateLinspace = errors.New("utils: linspace needs at least 2 points")
)
