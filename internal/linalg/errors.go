// Package linalg implements the closed-form 3x3 linear algebra used for
// color transfer: Cholesky factorisation, cofactor inversion, the
// characteristic polynomial, a cubic root solver, eigen decomposition with
// repeated-eigenvalue handling, and matrix functions of symmetric matrices.
//
// Expected numeric failures (a matrix that is not positive-definite, a
// singular matrix, an eigenbasis that cannot be completed) are reported with
// ok flags or [ErrDegenerate]. Conditions that indicate a bug rather than a
// property of the input are reported with [ErrUnreachable]; callers are
// expected to treat those as fatal.
package linalg

import "errors"

var (
	// ErrDegenerate is returned when the input has no usable decomposition,
	// for example a covariance matrix whose eigenbasis cannot be completed.
	ErrDegenerate = errors.New("linalg: degenerate matrix")

	// ErrUnreachable marks a state that valid arithmetic on a symmetric
	// matrix should never reach, such as a non-invertible eigenbasis.
	ErrUnreachable = errors.New("linalg: unreachable numeric state")
)
