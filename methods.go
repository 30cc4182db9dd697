package colortransfer

import (
	"errors"
	"math"

	"github.com/gogpu/colortransfer/internal/linalg"
	"github.com/gogpu/colortransfer/internal/mat3"
	"github.com/gogpu/colortransfer/internal/pixelops"
)

// Method names of the built-in transfers.
const (
	MethodCholesky      = "Cholesky"
	MethodEigen         = "Image Analogies"
	MethodLuminanceOnly = "Luminance Only"
)

// NewCholesky returns the linear transfer whose matrix is A = Ls·Lt⁻¹, with
// Ls and Lt the Cholesky factors of the source and target covariances.
//
// It fails (returns false) when either covariance is not positive-definite,
// which includes every image whose colors lie on a line or plane.
func NewCholesky(opts ...Option) *LinearTransfer {
	return &LinearTransfer{
		name:         MethodCholesky,
		description:  "Linear color transfer using the Cholesky factors of the color covariances",
		coefficients: choleskyCoefficients,
		opts:         newOptions(opts),
	}
}

func choleskyCoefficients(source, target mat3.Matrix) (mat3.Matrix, bool) {
	ls, ok := linalg.Cholesky(source)
	if !ok {
		return mat3.Matrix{}, false
	}
	lt, ok := linalg.Cholesky(target)
	if !ok {
		return mat3.Matrix{}, false
	}
	ltInv, ok := linalg.Invert(lt)
	if !ok {
		return mat3.Matrix{}, false
	}
	return ls.Mul(ltInv), true
}

// NewEigen returns the linear transfer from Image Analogies, whose matrix is
// A = Σs^½·Σt^-½. The matrix powers are taken through the eigendecomposition
// of each covariance, on the absolute values of the eigenvalues so that
// rounding noise around zero cannot produce NaN.
//
// It fails (returns false) when a covariance has no complete eigenbasis or
// the target covariance is singular.
//
// An eigenbasis that is found but cannot be inverted is a numerical bug,
// not a property of the input: TransferColor panics with an error wrapping
// linalg.ErrUnreachable in that case.
func NewEigen(opts ...Option) *LinearTransfer {
	return &LinearTransfer{
		name:         MethodEigen,
		description:  "Linear color transfer using covariance square roots (Image Analogies)",
		coefficients: eigenCoefficients,
		opts:         newOptions(opts),
	}
}

func eigenCoefficients(source, target mat3.Matrix) (mat3.Matrix, bool) {
	sqrtS, err := linalg.ApplyFunction(source, func(x float64) float64 {
		return math.Sqrt(math.Abs(x))
	})
	if err != nil {
		return degenerate(err)
	}
	invSqrtT, err := linalg.ApplyFunction(target, func(x float64) float64 {
		return 1 / math.Sqrt(math.Abs(x))
	})
	if err != nil {
		return degenerate(err)
	}
	return sqrtS.Mul(invSqrtT), true
}

// degenerate turns an expected numeric failure into ok=false and re-raises
// anything else.
func degenerate(err error) (mat3.Matrix, bool) {
	if !errors.Is(err, linalg.ErrDegenerate) {
		panic(err)
	}
	return mat3.Matrix{}, false
}

// LuminanceOnly is a ColorTransfer that keeps the target's chroma and takes
// the BT.601 luma of the source, sampled nearest-neighbour at the same
// relative position. Source and target may differ in size. It never fails
// on valid arguments.
type LuminanceOnly struct {
	opts options
}

// NewLuminanceOnly returns a luminance-only transfer. WithLinearLight has
// no effect on it.
func NewLuminanceOnly(opts ...Option) *LuminanceOnly {
	return &LuminanceOnly{opts: newOptions(opts)}
}

// Name returns the method name.
func (*LuminanceOnly) Name() string { return MethodLuminanceOnly }

// Description returns a one-line description of the method.
func (*LuminanceOnly) Description() string {
	return "Replace target luminance with source luminance, keeping target chroma"
}

// TransferColor implements [ColorTransfer].
func (t *LuminanceOnly) TransferColor(source, target, output *Image) (bool, error) {
	if err := validateTransfer(source, target, output); err != nil {
		return false, err
	}

	pool, release := t.opts.pool()
	defer release()

	pixelops.LuminanceTransfer(pool, source.buffer(), target.buffer(), output.buffer())
	return true, nil
}
