package colortransfer

import (
	"fmt"

	"github.com/gogpu/colortransfer/internal/mat3"
	"github.com/gogpu/colortransfer/internal/parallel"
	"github.com/gogpu/colortransfer/internal/pixelops"
)

// ColorTransfer recolors an image so that its color distribution matches
// another.
//
// TransferColor reads source and target and writes output, which must have
// the shape of target. source and target are never modified; output must
// not be either of them.
//
// The result is one of:
//   - true, nil: output holds the recolored target. Channels after the
//     third are copied from target unchanged.
//   - false, nil: the color statistics did not admit a transfer (for
//     example a single-colored target). output is an exact copy of target.
//   - false, err: the arguments were invalid (err wraps
//     [ErrInvalidArgument]). Nothing was computed and output is unchanged.
type ColorTransfer interface {
	TransferColor(source, target, output *Image) (bool, error)
}

// Method is a named ColorTransfer that can be listed in a [Registry].
type Method interface {
	ColorTransfer
	Name() string
	Description() string
}

// AffineMap is the color mapping y = A·x + B applied by linear transfers.
type AffineMap struct {
	A [3][3]float64
	B [3]float64
}

func newAffineMap(a mat3.Matrix, b mat3.Vector) AffineMap {
	return AffineMap{
		A: rows(a),
		B: b.Array(),
	}
}

// Apply maps one color.
func (m AffineMap) Apply(r, g, b float64) (float64, float64, float64) {
	return m.A[0][0]*r + m.A[0][1]*g + m.A[0][2]*b + m.B[0],
		m.A[1][0]*r + m.A[1][1]*g + m.A[1][2]*b + m.B[1],
		m.A[2][0]*r + m.A[2][1]*g + m.A[2][2]*b + m.B[2]
}

// coefficientFunc derives the linear part A of the affine map from the
// source and target covariances. ok is false when no map exists.
type coefficientFunc func(source, target mat3.Matrix) (a mat3.Matrix, ok bool)

// LinearTransfer is a ColorTransfer that moves the target's colors by an
// affine map y = A·x + b. A is chosen so that the mapped target has the
// source covariance; b then aligns the means: b = µs - A·µt.
//
// The variants differ only in how A is derived; see [NewCholesky] and
// [NewEigen].
type LinearTransfer struct {
	name         string
	description  string
	coefficients coefficientFunc
	opts         options
}

// Name returns the method name.
func (t *LinearTransfer) Name() string { return t.name }

// Description returns a one-line description of the method.
func (t *LinearTransfer) Description() string { return t.description }

// TransferColor implements [ColorTransfer].
func (t *LinearTransfer) TransferColor(source, target, output *Image) (bool, error) {
	if err := validateTransfer(source, target, output); err != nil {
		return false, err
	}

	pool, release := t.opts.pool()
	defer release()

	src, tgt := source.buffer(), target.buffer()
	out := output.buffer()
	if t.opts.linearLight {
		src = linearized(pool, src)
		tgt = linearized(pool, tgt)
	}

	m, ok := t.affine(pool, src, tgt)
	if !ok {
		t.opts.log().Warn("colortransfer: no color mapping, target copied", "method", t.name)
		copy(output.pix, target.pix)
		return false, nil
	}

	pixelops.LinearTransfer(pool, m.a, m.b, tgt, out)
	if t.opts.linearLight {
		pixelops.ToSRGB(pool, out, out)
	}
	return true, nil
}

// Coefficients computes the affine map TransferColor would apply, without
// touching any pixels. ok is false when the statistics admit no map.
func (t *LinearTransfer) Coefficients(source, target *Image) (m AffineMap, ok bool, err error) {
	if err := validateImage("source", source); err != nil {
		return m, false, err
	}
	if err := validateImage("target", target); err != nil {
		return m, false, err
	}

	pool, release := t.opts.pool()
	defer release()

	src, tgt := source.buffer(), target.buffer()
	if t.opts.linearLight {
		src = linearized(pool, src)
		tgt = linearized(pool, tgt)
	}

	am, ok := t.affine(pool, src, tgt)
	if !ok {
		return m, false, nil
	}
	return newAffineMap(am.a, am.b), true, nil
}

type affine struct {
	a mat3.Matrix
	b mat3.Vector
}

func (t *LinearTransfer) affine(pool *parallel.WorkerPool, src, tgt pixelops.Buffer) (affine, bool) {
	log := t.opts.log()

	meanS := pixelops.Mean(pool, src)
	covS := pixelops.Covariance(pool, src, meanS)
	meanT := pixelops.Mean(pool, tgt)
	covT := pixelops.Covariance(pool, tgt, meanT)

	log.Debug("colortransfer: statistics", "method", t.name,
		"source_mean", meanS, "source_cov", covS,
		"target_mean", meanT, "target_cov", covT)

	a, ok := t.coefficients(covS, covT)
	// A flat distribution can also surface as Inf or NaN entries (1/√0).
	if !ok || !a.IsFinite() {
		return affine{}, false
	}

	sx, sy, sz := meanS.XYZ()
	ax, ay, az := a.Transform(meanT.XYZ())
	b := mat3.NewVector(sx-ax, sy-ay, sz-az)

	log.Debug("colortransfer: affine map", "method", t.name, "A", a, "b", b)

	return affine{a: a, b: b}, true
}

func linearized(pool *parallel.WorkerPool, b pixelops.Buffer) pixelops.Buffer {
	lin := b
	lin.Pix = make([]float32, len(b.Pix))
	pixelops.ToLinear(pool, b, lin)
	return lin
}

func validateImage(role string, img *Image) error {
	if img == nil {
		return fmt.Errorf("%w: %s image is nil", ErrInvalidArgument, role)
	}
	if !img.buffer().Valid() {
		return fmt.Errorf("%w: %s image is %dx%d with %d channels and %d samples",
			ErrInvalidArgument, role, img.width, img.height, img.channels, len(img.pix))
	}
	return nil
}

func validateTransfer(source, target, output *Image) error {
	if err := validateImage("source", source); err != nil {
		return err
	}
	if err := validateImage("target", target); err != nil {
		return err
	}
	if err := validateImage("output", output); err != nil {
		return err
	}
	if sharesPixels(output, source) || sharesPixels(output, target) {
		return fmt.Errorf("%w: output must not share pixels with an input image", ErrInvalidArgument)
	}
	if !output.sameShape(target) {
		return fmt.Errorf("%w: output is %dx%dx%d, target is %dx%dx%d", ErrInvalidArgument,
			output.width, output.height, output.channels,
			target.width, target.height, target.channels)
	}
	return nil
}

// sharesPixels reports whether a and b are backed by the same samples,
// including two images wrapping one slice through NewImageFromData.
func sharesPixels(a, b *Image) bool {
	if a == b {
		return true
	}
	first := &a.pix[0] == &b.pix[0]
	last := &a.pix[len(a.pix)-1] == &b.pix[len(b.pix)-1]
	return first || last
}
