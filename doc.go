// Package colortransfer transfers the color distribution of one image onto
// another.
//
// # Overview
//
// A transfer measures the mean color and color covariance of a source and a
// target image and derives a closed-form mapping that gives the target the
// source's color statistics. It is typically run after a stylization step
// to restore the palette of the original photograph.
//
// # Quick Start
//
//	import "github.com/gogpu/colortransfer"
//
//	source, _ := colortransfer.LoadImage("palette.jpg")
//	target, _ := colortransfer.LoadImage("stylized.png")
//	output, _ := colortransfer.NewImage(target.Width(), target.Height(), target.Channels())
//
//	method, _ := colortransfer.DefaultRegistry().New("cholesky")
//	ok, err := method.TransferColor(source, target, output)
//	if err != nil {
//	    log.Fatal(err) // invalid arguments
//	}
//	if !ok {
//	    // output is an unchanged copy of target
//	}
//	output.SavePNG("result.png")
//
// # Methods
//
// Three methods are built in:
//   - Cholesky: affine map A = Ls·Lt⁻¹ from the Cholesky factors of the
//     covariances.
//   - Image Analogies: affine map A = Σs^½·Σt^-½ from the eigendecomposition
//     of the covariances.
//   - Luminance Only: the target keeps its chroma and takes the luma of the
//     source.
//
// The two linear methods fail on degenerate color distributions, such as a
// single-colored image. Failure is not an error: TransferColor returns
// false and the output is an exact copy of the target.
//
// # Images
//
// [Image] stores normalized float32 samples, interleaved, with at least
// three channels. The first three are RGB; any further channels (alpha) are
// copied through every transfer untouched.
//
// # Concurrency
//
// Statistics and pixel mapping run on a shared worker pool sized to
// GOMAXPROCS. [WithWorkers] changes this per method. Methods hold no state
// between calls and may be used from several goroutines at once.
package colortransfer
