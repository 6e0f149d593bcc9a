// Package rasterfx provides raster image transforms over 8-bit RGB buffers.
//
// # Overview
//
// rasterfx is a small Pure Go library of classic image processing
// operations: grayscale conversion, binary thresholding, brightness, RGB to
// YCbCr and HSV conversion, histogram analysis and stretching, and a generic
// 2D convolution engine fed by a Gaussian kernel generator.
//
// # Quick Start
//
//	import "github.com/gogpu/rasterfx"
//
//	buf, _ := rasterfx.NewBuffer(640, 480)
//	buf.Fill(rasterfx.RGB{R: 200, G: 120, B: 40})
//
//	k, _ := rasterfx.GaussianKernel(1.4, 5)
//	blurred, _ := rasterfx.Convolve(buf, k, true)
//
//	rasterfx.Threshold(blurred, 128)
//
// # Ownership
//
// Grayscale and Threshold modify their argument in place and return it.
// Brightness, Convolve, ExtendEdges, StretchHistogram and ExtendHistogram
// return a new Buffer and leave the input untouched. Histogram and the color
// space functions only read. Pipeline makes the distinction explicit and
// never modifies the buffer passed to Run.
//
// # Nil Buffers
//
// Functions that return an error (Convolve, ConvolveContext, Threshold,
// PadEdges, ExtendHistogram and Pipeline.Run) report a nil Buffer as
// ErrInvalidArgument. Functions without an error result (Grayscale,
// Brightness, ExtendEdges, Histogram and StretchHistogram) require a
// non-nil Buffer and panic otherwise.
//
// # Border Policies
//
// The convolution engine supports two border policies. BorderLegacy (the
// default) skips a margin derived from the kernel width on both axes and, when
// extending edges, grows the output by one pixel in each dimension.
// BorderSymmetric uses per-axis margins and pads symmetrically, so an extended
// convolution keeps the source size and computes every pixel.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Buffer, Kernel, Pipeline and the transform functions
//   - internal/image: the contiguous RGB8 arena and scratch pool
//   - internal/filter: kernels, edge extension, convolution, point operations
//   - internal/color: luma, YCbCr and HSV math
//   - internal/parallel: work-stealing pool for row-parallel filters
//   - internal/cache: LRU cache for generated kernels
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package rasterfx

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
