// Package filter implements the rasterfx image filters over RGB8 buffers.
//
// This package contains:
//   - Gaussian kernel synthesis and a shared kernel cache
//   - Edge extension (legacy one-pixel ring and symmetric padding)
//   - The 2D convolution engine with its two border policies
//   - Point operations: grayscale, threshold, color matrix, luma remapping
//
// Every filter reads a source buffer, writes rows of a destination buffer,
// and dispatches rows through internal/parallel, so any filter may run on a
// worker pool without extra synchronization.
package filter
