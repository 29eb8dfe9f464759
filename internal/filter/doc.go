// Package filter provides the smoothing pass applied to finished canvases.
//
// The Gaussian blur is separable: one horizontal and one vertical 1D
// convolution, O(w*h*r) instead of O(w*h*r²). Kernels are cached by radius
// and intermediate float buffers come from a sync.Pool.
package filter
