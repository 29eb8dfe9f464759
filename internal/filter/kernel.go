package filter

import (
	"math"
	"sync"
)

// KernelSize returns the number of taps GaussianKernel produces for radius:
// 2*ceil(3*radius)+1, or 1 for radius <= 0.
func KernelSize(radius float64) int {
	if radius <= 0 {
		return 1
	}
	return 2*int(math.Ceil(radius*3)) + 1
}

// GaussianKernel returns a normalized 1D Gaussian with sigma = radius,
// truncated at three sigma on each side. A radius <= 0 yields the identity
// kernel [1].
func GaussianKernel(radius float64) []float32 {
	size := KernelSize(radius)
	if size == 1 {
		return []float32{1}
	}

	half := size / 2
	twoSigmaSq := 2 * radius * radius
	weights := make([]float64, size)
	var sum float64
	for i := range weights {
		x := float64(i - half)
		weights[i] = math.Exp(-(x * x) / twoSigmaSq)
		sum += weights[i]
	}

	kernel := make([]float32, size)
	for i, w := range weights {
		kernel[i] = float32(w / sum)
	}
	return kernel
}

// maxCachedKernels bounds the kernel cache. The smoothing pass only ever
// asks for a handful of radii.
const maxCachedKernels = 32

// kernels maps a radius quantized to 1/100 px to its kernel.
var kernels = struct {
	sync.RWMutex
	m map[int][]float32
}{m: make(map[int][]float32)}

// CachedGaussianKernel is GaussianKernel memoized by radius (to 0.01 px).
// The returned slice is shared and must not be modified.
func CachedGaussianKernel(radius float64) []float32 {
	key := int(math.Round(radius * 100))

	kernels.RLock()
	k, ok := kernels.m[key]
	kernels.RUnlock()
	if ok {
		return k
	}

	k = GaussianKernel(float64(key) / 100)

	kernels.Lock()
	if len(kernels.m) >= maxCachedKernels {
		clear(kernels.m)
	}
	kernels.m[key] = k
	kernels.Unlock()
	return k
}
