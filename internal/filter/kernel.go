package filter

import (
	"math"
	"sync"
)

// GaussianKernel generates a normalized 1D Gaussian kernel using radius as
// sigma. The kernel has 2*ceil(3*radius)+1 taps.
//
// For radius <= 0 (or NaN), returns the identity kernel [1.0].
func GaussianKernel(radius float64) []float32 {
	if !(radius > 0) {
		return []float32{1.0}
	}

	half := KernelHalfSize(radius)
	size := half*2 + 1
	kernel := make([]float32, size)

	twoSigmaSq := 2 * radius * radius
	sum := 0.0
	for i := 0; i < size; i++ {
		x := float64(i - half)
		val := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(val)
		sum += val
	}

	inv := float32(1 / sum)
	for i := range kernel {
		kernel[i] *= inv
	}
	return kernel
}

// KernelHalfSize is how far, in pixels, a blur of the given radius spreads.
func KernelHalfSize(radius float64) int {
	if !(radius > 0) {
		return 0
	}
	return int(math.Ceil(radius * 3))
}

// kernelCache memoizes kernels by radius quantized to 0.01.
type kernelCache struct {
	mu     sync.RWMutex
	cache  map[int][]float32
	maxLen int
}

var defaultKernelCache = newKernelCache(32)

func newKernelCache(maxLen int) *kernelCache {
	return &kernelCache{
		cache:  make(map[int][]float32),
		maxLen: maxLen,
	}
}

func (c *kernelCache) get(radius float64) []float32 {
	key := int(radius * 100)

	c.mu.RLock()
	if kernel, ok := c.cache[key]; ok {
		c.mu.RUnlock()
		return kernel
	}
	c.mu.RUnlock()

	kernel := GaussianKernel(float64(key) / 100)

	c.mu.Lock()
	if len(c.cache) >= c.maxLen {
		clear(c.cache)
	}
	c.cache[key] = kernel
	c.mu.Unlock()

	return kernel
}

// CachedGaussianKernel returns a shared Gaussian kernel for radius.
// Callers must not modify it.
func CachedGaussianKernel(radius float64) []float32 {
	return defaultKernelCache.get(radius)
}
