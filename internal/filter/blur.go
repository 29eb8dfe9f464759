package filter

import (
	"image"
	"sync"
)

// Gaussian blurs img in place with a separable Gaussian of the given radius
// (used as sigma). Color channels are premultiplied by alpha while they are
// convolved, so transparent pixels do not bleed black into their neighbours.
// Samples beyond the image edge repeat the edge pixel.
//
// A radius <= 0 leaves img unchanged.
func Gaussian(img *image.NRGBA, radius float64) {
	if img == nil || radius <= 0 {
		return
	}
	width := img.Rect.Dx()
	height := img.Rect.Dy()
	if width <= 0 || height <= 0 {
		return
	}

	temp := getTempBuffer(width, height)
	defer putTempBuffer(temp)

	kernel := CachedGaussianKernel(radius)

	// Pass 1: Horizontal blur (img -> temp)
	blurHorizontal(img, temp, width, height, kernel)

	// Pass 2: Vertical blur (temp -> img)
	blurVertical(temp, img, width, height, kernel)
}

// blurHorizontal convolves each row, writing premultiplied float samples to
// temp.
func blurHorizontal(src *image.NRGBA, temp []float32, width, height int, kernel []float32) {
	halfKernel := len(kernel) / 2
	row := make([]float32, width*4)

	for y := 0; y < height; y++ {
		off := y * src.Stride
		for x := 0; x < width; x++ {
			i := off + x*4
			a := float32(src.Pix[i+3])
			row[x*4+0] = float32(src.Pix[i+0]) * a / 255
			row[x*4+1] = float32(src.Pix[i+1]) * a / 255
			row[x*4+2] = float32(src.Pix[i+2]) * a / 255
			row[x*4+3] = a
		}

		for x := 0; x < width; x++ {
			var r, g, b, a float32

			for k, weight := range kernel {
				kx := clampInt(x+k-halfKernel, 0, width-1)
				j := kx * 4
				r += row[j+0] * weight
				g += row[j+1] * weight
				b += row[j+2] * weight
				a += row[j+3] * weight
			}

			tempIdx := (y*width + x) * 4
			temp[tempIdx+0] = r
			temp[tempIdx+1] = g
			temp[tempIdx+2] = b
			temp[tempIdx+3] = a
		}
	}
}

// blurVertical convolves each column of temp and writes straight-alpha
// bytes back to dst.
func blurVertical(temp []float32, dst *image.NRGBA, width, height int, kernel []float32) {
	halfKernel := len(kernel) / 2

	for y := 0; y < height; y++ {
		off := y * dst.Stride
		for x := 0; x < width; x++ {
			var r, g, b, a float32

			for k, weight := range kernel {
				ky := clampInt(y+k-halfKernel, 0, height-1)
				tempIdx := (ky*width + x) * 4
				r += temp[tempIdx+0] * weight
				g += temp[tempIdx+1] * weight
				b += temp[tempIdx+2] * weight
				a += temp[tempIdx+3] * weight
			}

			i := off + x*4
			alpha := clampUint8(a)
			if alpha == 0 {
				dst.Pix[i+0], dst.Pix[i+1], dst.Pix[i+2], dst.Pix[i+3] = 0, 0, 0, 0
				continue
			}
			inv := 255 / a
			dst.Pix[i+0] = clampUint8(r * inv)
			dst.Pix[i+1] = clampUint8(g * inv)
			dst.Pix[i+2] = clampUint8(b * inv)
			dst.Pix[i+3] = alpha
		}
	}
}

// floatBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type floatBuffer struct {
	data []float32
}

// Temporary buffer pool for blur operations.
var tempBufferPool = sync.Pool{
	New: func() interface{} {
		return &floatBuffer{data: make([]float32, 512*512*4)}
	},
}

// getTempBuffer retrieves a temporary buffer from the pool.
// The buffer is guaranteed to have at least width*height*4 elements.
func getTempBuffer(width, height int) []float32 {
	size := width * height * 4
	wrapper := tempBufferPool.Get().(*floatBuffer)

	if len(wrapper.data) < size {
		// Need larger buffer - return old one and allocate new
		tempBufferPool.Put(wrapper)
		return make([]float32, size)
	}

	return wrapper.data[:size]
}

// putTempBuffer returns a temporary buffer to the pool.
func putTempBuffer(buf []float32) {
	// Only pool reasonably-sized buffers
	if cap(buf) <= 16*1024*1024 {
		tempBufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}

// clampInt clamps an integer to [minVal, maxVal].
func clampInt(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// clampUint8 rounds v to the nearest integer in [0, 255].
func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5) // Round to nearest
}
