package filter

import (
	"image"
	"sync"
)

// BlurAlpha applies a separable Gaussian blur to a coverage mask and returns
// a new mask with the same bounds. Samples outside the mask are treated as
// transparent, so coverage can spread into empty margins but not in from
// the edges.
func BlurAlpha(src *image.Alpha, radius float64) *image.Alpha {
	b := src.Bounds()
	dst := image.NewAlpha(b)
	if b.Empty() {
		return dst
	}
	if !(radius > 0) {
		copy(dst.Pix, src.Pix)
		return dst
	}

	w, h := b.Dx(), b.Dy()
	kernel := CachedGaussianKernel(radius)

	temp := getTempBuffer(w * h)
	defer putTempBuffer(temp)

	blurHorizontal(src, temp, w, h, kernel)
	blurVertical(temp, dst, w, h, kernel)
	return dst
}

// blurHorizontal convolves each row of src into temp.
func blurHorizontal(src *image.Alpha, temp []float32, w, h int, kernel []float32) {
	half := len(kernel) / 2
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w]
		for x := 0; x < w; x++ {
			var a float32
			for k, weight := range kernel {
				kx := x + k - half
				if kx < 0 || kx >= w {
					continue
				}
				a += float32(row[kx]) * weight
			}
			temp[y*w+x] = a
		}
	}
}

// blurVertical convolves each column of temp into dst.
func blurVertical(temp []float32, dst *image.Alpha, w, h int, kernel []float32) {
	half := len(kernel) / 2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var a float32
			for k, weight := range kernel {
				ky := y + k - half
				if ky < 0 || ky >= h {
					continue
				}
				a += temp[ky*w+x] * weight
			}
			dst.Pix[y*dst.Stride+x] = clampUint8(a)
		}
	}
}

type floatBuffer struct {
	data []float32
}

var tempBufferPool = sync.Pool{
	New: func() any {
		return &floatBuffer{data: make([]float32, 512*512)}
	},
}

// getTempBuffer returns a zeroed buffer of at least n elements.
func getTempBuffer(n int) []float32 {
	wrapper := tempBufferPool.Get().(*floatBuffer)
	if len(wrapper.data) < n {
		tempBufferPool.Put(wrapper)
		return make([]float32, n)
	}
	buf := wrapper.data[:n]
	clear(buf)
	return buf
}

func putTempBuffer(buf []float32) {
	if cap(buf) <= 4*1024*1024 {
		tempBufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}

// clampUint8 clamps v to [0, 255] and rounds to nearest.
func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
