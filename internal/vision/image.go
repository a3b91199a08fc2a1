package vision

import "image"

// Image is a decoded picture held as tightly packed 8-bit RGB samples in
// row-major (height, width, channel) order. It always carries exactly
// three channels: alpha is stripped and grayscale replicated at decode.
type Image struct {
	Pix    []uint8
	Width  int
	Height int
}

// Batch is a single-item model input of shape (1, height, width, 3) with
// float32 samples laid out NHWC.
type Batch struct {
	Data  []float32
	Shape [4]int64
}

// toNRGBA rebuilds a standard image from the packed RGB samples, with
// alpha forced opaque.
func (m *Image) toNRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, m.Width, m.Height))
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			src := (y*m.Width + x) * 3
			dst := y*out.Stride + x*4
			out.Pix[dst+0] = m.Pix[src+0]
			out.Pix[dst+1] = m.Pix[src+1]
			out.Pix[dst+2] = m.Pix[src+2]
			out.Pix[dst+3] = 0xff
		}
	}
	return out
}
