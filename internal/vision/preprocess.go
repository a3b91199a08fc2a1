package vision

import (
	"github.com/nfnt/resize"
)

// Preprocess resizes the image to targetH x targetW and wraps it into a
// single-item NHWC batch of shape (1, targetH, targetW, 3).
//
// Resizing uses bilinear interpolation, matching the interpolation the
// model was trained with; changing it would shift prediction accuracy.
// Sample values are carried over as-is in the 0..255 range: the model
// expects unscaled inputs, so no /255 normalization happens here.
func Preprocess(img *Image, targetH, targetW int) (*Batch, error) {
	if img.Width <= 0 || img.Height <= 0 {
		return nil, &ShapeError{Width: img.Width, Height: img.Height}
	}
	if targetW <= 0 || targetH <= 0 {
		return nil, &ShapeError{Width: targetW, Height: targetH}
	}

	resized := resize.Resize(uint(targetW), uint(targetH), img.toNRGBA(), resize.Bilinear)

	data := make([]float32, targetH*targetW*3)
	i := 0
	for y := 0; y < targetH; y++ {
		for x := 0; x < targetW; x++ {
			r, g, b, _ := resized.At(x, y).RGBA()
			data[i+0] = float32(uint8(r >> 8))
			data[i+1] = float32(uint8(g >> 8))
			data[i+2] = float32(uint8(b >> 8))
			i += 3
		}
	}

	return &Batch{
		Data:  data,
		Shape: [4]int64{1, int64(targetH), int64(targetW), 3},
	}, nil
}
