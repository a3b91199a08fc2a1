package vision

import (
	"bytes"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// Decode turns raw uploaded bytes into a 3-channel RGB image. The source
// may be JPEG, PNG, GIF or WebP; alpha is stripped and grayscale sources
// come out with the gray value replicated across all three channels.
// The filename is advisory and only used in error reporting.
func Decode(data []byte, filename string) (*Image, error) {
	if len(data) == 0 {
		return nil, &DecodeError{Filename: filename, ByteLen: 0, Err: errors.New("empty payload")}
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		// Some encoders emit WebP variants the registered decoder
		// rejects; try the chai2010 decoder before giving up.
		wimg, werr := webp.Decode(bytes.NewReader(data))
		if werr != nil {
			return nil, &DecodeError{Filename: filename, ByteLen: len(data), Err: err}
		}
		img = wimg
	}

	// Clone canonicalizes any color model (gray, paletted, CMYK, alpha)
	// into NRGBA; packing then drops the alpha channel.
	nrgba := imaging.Clone(img)
	bounds := nrgba.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	pix := make([]uint8, width*height*3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			src := y*nrgba.Stride + x*4
			dst := (y*width + x) * 3
			pix[dst+0] = nrgba.Pix[src+0]
			pix[dst+1] = nrgba.Pix[src+1]
			pix[dst+2] = nrgba.Pix[src+2]
		}
	}

	return &Image{Pix: pix, Width: width, Height: height}, nil
}
