package vision

import "fmt"

// DecodeError reports bytes that could not be decoded as a supported
// image format.
type DecodeError struct {
	Filename string
	ByteLen  int
	Err      error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to decode image %q (%d bytes): %v", e.Filename, e.ByteLen, e.Err)
	}
	return fmt.Sprintf("failed to decode image %q (%d bytes)", e.Filename, e.ByteLen)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ShapeError reports degenerate image dimensions.
type ShapeError struct {
	Width  int
	Height int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("degenerate image dimensions %dx%d", e.Width, e.Height)
}
