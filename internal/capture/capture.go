// Package capture maps a Linux framebuffer device and exposes its pixel
// memory as a read-only, bounds-checked Frame.
package capture

import (
	"github.com/faryon93/fbdisp/internal/errors"
)

// Frame is a read-only view over width*height*bpp bytes of row-major pixel
// data. Pixel bytes are stored blue, green, red, [unused].
type Frame struct {
	pix    []byte
	width  int
	height int
	bpp    int
}

// NewFrame wraps pix, which must hold at least width*height*bpp bytes. The
// view is cut to exactly that size.
func NewFrame(pix []byte, width, height, bpp int) (*Frame, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("invalid frame size %dx%d", width, height)
	}
	if bpp < 3 {
		return nil, errors.Errorf("unsupported pixel size %d bytes: need at least 3", bpp)
	}
	size := width * height * bpp
	if len(pix) < size {
		return nil, errors.Errorf("pixel buffer too short: have %d bytes, need %d", len(pix), size)
	}
	return &Frame{
		pix:    pix[:size:size],
		width:  width,
		height: height,
		bpp:    bpp,
	}, nil
}

func (f *Frame) Width() int         { return f.width }
func (f *Frame) Height() int        { return f.height }
func (f *Frame) BytesPerPixel() int { return f.bpp }
func (f *Frame) Len() int           { return len(f.pix) }

// Offset returns the byte offset of pixel (x, y), or false when the pixel lies
// outside the frame.
func (f *Frame) Offset(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return 0, false
	}
	return (y*f.width + x) * f.bpp, true
}

// BGR returns the three colour bytes of pixel (x, y) in device order.
func (f *Frame) BGR(x, y int) (b, g, r uint8, ok bool) {
	off, ok := f.Offset(x, y)
	if !ok || off+2 >= len(f.pix) {
		return 0, 0, 0, false
	}
	return f.pix[off], f.pix[off+1], f.pix[off+2], true
}
