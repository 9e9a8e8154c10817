package presenter

import (
	"image"

	"github.com/faryon93/fbdisp/internal/capture"
	"github.com/faryon93/fbdisp/internal/errors"
)

// Render copies every pixel of f into dst at (x*scale, y*scale), swapping the
// device's blue/green/red byte order to RGB. Pixels between grid points are
// left untouched, which gives a scaled frame its dotted LED-matrix look.
func Render(dst *image.RGBA, f *capture.Frame, scale int) {
	if dst == nil || f == nil || scale < 1 {
		return
	}
	bounds := dst.Bounds()
	for y := 0; y < f.Height(); y++ {
		dy := bounds.Min.Y + y*scale
		if dy >= bounds.Max.Y {
			break
		}
		row := (dy - bounds.Min.Y) * dst.Stride
		for x := 0; x < f.Width(); x++ {
			dx := bounds.Min.X + x*scale
			if dx >= bounds.Max.X {
				break
			}
			b, g, r, ok := f.BGR(x, y)
			if !ok {
				continue
			}
			i := row + (dx-bounds.Min.X)*4
			p := dst.Pix[i : i+4 : i+4]
			p[0] = r
			p[1] = g
			p[2] = b
			p[3] = 0xff
		}
	}
}

// NewBlack returns an opaque black RGBA image of the given size.
func NewBlack(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
	return img
}

// MaxSurfaceSide is the largest window edge, in pixels, a surface may have.
const MaxSurfaceSide = 16384

// SurfaceSize returns the surface dimensions for a width x height frame at
// scale, rejecting sizes no window could be created for.
func SurfaceSize(width, height, scale int) (int, int, error) {
	if width <= 0 || height <= 0 || scale < 1 {
		return 0, 0, errors.Errorf("display: invalid window geometry %dx%d at scale %d", width, height, scale)
	}
	if scale > MaxSurfaceSide/width || scale > MaxSurfaceSide/height {
		return 0, 0, errors.Errorf("display: window %dx%d at scale %d too large (max %d per side)", width, height, scale, MaxSurfaceSide)
	}
	return width * scale, height * scale, nil
}
