package capture

import "github.com/faryon93/fbdisp/internal/errors"

// ioctl request from <linux/fb.h>.
const fbioGetVScreenInfo = 0x4600

type fbBitfield struct {
	Offset   uint32
	Length   uint32
	MsbRight uint32
}

// varScreenInfo mirrors struct fb_var_screeninfo.
type varScreenInfo struct {
	Xres, Yres               uint32
	XresVirtual, YresVirtual uint32
	Xoffset, Yoffset         uint32
	BitsPerPixel             uint32
	Grayscale                uint32
	Red, Green, Blue, Transp fbBitfield
	Nonstd                   uint32
	Activate                 uint32
	Height, Width            uint32
	AccelFlags               uint32
	Pixclock                 uint32
	LeftMargin, RightMargin  uint32
	UpperMargin, LowerMargin uint32
	HsyncLen, VsyncLen       uint32
	Sync, Vmode              uint32
	Rotate, Colorspace       uint32
	Reserved                 [4]uint32
}

// ScreenInfo is the part of the device's variable screen info fbdisp uses.
type ScreenInfo struct {
	Width        int
	Height       int
	BitsPerPixel int
}

func (v *varScreenInfo) screenInfo() ScreenInfo {
	return ScreenInfo{
		Width:        int(v.Xres),
		Height:       int(v.Yres),
		BitsPerPixel: int(v.BitsPerPixel),
	}
}

func (s ScreenInfo) BytesPerPixel() int { return s.BitsPerPixel / 8 }

// MapSize is the number of bytes mapped from the device.
func (s ScreenInfo) MapSize() int { return s.Width * s.Height * s.BitsPerPixel / 8 }

// Validate rejects geometries whose colour bytes would not fit in a pixel.
func (s ScreenInfo) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return errors.Errorf("invalid resolution %dx%d", s.Width, s.Height)
	}
	if s.BitsPerPixel%8 != 0 || s.BitsPerPixel < 24 {
		return errors.Errorf("unsupported color depth %d bpp: need 24 or 32", s.BitsPerPixel)
	}
	return nil
}
