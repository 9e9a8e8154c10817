package capture_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faryon93/fbdisp/internal/capture"
)

func TestNewFrameCutsToExactSize(t *testing.T) {
	pix := make([]byte, 2*2*4+16)
	f, err := capture.NewFrame(pix, 2, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, 16, f.Len())
	assert.Equal(t, 2, f.Width())
	assert.Equal(t, 2, f.Height())
	assert.Equal(t, 4, f.BytesPerPixel())

	_, _, _, ok := f.BGR(0, 2)
	assert.False(t, ok, "rows past the frame height must be rejected")
}

func TestNewFrameRejects(t *testing.T) {
	_, err := capture.NewFrame(make([]byte, 15), 2, 2, 4)
	assert.Error(t, err, "short buffer")

	_, err = capture.NewFrame(make([]byte, 8), 2, 2, 2)
	assert.Error(t, err, "two bytes per pixel cannot hold three colour bytes")

	_, err = capture.NewFrame(nil, 0, 2, 4)
	assert.Error(t, err, "zero width")
}

func TestFrameBGR(t *testing.T) {
	// 2x1 frame, 4 bytes per pixel: blue, green, red, unused
	pix := []byte{
		0x01, 0x02, 0x03, 0xff,
		0x11, 0x12, 0x13, 0xff,
	}
	f, err := capture.NewFrame(pix, 2, 1, 4)
	require.NoError(t, err)

	b, g, r, ok := f.BGR(1, 0)
	require.True(t, ok)
	assert.Equal(t, [3]uint8{0x11, 0x12, 0x13}, [3]uint8{b, g, r})

	off, ok := f.Offset(1, 0)
	require.True(t, ok)
	assert.Equal(t, 4, off)

	for _, p := range [][2]int{{-1, 0}, {2, 0}, {0, 1}, {0, -1}} {
		_, _, _, ok := f.BGR(p[0], p[1])
		assert.False(t, ok, "pixel %v", p)
	}
}

func TestFrameBGRPackedRGB(t *testing.T) {
	pix := []byte{1, 2, 3, 4, 5, 6}
	f, err := capture.NewFrame(pix, 1, 2, 3)
	require.NoError(t, err)

	b, g, r, ok := f.BGR(0, 1)
	require.True(t, ok)
	assert.Equal(t, [3]uint8{4, 5, 6}, [3]uint8{b, g, r})
}

func TestScreenInfo(t *testing.T) {
	info := capture.ScreenInfo{Width: 640, Height: 480, BitsPerPixel: 32}
	assert.NoError(t, info.Validate())
	assert.Equal(t, 4, info.BytesPerPixel())
	assert.Equal(t, 640*480*4, info.MapSize())

	assert.Error(t, capture.ScreenInfo{Width: 640, Height: 480, BitsPerPixel: 16}.Validate())
	assert.Error(t, capture.ScreenInfo{Width: 640, Height: 480, BitsPerPixel: 30}.Validate())
	assert.Error(t, capture.ScreenInfo{Width: 0, Height: 480, BitsPerPixel: 32}.Validate())
}
