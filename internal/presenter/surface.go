package presenter

import (
	"image"
	"sync"
	"sync/atomic"

	"github.com/faryon93/fbdisp/internal/errors"
)

// Surface is a pixel buffer the loop writes into and presents. Pixels may
// only be written between a successful Lock and the matching Unlock.
type Surface interface {
	Lock() error
	Unlock()
	Pixels() *image.RGBA
	// Flip presents the current pixels. It is called with the lock held.
	Flip()
}

// Events reports window-system events to the loop.
type Events interface {
	// CloseRequested reports whether the user has asked to close the
	// window. The window backend pumps its own events and records the
	// request; once set it stays set.
	CloseRequested() bool
}

var ErrSurfaceClosed error = errors.New("surface closed")

// Canvas is a double-buffered Surface. The loop writes the back buffer under
// Lock; Flip publishes it to the front buffer a window reads with CopyFront.
// Canvas also carries the close request, so it doubles as the loop's Events.
type Canvas struct {
	mu   sync.Mutex
	back *image.RGBA

	frontMu sync.Mutex
	front   []byte
	flips   uint64

	closeRequested atomic.Bool
	closed         atomic.Bool
}

var (
	_ Surface = (*Canvas)(nil)
	_ Events  = (*Canvas)(nil)
)

// NewCanvas returns a width x height canvas, initially opaque black.
func NewCanvas(width, height int) *Canvas {
	back := NewBlack(width, height)
	front := make([]byte, len(back.Pix))
	copy(front, back.Pix)
	return &Canvas{back: back, front: front}
}

func (c *Canvas) Width() int  { return c.back.Bounds().Dx() }
func (c *Canvas) Height() int { return c.back.Bounds().Dy() }

func (c *Canvas) Lock() error {
	if c.closed.Load() {
		return ErrSurfaceClosed
	}
	c.mu.Lock()
	return nil
}

func (c *Canvas) Unlock() { c.mu.Unlock() }

func (c *Canvas) Pixels() *image.RGBA { return c.back }

func (c *Canvas) Flip() {
	c.frontMu.Lock()
	defer c.frontMu.Unlock()
	copy(c.front, c.back.Pix)
	c.flips++
}

// CopyFront copies the last flipped frame into dst and returns the number of
// flips so far.
func (c *Canvas) CopyFront(dst []byte) uint64 {
	c.frontMu.Lock()
	defer c.frontMu.Unlock()
	copy(dst, c.front)
	return c.flips
}

// Flips returns how many frames have been presented.
func (c *Canvas) Flips() uint64 {
	c.frontMu.Lock()
	defer c.frontMu.Unlock()
	return c.flips
}

// RequestClose records a window close request for the next CloseRequested.
func (c *Canvas) RequestClose() { c.closeRequested.Store(true) }

func (c *Canvas) CloseRequested() bool { return c.closeRequested.Load() }

// Close makes every later Lock fail.
func (c *Canvas) Close() { c.closed.Store(true) }
