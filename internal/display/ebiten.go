package display

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/faryon93/fbdisp/internal/errors"
	"github.com/faryon93/fbdisp/internal/presenter"
)

// EbitenDisplay shows a presenter.Canvas in an Ebitengine window. The frame
// loop runs on its own goroutine; Ebitengine only reads flipped frames.
type EbitenDisplay struct {
	*presenter.Canvas

	title   string
	width   int
	height  int
	scratch []byte

	ebitenImage *ebiten.Image
	lastFlip    uint64

	loopDone atomic.Bool
	loopErr  error
	errMu    sync.Mutex
}

var (
	_ presenter.Surface = (*EbitenDisplay)(nil)
	_ presenter.Events  = (*EbitenDisplay)(nil)
)

// NewEbitenDisplay creates a window of (width*scale) x (height*scale) pixels.
// Sizes no window could be created for are rejected before any allocation.
func NewEbitenDisplay(title string, width, height, scale int) (*EbitenDisplay, error) {
	w, h, err := presenter.SurfaceSize(width, height, scale)
	if err != nil {
		return nil, err
	}
	return &EbitenDisplay{
		Canvas:  presenter.NewCanvas(w, h),
		title:   title,
		width:   w,
		height:  h,
		scratch: make([]byte, w*h*4),
	}, nil
}

// Run starts loop on a goroutine and the Ebitengine game loop on the calling
// goroutine. It returns once the window is gone and loop has returned.
func (d *EbitenDisplay) Run(ctx context.Context, loop func(context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ebiten.SetWindowSize(d.width, d.height)
	ebiten.SetWindowTitle(d.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowClosingHandled(true)

	done := make(chan struct{})
	go func() {
		defer close(done)
		err := loop(ctx)
		d.errMu.Lock()
		d.loopErr = err
		d.errMu.Unlock()
		d.loopDone.Store(true)
	}()

	runErr := ebiten.RunGame(d)

	// the window is gone; make sure the loop stops drawing into it
	cancel()
	d.Canvas.Close()
	<-done

	if runErr != nil {
		return errors.Wrap(runErr, "display")
	}
	d.errMu.Lock()
	defer d.errMu.Unlock()
	return d.loopErr
}

// --- ebiten.Game interface ---

func (d *EbitenDisplay) Update() error {
	requestClose, terminate := nextUpdate(ebiten.IsWindowBeingClosed(), d.loopDone.Load())
	if requestClose {
		d.RequestClose()
	}
	if terminate {
		return ebiten.Termination
	}
	return nil
}

// nextUpdate decides what a tick does: a close click is handed to the frame
// loop, and the window only goes away once the loop has returned.
func nextUpdate(beingClosed, loopDone bool) (requestClose, terminate bool) {
	return beingClosed, loopDone
}

func (d *EbitenDisplay) Draw(screen *ebiten.Image) {
	fresh := d.ebitenImage == nil
	if fresh {
		d.ebitenImage = ebiten.NewImage(d.width, d.height)
	}
	if flips := d.CopyFront(d.scratch); fresh || flips != d.lastFlip {
		d.ebitenImage.WritePixels(d.scratch)
		d.lastFlip = flips
	}
	screen.DrawImage(d.ebitenImage, nil)
}

func (d *EbitenDisplay) Layout(outsideWidth, outsideHeight int) (int, int) {
	return d.width, d.height
}
