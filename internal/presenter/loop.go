// Package presenter copies a mapped framebuffer into a window surface on a
// fixed period until the window is closed or the host cancels.
package presenter

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/faryon93/fbdisp/internal/capture"
	"github.com/faryon93/fbdisp/internal/logx"
)

const DefaultInterval = 30 * time.Millisecond

type State int32

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// SleepFunc waits for d or until ctx is done, whichever comes first.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Loop renders a Frame into a Surface every interval.
type Loop struct {
	frame   *capture.Frame
	surface Surface
	events  Events

	scale    int
	interval time.Duration
	sleep    SleepFunc
	logger   *slog.Logger

	state   atomic.Int32
	frames  atomic.Uint64
	skipped atomic.Uint64
}

// New returns a Loop that borrows frame read-only and draws into surface.
func New(frame *capture.Frame, surface Surface, events Events, opts ...Option) *Loop {
	l := &Loop{
		frame:    frame,
		surface:  surface,
		events:   events,
		scale:    1,
		interval: DefaultInterval,
		sleep:    Sleep,
		logger:   logx.Discard(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Loop) State() State { return State(l.state.Load()) }

// Frames returns the number of frames presented so far.
func (l *Loop) Frames() uint64 { return l.frames.Load() }

// Skipped returns the number of frames dropped because the surface could not
// be locked.
func (l *Loop) Skipped() uint64 { return l.skipped.Load() }

// Run presents frames until the window asks to close or ctx is done. The
// sleep between frames is not shortened by the time spent rendering.
func (l *Loop) Run(ctx context.Context) error {
	if l.State() == Stopped {
		return nil
	}
	l.logger.Debug("presenter started", "scale", l.scale, "interval", l.interval)
	for l.State() == Running {
		l.Step()

		if l.events.CloseRequested() {
			l.stop("close requested")
			break
		}
		if ctx.Err() != nil {
			l.stop("cancelled")
			break
		}
		if err := l.sleep(ctx, l.interval); err != nil {
			l.stop("cancelled")
		}
	}
	return nil
}

// Step renders and presents a single frame. A frame whose surface cannot be
// locked is skipped.
func (l *Loop) Step() {
	if err := l.surface.Lock(); err != nil {
		l.skipped.Add(1)
		logx.IsErr(l.logger, slog.LevelDebug, err, "frame", l.frames.Load())
		return
	}
	defer l.surface.Unlock()

	Render(l.surface.Pixels(), l.frame, l.scale)
	l.surface.Flip()
	l.frames.Add(1)
}

func (l *Loop) stop(reason string) {
	l.state.Store(int32(Stopped))
	l.logger.Debug("presenter stopped", "reason", reason, "frames", l.frames.Load(), "skipped", l.skipped.Load())
}

// Sleep blocks for d unless ctx is done first.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
