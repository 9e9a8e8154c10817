package cli_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faryon93/fbdisp/internal/capture"
	"github.com/faryon93/fbdisp/internal/cli"
	"github.com/faryon93/fbdisp/internal/config"
	"github.com/faryon93/fbdisp/internal/errors"
	"github.com/faryon93/fbdisp/internal/presenter"
)

type fakeSource struct {
	info   capture.ScreenInfo
	frame  *capture.Frame
	closed int
}

func (s *fakeSource) Info() capture.ScreenInfo { return s.info }
func (s *fakeSource) Frame() *capture.Frame    { return s.frame }
func (s *fakeSource) Close() error {
	s.closed++
	return nil
}

// fakeWindow closes itself after a fixed number of frames.
type fakeWindow struct {
	*presenter.Canvas
	closeAfter uint64
	runErr     error
	runs       int
}

func (w *fakeWindow) CloseRequested() bool { return w.Flips() >= w.closeAfter }

func (w *fakeWindow) Run(ctx context.Context, loop func(context.Context) error) error {
	w.runs++
	if w.runErr != nil {
		return w.runErr
	}
	return loop(ctx)
}

type harness struct {
	src     *fakeSource
	win     *fakeWindow
	cfg     *config.Config
	opened  []string
	openErr error
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	frame, err := capture.NewFrame(make([]byte, 4*3*4), 4, 3, 4)
	require.NoError(t, err)
	return &harness{
		src: &fakeSource{
			info:  capture.ScreenInfo{Width: 4, Height: 3, BitsPerPixel: 32},
			frame: frame,
		},
		win: &fakeWindow{closeAfter: 3},
	}
}

func (h *harness) deps() cli.Deps {
	return cli.Deps{
		OpenSource: func(path string) (cli.Source, error) {
			h.opened = append(h.opened, path)
			if h.openErr != nil {
				return nil, h.openErr
			}
			return h.src, nil
		},
		NewWindow: func(cfg *config.Config, info capture.ScreenInfo) (cli.Window, error) {
			h.cfg = cfg
			w, ht, err := presenter.SurfaceSize(info.Width, info.Height, cfg.Scale)
			if err != nil {
				return nil, err
			}
			h.win.Canvas = presenter.NewCanvas(w, ht)
			return h.win, nil
		},
	}
}

func execute(h *harness, args ...string) (int, string) {
	var out bytes.Buffer
	code := cli.Execute(context.Background(), args, &out, &out, h.deps())
	return code, out.String()
}

func TestMissingDevicePrintsUsage(t *testing.T) {
	h := newHarness(t)
	code, out := execute(h)
	assert.NotZero(t, code)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "fbdisp <device-path> [scale]")
	assert.Empty(t, h.opened, "nothing may be opened without a device path")
}

func TestInvalidScaleIsUsageError(t *testing.T) {
	h := newHarness(t)
	code, out := execute(h, "/dev/fb0", "abc")
	assert.NotZero(t, code)
	assert.Contains(t, out, "invalid scale")
	assert.Contains(t, out, "Usage:")
	assert.Empty(t, h.opened)
}

func TestCleanShutdown(t *testing.T) {
	h := newHarness(t)
	code, out := execute(h, "/dev/fb0", "2", "--interval", "1ms")
	assert.Zero(t, code, out)
	assert.Equal(t, []string{"/dev/fb0"}, h.opened)
	assert.Equal(t, 2, h.cfg.Scale)
	assert.Equal(t, time.Millisecond, h.cfg.Interval)
	assert.Equal(t, "fbdisp", h.cfg.Title)
	assert.Equal(t, 8, h.win.Width())
	assert.Equal(t, 6, h.win.Height())
	assert.EqualValues(t, 3, h.win.Flips())
	assert.Equal(t, 1, h.src.closed)
	assert.Contains(t, out, "fbdisp starting")
	assert.Contains(t, out, "resolution=4x3")
	assert.NotContains(t, out, "Usage:")
}

func TestOpenFailureExitsNonZero(t *testing.T) {
	h := newHarness(t)
	h.openErr = errors.Wrap(errors.New("permission denied"), "open /dev/fb0")
	code, out := execute(h, "/dev/fb0")
	assert.NotZero(t, code)
	assert.Contains(t, out, "fbdisp: open /dev/fb0: permission denied")
	assert.NotContains(t, out, "Usage:")
	assert.Zero(t, h.win.runs)
}

func TestDisplayFailureReleasesSource(t *testing.T) {
	h := newHarness(t)
	h.win.runErr = errors.New("display: no X server")
	code, out := execute(h, "/dev/fb0")
	assert.NotZero(t, code)
	assert.Contains(t, out, "no X server")
	assert.Equal(t, 1, h.src.closed)
}

func TestDebugPrintsStack(t *testing.T) {
	h := newHarness(t)
	h.win.runErr = errors.New("display: no X server")
	code, out := execute(h, "--debug", "/dev/fb0")
	assert.NotZero(t, code)
	assert.Contains(t, out, "no X server")
	assert.Contains(t, out, ".go:", "stack trace expected with --debug")
}

func TestBadIntervalIsUsageError(t *testing.T) {
	h := newHarness(t)
	code, out := execute(h, "/dev/fb0", "--interval", "0s")
	assert.NotZero(t, code)
	assert.Contains(t, out, "invalid interval")
	assert.Empty(t, h.opened)
}

func TestOversizedWindowReleasesSource(t *testing.T) {
	h := newHarness(t)
	code, out := execute(h, "/dev/fb0", "1099511627776")
	assert.NotZero(t, code)
	assert.Contains(t, out, "too large")
	assert.Equal(t, 1, h.src.closed)
	assert.Zero(t, h.win.runs)
}
