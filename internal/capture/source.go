package capture

import (
	"sync"

	"github.com/faryon93/fbdisp/internal/errors"
)

// deviceOps are the system calls Source needs. The Linux build talks to the
// kernel; tests substitute a fake.
type deviceOps interface {
	open(path string) (int, error)
	varScreenInfo(fd int) (varScreenInfo, error)
	mmap(fd int, size int) ([]byte, error)
	munmap(b []byte) error
	close(fd int) error
}

// Source is an open framebuffer device with its pixel memory mapped
// read-only. It owns the descriptor and the mapping until Close.
type Source struct {
	ops   deviceOps
	fd    int
	info  ScreenInfo
	data  []byte
	frame *Frame

	closeOnce sync.Once
	closeErr  error
}

// Open opens the framebuffer device at path, queries its geometry and maps
// its pixel memory. Anything acquired before a failure is released first.
func Open(path string) (*Source, error) {
	return openWith(sysOps, path)
}

func openWith(ops deviceOps, path string) (*Source, error) {
	fd, err := ops.open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open "+path)
	}

	vinfo, err := ops.varScreenInfo(fd)
	if err != nil {
		_ = ops.close(fd)
		return nil, errors.Wrap(err, "FBIOGET_VSCREENINFO")
	}
	info := vinfo.screenInfo()
	if err := info.Validate(); err != nil {
		_ = ops.close(fd)
		return nil, errors.Wrap(err, path)
	}

	data, err := ops.mmap(fd, info.MapSize())
	if err != nil {
		_ = ops.close(fd)
		return nil, errors.Wrap(err, "mmap")
	}

	frame, err := NewFrame(data, info.Width, info.Height, info.BytesPerPixel())
	if err != nil {
		_ = ops.munmap(data)
		_ = ops.close(fd)
		return nil, err
	}

	return &Source{
		ops:   ops,
		fd:    fd,
		info:  info,
		data:  data,
		frame: frame,
	}, nil
}

func (s *Source) Info() ScreenInfo { return s.info }

// Frame lends out the mapped pixels. The view is only valid until Close.
func (s *Source) Frame() *Frame { return s.frame }

// Close unmaps the pixel memory and closes the device. Later calls return the
// result of the first.
func (s *Source) Close() error {
	if s == nil {
		return nil
	}
	s.closeOnce.Do(func() {
		s.closeErr = errors.Join(
			errors.Wrap(s.ops.munmap(s.data), "munmap"),
			errors.Wrap(s.ops.close(s.fd), "close"),
		)
		s.data = nil
		s.frame = nil
	})
	return s.closeErr
}
