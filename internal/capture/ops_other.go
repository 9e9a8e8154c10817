//go:build !linux

package capture

import "github.com/faryon93/fbdisp/internal/errors"

var sysOps deviceOps = unsupportedOps{}

// framebuffer devices are a Linux interface.
type unsupportedOps struct{}

func (unsupportedOps) open(string) (int, error) { return -1, errors.ErrUnsupported }

func (unsupportedOps) varScreenInfo(int) (varScreenInfo, error) {
	return varScreenInfo{}, errors.ErrUnsupported
}

func (unsupportedOps) mmap(int, int) ([]byte, error) { return nil, errors.ErrUnsupported }
func (unsupportedOps) munmap([]byte) error           { return errors.ErrUnsupported }
func (unsupportedOps) close(int) error               { return errors.ErrUnsupported }
