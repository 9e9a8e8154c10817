//go:build linux

package capture

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

var sysOps deviceOps = unixOps{}

type unixOps struct{}

func (unixOps) open(path string) (int, error) {
	return unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
}

func (unixOps) varScreenInfo(fd int) (varScreenInfo, error) {
	var v varScreenInfo
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), fbioGetVScreenInfo, uintptr(unsafe.Pointer(&v)))
	if errno != 0 {
		return varScreenInfo{}, errno
	}
	return v, nil
}

func (unixOps) mmap(fd int, size int) ([]byte, error) {
	return unix.Mmap(fd, 0, size, unix.PROT_READ, unix.MAP_SHARED)
}

func (unixOps) munmap(b []byte) error { return unix.Munmap(b) }

func (unixOps) close(fd int) error { return unix.Close(fd) }
