//go:build darwin

package enummap

import (
	"os"

	"golang.org/x/sys/unix"
)

// syncFile flushes file data to stable storage. macOS fsync only reaches
// the drive cache; F_FULLFSYNC forces the write through to the platter.
func syncFile(f *os.File) error {
	_, err := unix.FcntlInt(f.Fd(), unix.F_FULLFSYNC, 0)
	return err
}
