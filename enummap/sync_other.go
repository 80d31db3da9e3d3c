//go:build !linux && !darwin

package enummap

import "os"

// syncFile flushes file data to stable storage via the portable fsync.
func syncFile(f *os.File) error {
	return f.Sync()
}
