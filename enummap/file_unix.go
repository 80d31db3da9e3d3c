//go:build linux || darwin

package enummap

import (
	"bytes"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// OpenFile reads a serialized map from path. The file is memory-mapped
// read-only for the duration of the decode, so large maps load without a
// second in-memory copy of the stream.
func OpenFile(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if st.Size() == 0 {
		return nil, fmt.Errorf("empty map file: %s", path)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(st.Size()), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	defer func() { _ = unix.Munmap(data) }()

	m, err := Deserialize(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
