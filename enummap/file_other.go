//go:build !linux && !darwin

package enummap

import (
	"bytes"
	"fmt"
	"os"
)

// OpenFile reads a serialized map from path. On platforms without the mmap
// fast path the file is read into memory whole.
func OpenFile(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty map file: %s", path)
	}
	m, err := Deserialize(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
