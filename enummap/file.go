package enummap

import (
	"fmt"
	"os"
)

// WriteFile serializes the map to path, replacing any existing file, and
// flushes the result durably before returning (fdatasync on Linux, fsync
// elsewhere).
func (m *Map) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write map file: %w", err)
	}
	if err := m.Serialize(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := syncFile(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("flush map file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close map file: %w", err)
	}
	return nil
}
