package format

import "errors"

var (
	// ErrBadMagic indicates the stream did not start with the ENUM magic.
	ErrBadMagic = errors.New("format: bad magic")
	// ErrBadVersion indicates a magic match with an unsupported version.
	ErrBadVersion = errors.New("format: unsupported version")
	// ErrTruncated indicates the stream ended before a structure was complete.
	ErrTruncated = errors.New("format: truncated stream")
)
