package format

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// DecodeName converts raw name bytes from a record into a Go string.
//
// Names written by this implementation are UTF-8. The original C producer
// wrote raw char bytes, which in practice were Windows-1252; anything that
// fails UTF-8 validation is decoded through that code page so legacy
// streams round-trip their accented names instead of erroring.
func DecodeName(data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	// Fast path: pure ASCII is identical in UTF-8 and Windows-1252.
	if isASCII(data) {
		return string(data), nil
	}
	if utf8.Valid(data) {
		return string(data), nil
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode windows-1252 name: %w", err)
	}
	return string(decoded), nil
}

func isASCII(data []byte) bool {
	for _, c := range data {
		if c >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
