package format

import "fmt"

// Header captures the fixed fields at the start of a serialized enum map.
type Header struct {
	Count     uint64
	ValueSize uint64
	Flags     uint32
}

// EncodeHeader renders h into a fresh HeaderSize byte slice.
func EncodeHeader(h Header) []byte {
	b := make([]byte, HeaderSize)
	PutU32(b, MagicOffset, Magic)
	PutU16(b, VersionOffset, Version)
	PutU64(b, CountOffset, h.Count)
	PutU64(b, ValueSizeOffset, h.ValueSize)
	PutU32(b, FlagsOffset, h.Flags)
	return b
}

// ParseHeader validates the magic and version and extracts the header fields.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("header: %w", ErrTruncated)
	}
	if ReadU32(b, MagicOffset) != Magic {
		return Header{}, fmt.Errorf("header: %w", ErrBadMagic)
	}
	if v := ReadU16(b, VersionOffset); v != Version {
		return Header{}, fmt.Errorf("header: %w (%d)", ErrBadVersion, v)
	}
	return Header{
		Count:     ReadU64(b, CountOffset),
		ValueSize: ReadU64(b, ValueSizeOffset),
		Flags:     ReadU32(b, FlagsOffset),
	}, nil
}

// AppendRecord appends one entry record to dst and returns the extended
// slice. The caller supplies the exact value payload: the map's value width
// in copy-storage mode, or a RefSlotSize placeholder in reference mode.
func AppendRecord(dst []byte, key int32, name []byte, value []byte) []byte {
	var fixed [RecordFixedSize]byte
	PutI32(fixed[:], 0, key)
	PutU16(fixed[:], 4, uint16(len(name)))
	dst = append(dst, fixed[:]...)
	dst = append(dst, name...)
	dst = append(dst, value...)
	return dst
}
