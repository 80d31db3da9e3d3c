package enummap

import (
	"fmt"
	"io"

	"github.com/joshuapare/enumkit/internal/format"
	"github.com/joshuapare/enumkit/pkg/types"
)

// Serialize writes the map to w in the fixed binary layout (see
// internal/format): a magic-tagged header, then one record per entry in
// bucket-then-chain order.
//
// Reference-storage maps serialize the record structure but not the
// references themselves; identity cannot survive a byte stream, so each
// value slot is written zeroed and decodes as a nil reference.
func (m *Map) Serialize(w io.Writer) error {
	if w == nil {
		return fmt.Errorf("serialize: nil writer: %w", types.ErrInvalidArg)
	}
	m.lk.Lock()
	defer m.lk.Unlock()

	size := format.HeaderSize + m.count*(format.RecordFixedSize+m.recordPayloadSize())
	buf := make([]byte, 0, size)
	buf = append(buf, format.EncodeHeader(format.Header{
		Count:     uint64(m.count),
		ValueSize: uint64(m.valueSize),
		Flags:     uint32(m.flags),
	})...)

	var refSlot [format.RefSlotSize]byte
	m.forEach(func(key int32, name string, hasName bool, v Value) {
		var nb []byte
		if hasName {
			nb = []byte(name)
		}
		if m.valueSize > 0 {
			buf = format.AppendRecord(buf, key, nb, v.Bytes())
		} else {
			buf = format.AppendRecord(buf, key, nb, refSlot[:])
		}
	})

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("serialize: %w", err)
	}
	return nil
}

// recordPayloadSize is the value-slot width per record, used only to size
// the output buffer (names add to this per entry).
func (m *Map) recordPayloadSize() int {
	if m.valueSize > 0 {
		return m.valueSize
	}
	return format.RefSlotSize
}

// Deserialize reads a serialized map from r.
//
// The magic and version are validated exactly, and the table is rebuilt
// through the normal create-and-associate path so uniqueness and
// load-factor invariants are re-enforced rather than trusted from the
// stream. Any short read, header mismatch, or duplicate key aborts with an
// error; a partial table is never returned.
func Deserialize(r io.Reader) (*Map, error) {
	if r == nil {
		return nil, fmt.Errorf("deserialize: nil reader: %w", types.ErrInvalidArg)
	}

	hb := make([]byte, format.HeaderSize)
	if _, err := io.ReadFull(r, hb); err != nil {
		return nil, badStream(err)
	}
	hdr, err := format.ParseHeader(hb)
	if err != nil {
		return nil, badStream(err)
	}
	flags := types.Flags(hdr.Flags)
	if !flags.Valid() {
		return nil, fmt.Errorf("%w: unknown flag bits %#x", types.ErrBadFormat, hdr.Flags)
	}
	if hdr.ValueSize > types.MaxValueWidth {
		return nil, fmt.Errorf("%w: value width %d exceeds limit", types.ErrBadFormat, hdr.ValueSize)
	}
	if hdr.Count > types.MaxCapacityHint {
		return nil, fmt.Errorf("%w: entry count %d exceeds limit", types.ErrBadFormat, hdr.Count)
	}

	hint := int(hdr.Count)
	if hint == 0 {
		hint = 1
	}
	// Insert with mutation permitted even when the stream carries the
	// read-only flag; the flag word is restored once the table is rebuilt.
	m, err := New(hint, int(hdr.ValueSize), flags&^types.FlagReadOnly)
	if err != nil {
		return nil, fmt.Errorf("deserialize: %w", err)
	}

	var fixed [format.RecordFixedSize]byte
	for i := uint64(0); i < hdr.Count; i++ {
		if _, err := io.ReadFull(r, fixed[:]); err != nil {
			return nil, badStream(err)
		}
		key := format.ReadI32(fixed[:], 0)
		nameLen := format.ReadU16(fixed[:], 4)

		var name string
		if nameLen > 0 {
			nb := make([]byte, nameLen)
			if _, err := io.ReadFull(r, nb); err != nil {
				return nil, badStream(err)
			}
			if name, err = format.DecodeName(nb); err != nil {
				return nil, fmt.Errorf("%w: %w", types.ErrBadFormat, err)
			}
		}

		var v Value
		if m.valueSize > 0 {
			vb := make([]byte, m.valueSize)
			if _, err := io.ReadFull(r, vb); err != nil {
				return nil, badStream(err)
			}
			v = BytesValue(vb)
		} else {
			var slot [format.RefSlotSize]byte
			if _, err := io.ReadFull(r, slot[:]); err != nil {
				return nil, badStream(err)
			}
			// Reference identity does not survive a stream.
			v = RefValue(nil)
		}

		if err := m.associate(key, v, name); err != nil {
			return nil, fmt.Errorf("deserialize key %d: %w", key, err)
		}
	}

	m.flags = flags
	return m, nil
}

// badStream tags a read or parse failure with the public bad-format sentinel.
func badStream(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		err = format.ErrTruncated
	}
	return fmt.Errorf("%w: %w", types.ErrBadFormat, err)
}
