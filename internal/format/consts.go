// Package format defines the binary layout of serialized enum maps and the
// low-level encoding helpers shared by the codec.
//
// A serialized map is a fixed header followed by one record per entry:
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------------
//	 0x00    4    Magic 0x454E554D ("ENUM")
//	 0x04    2    Format version (currently 1)
//	 0x06    8    Entry count
//	 0x0E    8    Value width in bytes (0 = reference storage)
//	 0x16    4    Flags word
//
// Each record:
//
//	 4    Entry key (signed)
//	 2    Name length in bytes
//	 n    Name bytes (UTF-8; legacy producers wrote Windows-1252)
//	 w    Value bytes (value width), or an 8-byte reference slot when the
//	      width is zero
//
// All integers are little-endian. The original C producer wrote host byte
// order and host word widths; this layout pins the little-endian 64-bit
// rendition, which is the only one observed in the wild.
package format

// Magic identifies a serialized enum map ("ENUM" read as a big-endian
// 32-bit word, matching the original producer's constant).
const Magic uint32 = 0x454E554D

// Version is the only supported format version.
const Version uint16 = 1

// Header field offsets and sizes.
const (
	MagicOffset     = 0x00
	VersionOffset   = 0x04
	CountOffset     = 0x06
	ValueSizeOffset = 0x0E
	FlagsOffset     = 0x16

	// HeaderSize is the fixed header length in bytes.
	HeaderSize = 0x1A

	// RecordFixedSize is the fixed prefix of each record (key + name length).
	RecordFixedSize = 6

	// RefSlotSize is the width of the value slot written for
	// reference-storage maps. Reference identity cannot survive a stream;
	// the slot keeps the record width stable and decodes as a nil
	// reference.
	RefSlotSize = 8
)
