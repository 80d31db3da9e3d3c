package format

import (
	"errors"
	"testing"
)

func TestHeaderRoundTrip(t *testing.T) {
	in := Header{Count: 42, ValueSize: 8, Flags: 0x3}
	b := EncodeHeader(in)
	if len(b) != HeaderSize {
		t.Fatalf("encoded header is %d bytes, want %d", len(b), HeaderSize)
	}
	out, err := ParseHeader(b)
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	if out != in {
		t.Fatalf("round trip mismatch: %+v != %+v", out, in)
	}
}

func TestParseHeaderMagic(t *testing.T) {
	b := EncodeHeader(Header{Count: 1})
	if ReadU32(b, MagicOffset) != Magic {
		t.Fatalf("encoded magic mismatch")
	}
	b[0] ^= 0xFF
	if _, err := ParseHeader(b); !errors.Is(err, ErrBadMagic) {
		t.Fatalf("want ErrBadMagic, got %v", err)
	}
}

func TestParseHeaderVersion(t *testing.T) {
	b := EncodeHeader(Header{Count: 1})
	PutU16(b, VersionOffset, Version+1)
	if _, err := ParseHeader(b); !errors.Is(err, ErrBadVersion) {
		t.Fatalf("want ErrBadVersion, got %v", err)
	}
}

func TestParseHeaderTruncated(t *testing.T) {
	b := EncodeHeader(Header{Count: 1})
	if _, err := ParseHeader(b[:HeaderSize-1]); !errors.Is(err, ErrTruncated) {
		t.Fatalf("want ErrTruncated, got %v", err)
	}
}

func TestAppendRecord(t *testing.T) {
	rec := AppendRecord(nil, -7, []byte("IDLE"), []byte{1, 2, 3, 4})
	want := RecordFixedSize + 4 + 4
	if len(rec) != want {
		t.Fatalf("record is %d bytes, want %d", len(rec), want)
	}
	if ReadI32(rec, 0) != -7 {
		t.Fatalf("key mismatch: %d", ReadI32(rec, 0))
	}
	if ReadU16(rec, 4) != 4 {
		t.Fatalf("name length mismatch: %d", ReadU16(rec, 4))
	}
	if string(rec[6:10]) != "IDLE" {
		t.Fatalf("name bytes mismatch: %q", rec[6:10])
	}
}
