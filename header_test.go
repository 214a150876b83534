package fastlzlib

import "testing"

func TestHeaderRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		h    header
	}{
		{"raw block", header{blockType: BlockTypeRaw, compressedLength: 11, originalLength: 11, blockSize: 1024}},
		{"compressed block", header{blockType: BlockTypeCompressed, compressedLength: 40, originalLength: 100, blockSize: 4096}},
		{"eof sentinel", header{blockType: BlockTypeCompressed, blockSize: 1024}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := make([]byte, HeaderSize)
			encodeHeader(tc.h, buf)

			got, err := decodeHeader(buf)
			if err != nil {
				t.Fatalf("decodeHeader: %v", err)
			}
			if got != tc.h {
				t.Fatalf("got %+v, want %+v", got, tc.h)
			}
		})
	}
}

func TestDecodeHeaderBadMagic(t *testing.T) {
	buf := make([]byte, HeaderSize)
	copy(buf, "NotFLZ!")
	if _, err := decodeHeader(buf); err == nil || err.Status != DataError {
		t.Fatalf("expected DataError, got %v", err)
	}
}

func TestDecodeHeaderBadBlockType(t *testing.T) {
	buf := make([]byte, HeaderSize)
	encodeHeader(header{blockType: 0xAB}, buf)
	if _, err := decodeHeader(buf); err == nil || err.Status != VersionError {
		t.Fatalf("expected VersionError, got %v", err)
	}
}

func TestDecodeHeaderTooShort(t *testing.T) {
	if _, err := decodeHeader(make([]byte, HeaderSize-1)); err == nil {
		t.Fatal("expected error for short buffer")
	}
}

func TestGetStreamBlockSize(t *testing.T) {
	buf := make([]byte, HeaderSize)
	encodeHeader(header{blockType: BlockTypeRaw, blockSize: 777}, buf)
	if got := GetStreamBlockSize(buf); got != 777 {
		t.Fatalf("got %d, want 777", got)
	}
	if got := GetStreamBlockSize(make([]byte, HeaderSize)); got != 0 {
		t.Fatalf("got %d, want 0 for non-matching magic", got)
	}
}

func TestIsCompressedStream(t *testing.T) {
	buf := make([]byte, HeaderSize)
	encodeHeader(header{blockType: BlockTypeRaw, blockSize: 1}, buf)
	if !IsCompressedStream(buf) {
		t.Fatal("expected true for valid header")
	}
	if IsCompressedStream(make([]byte, HeaderSize)) {
		t.Fatal("expected false for garbage header")
	}
}

func TestGetStreamInfo(t *testing.T) {
	buf := make([]byte, HeaderSize)
	encodeHeader(header{blockType: BlockTypeCompressed, compressedLength: 5, originalLength: 11, blockSize: 256}, buf)
	c, o, err := GetStreamInfo(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != 5 || o != 11 {
		t.Fatalf("got (%d, %d), want (5, 11)", c, o)
	}
}
