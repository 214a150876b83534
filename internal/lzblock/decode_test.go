package lzblock

import "testing"

func TestDecompressLiteralOnly(t *testing.T) {
	// token: litLen=5, matchLen=0, no match follows (end of stream)
	src := []byte{0x50, 'h', 'e', 'l', 'l', 'o'}
	got, err := Decompress(src, nil, 64)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "hello" {
		t.Fatalf("got %q, want %q", got, "hello")
	}
}

func TestDecompressWithMatch(t *testing.T) {
	tests := []struct {
		name string
		src  []byte
		want string
	}{
		{
			name: "repeat last 4 bytes",
			// literals "abcd", then match offset=4 length=0+4=4 -> "abcd"
			src:  []byte{0x40, 'a', 'b', 'c', 'd', 0x04, 0x00},
			want: "abcdabcd",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decompress(tc.src, nil, 64)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDecompressTruncated(t *testing.T) {
	src := []byte{0x50, 'h', 'e'} // claims 5 literal bytes, only 2 present
	if _, err := Decompress(src, nil, 64); err != ErrTruncated {
		t.Fatalf("got %v, want ErrTruncated", err)
	}
}

func TestDecompressBadOffset(t *testing.T) {
	src := []byte{0x00, 0x00, 0x00} // no literals, offset 0
	if _, err := Decompress(src, nil, 64); err != ErrBadOffset {
		t.Fatalf("got %v, want ErrBadOffset", err)
	}
}

func TestWorstCaseSize(t *testing.T) {
	if WorstCaseSize(0) < 16 {
		t.Fatalf("worst case size should always include header slack")
	}
	if WorstCaseSize(1000) <= 1000 {
		t.Fatalf("worst case size must exceed input size")
	}
}
