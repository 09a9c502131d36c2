package inventorize

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestEncodeHex(t *testing.T) {
	testCases := []struct {
		in   []byte
		want string
	}{
		{nil, ""},
		{[]byte{0x00}, "00"},
		{[]byte{0x0f, 0xf0}, "0ff0"},
		{[]byte{0xde, 0xad, 0xbe, 0xef}, "deadbeef"},
		{[]byte{0xff, 0x10, 0x01}, "ff1001"},
	}

	for _, tc := range testCases {
		if got := EncodeHex(tc.in); got != tc.want {
			t.Errorf("EncodeHex(%x) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestDecodeHex(t *testing.T) {
	testCases := []struct {
		in   string
		want []byte
		ok   bool
	}{
		{"", []byte{}, true},
		{"00", []byte{0x00}, true},
		{"DeadBeef", []byte{0xde, 0xad, 0xbe, 0xef}, true},
		{"abc", nil, false},
		{"zz", nil, false},
		{"0g", nil, false},
		{"g0", nil, false},
		{" 0", nil, false},
	}

	for _, tc := range testCases {
		got, ok := DecodeHex(tc.in)
		if ok != tc.ok {
			t.Errorf("DecodeHex(%q) ok = %v, expected %v", tc.in, ok, tc.ok)
			continue
		}
		if !tc.ok {
			if got != nil {
				t.Errorf("DecodeHex(%q) = %x, expected nil on failure", tc.in, got)
			}
			continue
		}
		if !bytes.Equal(got, tc.want) {
			t.Errorf("DecodeHex(%q) = %x, expected %x", tc.in, got, tc.want)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		b := make([]byte, rng.Intn(64))
		rng.Read(b)

		encoded := EncodeHex(b)
		if len(encoded) != len(b)*2 {
			t.Fatalf("EncodeHex length %d, expected %d", len(encoded), len(b)*2)
		}
		if lower := bytes.ToLower([]byte(encoded)); !bytes.Equal(lower, []byte(encoded)) {
			t.Errorf("EncodeHex produced uppercase output %q", encoded)
		}

		decoded, ok := DecodeHex(encoded)
		if !ok {
			t.Fatalf("DecodeHex rejected its own output %q", encoded)
		}
		if !bytes.Equal(b, decoded) {
			t.Errorf("round trip mismatch: %x -> %q -> %x", b, encoded, decoded)
		}
	}
}
