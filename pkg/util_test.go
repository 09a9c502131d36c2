package inventorize

import (
	"testing"
)

func TestParseChunkSize(t *testing.T) {
	testCases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"512", 512, true},
		{"128K", 128 * 1024, true},
		{"128k", 128 * 1024, true},
		{"2M", 2 * 1024 * 1024, true},
		{"4 KiB", 4 * 1024, true},
		{"1024B", 1024, true},
		{"64MiB", MaxChunkSize, true},
		{"", 0, false},
		{"K", 0, false},
		{"0", 0, false},
		{"-4K", 0, false},
		{"511", 0, false},
		{"1.5K", 0, false},
		{"65M", 0, false},
		{"1G", 0, false},
		{"12Q", 0, false},
	}

	for _, tc := range testCases {
		got, err := ParseChunkSize(tc.in)
		if !tc.ok {
			if err == nil {
				t.Errorf("ParseChunkSize(%q) = %d, expected error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseChunkSize(%q) failed: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseChunkSize(%q) = %d, expected %d", tc.in, got, tc.want)
		}
	}
}

func TestFormatSize(t *testing.T) {
	testCases := []struct {
		in   uint64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536 * 1024, "1.5 MB"},
	}

	for _, tc := range testCases {
		if got := FormatSize(tc.in); got != tc.want {
			t.Errorf("FormatSize(%d) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}
