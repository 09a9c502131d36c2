//go:build linux

package inventorize

import (
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSegmentsBeyondIovMax(t *testing.T) {
	segments := make([][]byte, iovMax*2+17)
	var want strings.Builder
	for i := range segments {
		seg := []byte(strings.Repeat(string(rune('a'+i%26)), i%5))
		segments[i] = seg
		want.Write(seg)
	}

	path := filepath.Join(t.TempDir(), "out")
	file, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, writeSegments(file, segments))
	require.NoError(t, file.Close())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want.String(), string(got))
}

func TestAdvanceIovecs(t *testing.T) {
	a, b := []byte("hello"), []byte("world")
	iovecs := make([]syscall.Iovec, 2)
	iovecs[0].Base = &a[0]
	iovecs[0].SetLen(len(a))
	iovecs[1].Base = &b[0]
	iovecs[1].SetLen(len(b))

	rest := advanceIovecs(iovecs, 7)
	require.Len(t, rest, 1)
	assert.Equal(t, 3, int(rest[0].Len))
	assert.Same(t, &b[2], rest[0].Base)

	assert.Empty(t, advanceIovecs(rest, 3))
}
