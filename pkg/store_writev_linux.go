//go:build linux

package inventorize

import (
	"errors"
	"io"
	"os"
	"runtime"
	"syscall"
	"unsafe"

	"github.com/google/vectorio"
)

// iovMax is the kernel's UIO_MAXIOV, the most iovecs one writev accepts
const iovMax = 1024

// writeSegments writes every segment with writev, at most iovMax iovecs per
// call, resuming after short writes.
func writeSegments(file *os.File, segments [][]byte) error {
	iovecs := make([]syscall.Iovec, 0, len(segments))
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		iov := syscall.Iovec{Base: &seg[0]}
		iov.SetLen(len(seg))
		iovecs = append(iovecs, iov)
	}

	for len(iovecs) > 0 {
		chunk := iovecs[:min(len(iovecs), iovMax)]
		nw, err := vectorio.WritevRaw(uintptr(file.Fd()), chunk)
		if err != nil {
			if errors.Is(err, syscall.EINTR) {
				continue
			}
			return err
		}
		if nw == 0 {
			return io.ErrShortWrite
		}
		iovecs = advanceIovecs(iovecs, nw)
	}

	runtime.KeepAlive(segments)
	return nil
}

// advanceIovecs drops n written bytes from the front of iovecs
func advanceIovecs(iovecs []syscall.Iovec, n int) []syscall.Iovec {
	for n > 0 && len(iovecs) > 0 {
		l := int(iovecs[0].Len)
		if n >= l {
			n -= l
			iovecs = iovecs[1:]
			continue
		}
		iovecs[0].Base = (*byte)(unsafe.Add(unsafe.Pointer(iovecs[0].Base), n))
		iovecs[0].SetLen(l - n)
		n = 0
	}
	return iovecs
}
