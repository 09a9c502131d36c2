//go:build linux

package inventorize

import (
	"os"

	"golang.org/x/sys/unix"
)

// adviseSequential tells the kernel the file will be read front to back.
// Failures are ignored; the hint never changes results.
func adviseSequential(file *os.File) {
	_ = unix.Fadvise(int(file.Fd()), 0, 0, unix.FADV_SEQUENTIAL)
}

// adviseDontNeed drops the hashed file's pages from the page cache so a full
// repository scan does not evict the working set.
func adviseDontNeed(file *os.File) {
	_ = unix.Fadvise(int(file.Fd()), 0, 0, unix.FADV_DONTNEED)
}
