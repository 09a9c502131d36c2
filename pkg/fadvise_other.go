//go:build !linux

package inventorize

import "os"

func adviseSequential(file *os.File) {}

func adviseDontNeed(file *os.File) {}
