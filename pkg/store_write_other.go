//go:build !linux

package inventorize

import "os"

func writeSegments(file *os.File, segments [][]byte) error {
	for _, seg := range segments {
		if _, err := file.Write(seg); err != nil {
			return err
		}
	}
	return nil
}
