package inventorize

import (
	"errors"
	"fmt"
)

// ErrInventoryExists is returned when saving without overwrite onto an existing inventory
var ErrInventoryExists = errors.New("inventory already exists")

// FileError reports a filesystem operation that failed for a specific path
type FileError struct {
	Op   string // open, stat, read, readdir, readlink
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("file I/O error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

func newFileError(op, path string, err error) error {
	return &FileError{Op: op, Path: path, Err: err}
}

// ParseHashAlgorithmError is returned for an unknown hash algorithm name
type ParseHashAlgorithmError struct {
	Name string
}

func (e *ParseHashAlgorithmError) Error() string {
	return fmt.Sprintf("unsupported hash algorithm: %q (supported: md5, sha1)", e.Name)
}

// ParseHashValueError is returned for malformed hash text
type ParseHashValueError struct {
	Value  string
	Reason string
}

func (e *ParseHashValueError) Error() string {
	return fmt.Sprintf("invalid hash value %q: %s", e.Value, e.Reason)
}
