package inventorize

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// SymlinkMode controls whether symlinked directories are descended into
type SymlinkMode string

const (
	SymlinkAll       SymlinkMode = "all"       // follow every symlinked directory
	SymlinkContained SymlinkMode = "contained" // follow only when the target stays inside the root
	SymlinkNone      SymlinkMode = "none"      // never follow symlinked directories
)

// ParseSymlinkMode validates a symlink mode name
func ParseSymlinkMode(mode string) (SymlinkMode, error) {
	switch m := SymlinkMode(strings.ToLower(strings.TrimSpace(mode))); m {
	case SymlinkAll, SymlinkContained, SymlinkNone:
		return m, nil
	case "":
		return DefaultSymlinkMode, nil
	default:
		return "", fmt.Errorf("unsupported symlink mode: %s (supported: all, contained, none)", mode)
	}
}

// WalkOptions configures a DirectoryIterator
type WalkOptions struct {
	SkipHidden bool
	Symlinks   SymlinkMode
}

// Entry is one file produced by a DirectoryIterator
type Entry struct {
	Path string      // root-joined path
	Info fs.FileInfo // follows symlinks
}

// dirStream is one open directory on the traversal stack
type dirStream struct {
	path    string
	dir     *os.File
	info    fs.FileInfo
	pending []fs.DirEntry
}

// DirectoryIterator walks a tree depth first in pre-order using an explicit
// stack of open directory streams. Only files are produced; directories are
// descended into immediately when encountered. The iterator cannot be
// restarted and an error ends it for good.
type DirectoryIterator struct {
	root     string
	rootReal string
	opts     WalkOptions
	stack    []*dirStream
	started  bool
	err      error
}

// NewDirectoryIterator prepares a walk of root. Nothing is opened until the
// first call to Next.
func NewDirectoryIterator(root string, opts WalkOptions) *DirectoryIterator {
	if opts.Symlinks == "" {
		opts.Symlinks = DefaultSymlinkMode
	}
	return &DirectoryIterator{
		root: filepath.Clean(root),
		opts: opts,
	}
}

// Root returns the cleaned traversal root
func (it *DirectoryIterator) Root() string {
	return it.root
}

// Next returns the next file. It returns io.EOF once the tree is exhausted;
// any other error is returned again by every later call.
func (it *DirectoryIterator) Next() (Entry, error) {
	if it.err != nil {
		return Entry{}, it.err
	}
	if !it.started {
		it.started = true
		if err := it.start(); err != nil {
			return Entry{}, it.fail(err)
		}
	}

	for len(it.stack) > 0 {
		top := it.stack[len(it.stack)-1]
		if len(top.pending) == 0 {
			batch, err := top.dir.ReadDir(dirReadBatch)
			if len(batch) == 0 {
				if err != nil && !errors.Is(err, io.EOF) {
					return Entry{}, it.fail(newFileError("readdir", top.path, err))
				}
				it.pop()
				continue
			}
			top.pending = batch
		}

		d := top.pending[0]
		top.pending = top.pending[1:]

		if it.opts.SkipHidden && isHidden(d.Name()) {
			if IsDebugEnabled("walk") {
				VerboseLog(2, "skipping hidden entry %s", joinPath(top.path, d.Name()))
			}
			continue
		}

		entryPath := joinPath(top.path, d.Name())
		info, descend, err := it.classify(entryPath, d)
		if err != nil {
			return Entry{}, it.fail(err)
		}
		if descend {
			if err := it.push(entryPath, info); err != nil {
				return Entry{}, it.fail(err)
			}
			continue
		}
		if info == nil {
			continue
		}

		if IsDebugEnabled("walk") {
			VerboseLog(2, "found file %s", entryPath)
		}
		return Entry{Path: entryPath, Info: info}, nil
	}

	it.err = io.EOF
	return Entry{}, io.EOF
}

// NextRelative returns the next file as a slash-separated path relative to the root
func (it *DirectoryIterator) NextRelative() (string, Entry, error) {
	e, err := it.Next()
	if err != nil {
		return "", Entry{}, err
	}
	return it.Relative(e.Path), e, nil
}

// Relative strips the traversal root from a path produced by this iterator.
// Every produced path is built from the root, so a path without that prefix
// means the iterator is broken and Relative panics.
func (it *DirectoryIterator) Relative(path string) string {
	prefix := it.root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	rel, ok := strings.CutPrefix(path, prefix)
	if !ok || rel == "" {
		panic(fmt.Sprintf("inventorize: path %q is not below traversal root %q", path, it.root))
	}
	return filepath.ToSlash(rel)
}

// Close releases every directory still open on the stack
func (it *DirectoryIterator) Close() error {
	var firstErr error
	for len(it.stack) > 0 {
		if err := it.pop(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if it.err == nil {
		it.started = true
		it.err = io.EOF
	}
	return firstErr
}

func (it *DirectoryIterator) start() error {
	info, err := os.Stat(it.root)
	if err != nil {
		return newFileError("stat", it.root, err)
	}
	if !info.IsDir() {
		return newFileError("open", it.root, fmt.Errorf("not a directory"))
	}
	if it.opts.Symlinks == SymlinkContained {
		if resolved, err := filepath.EvalSymlinks(it.root); err == nil {
			it.rootReal = resolved
		} else {
			it.rootReal = it.root
		}
	}
	return it.push(it.root, info)
}

// classify decides what to do with a directory entry: descend, yield (info
// non-nil) or skip (info nil).
func (it *DirectoryIterator) classify(path string, d fs.DirEntry) (fs.FileInfo, bool, error) {
	if d.Type()&fs.ModeSymlink == 0 {
		info, err := d.Info()
		if err != nil {
			return nil, false, newFileError("stat", path, err)
		}
		if info.IsDir() {
			return info, true, nil
		}
		if !info.Mode().IsRegular() {
			VerboseLog(1, "skipping special file %s", path)
			return nil, false, nil
		}
		return info, false, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, false, newFileError("stat", path, err)
	}
	if !info.IsDir() {
		if !info.Mode().IsRegular() {
			VerboseLog(1, "skipping special file %s", path)
			return nil, false, nil
		}
		return info, false, nil
	}

	switch it.opts.Symlinks {
	case SymlinkNone:
		VerboseLog(1, "not following symlinked directory %s", path)
		return nil, false, nil
	case SymlinkContained:
		target, err := filepath.EvalSymlinks(path)
		if err != nil {
			return nil, false, newFileError("readlink", path, err)
		}
		if !isPathContained(target, it.rootReal) {
			VerboseLog(1, "not following symlinked directory %s outside root", path)
			return nil, false, nil
		}
	}

	for _, s := range it.stack {
		if os.SameFile(s.info, info) {
			VerboseLog(1, "symlink cycle at %s", path)
			return nil, false, nil
		}
	}
	return info, true, nil
}

func (it *DirectoryIterator) push(path string, info fs.FileInfo) error {
	dir, err := os.Open(path)
	if err != nil {
		return newFileError("open", path, err)
	}
	it.stack = append(it.stack, &dirStream{path: path, dir: dir, info: info})
	if IsDebugEnabled("walk") {
		VerboseLog(2, "descending into %s (depth %d)", path, len(it.stack))
	}
	return nil
}

func (it *DirectoryIterator) pop() error {
	top := it.stack[len(it.stack)-1]
	it.stack[len(it.stack)-1] = nil
	it.stack = it.stack[:len(it.stack)-1]
	return top.dir.Close()
}

func (it *DirectoryIterator) fail(err error) error {
	for len(it.stack) > 0 {
		_ = it.pop()
	}
	it.err = err
	return err
}

// isHidden reports whether a final path component is a dot file
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// joinPath appends name to dir without cleaning, so the traversal root stays a
// literal prefix of every produced path
func joinPath(dir, name string) string {
	if strings.HasSuffix(dir, string(filepath.Separator)) {
		return dir + name
	}
	return dir + string(filepath.Separator) + name
}

// isPathUnder checks if childPath is strictly below parentPath
func isPathUnder(childPath, parentPath string) bool {
	childPath = filepath.Clean(childPath)
	parentPath = filepath.Clean(parentPath)

	if childPath == parentPath {
		return false
	}

	parentWithSep := parentPath
	if !strings.HasSuffix(parentWithSep, string(filepath.Separator)) {
		parentWithSep += string(filepath.Separator)
	}
	return strings.HasPrefix(childPath, parentWithSep)
}

// isPathContained checks if targetPath is containerPath or below it
func isPathContained(targetPath, containerPath string) bool {
	targetPath = filepath.Clean(targetPath)
	containerPath = filepath.Clean(containerPath)
	return targetPath == containerPath || isPathUnder(targetPath, containerPath)
}

// IsPathUnder reports whether childPath lies strictly below parentPath. Both
// paths are compared lexically after cleaning.
func IsPathUnder(childPath, parentPath string) bool {
	return isPathUnder(childPath, parentPath)
}
