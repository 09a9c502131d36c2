package inventorize

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
)

// Configuration holds the build-time parameters baked into an inventory
type Configuration struct {
	version    string
	skipHidden bool
	algorithms []HashAlgorithm
}

// NewConfiguration returns a configuration stamped with the running tool
// version, hidden files included and no algorithms selected.
func NewConfiguration() Configuration {
	return Configuration{version: Version}
}

func (c Configuration) Version() string {
	return c.version
}

func (c Configuration) SkipHidden() bool {
	return c.skipHidden
}

// HashAlgorithms returns the algorithm set in canonical order
func (c Configuration) HashAlgorithms() []HashAlgorithm {
	return slices.Clone(c.algorithms)
}

func (c *Configuration) SetVersion(version string) {
	c.version = version
}

func (c *Configuration) SetSkipHidden(skip bool) {
	c.skipHidden = skip
}

// SetHashAlgorithms replaces the algorithm set; duplicates collapse
func (c *Configuration) SetHashAlgorithms(algs []HashAlgorithm) {
	c.algorithms = normalizeAlgorithms(algs)
}

// AddHashAlgorithm adds one algorithm to the set
func (c *Configuration) AddHashAlgorithm(alg HashAlgorithm) {
	c.SetHashAlgorithms(append(c.algorithms, alg))
}

// Record is the recorded state of one tracked file
type Record struct {
	Size   uint64
	Hashes Hashes
}

// ScanOptions tune how the repository is read. They are not persisted.
type ScanOptions struct {
	ChunkSize int
	Symlinks  SymlinkMode
}

// Inventory is the manifest of every tracked file under a repository
type Inventory struct {
	config  Configuration
	records *recordIndex
	scan    ScanOptions
}

// NewInventory returns an empty inventory for config
func NewInventory(config Configuration) *Inventory {
	return &Inventory{
		config:  config,
		records: newRecordIndex(),
		scan:    ScanOptions{ChunkSize: DefaultChunkSize, Symlinks: DefaultSymlinkMode},
	}
}

// SetScanOptions changes chunk size and symlink handling for later operations
func (inv *Inventory) SetScanOptions(opts ScanOptions) {
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = DefaultChunkSize
	}
	if opts.Symlinks == "" {
		opts.Symlinks = DefaultSymlinkMode
	}
	inv.scan = opts
}

func (inv *Inventory) Configuration() Configuration {
	return inv.config
}

// Len returns the number of records
func (inv *Inventory) Len() int {
	return inv.records.Length()
}

// Record returns the record for a relative path
func (inv *Inventory) Record(path string) (Record, bool) {
	rec, _, ok := inv.records.Find(path)
	if !ok {
		return Record{}, false
	}
	return *rec, true
}

// Paths returns every tracked path in order
func (inv *Inventory) Paths() []string {
	return inv.records.Paths()
}

// ForEach visits records in path order until callback returns false
func (inv *Inventory) ForEach(callback func(path string, rec Record) bool) {
	inv.records.ForEach(func(path string, rec *Record, _ string) bool {
		return callback(path, *rec)
	})
}

// Build traverses repository and records the size and hashes of every file,
// replacing any records already held. The first error aborts the build and
// leaves the inventory unchanged.
func (inv *Inventory) Build(repository string) error {
	defer VerboseEnter()()

	hasher, err := NewHasher(inv.config.algorithms, inv.scan.ChunkSize)
	if err != nil {
		return err
	}

	records := newRecordIndex()
	it := NewDirectoryIterator(repository, inv.walkOptions())
	defer it.Close()

	for {
		rel, entry, err := it.NextRelative()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		rec, err := inv.hashEntry(hasher, entry.Path, uint64(entry.Info.Size()))
		if err != nil {
			return err
		}
		records.Insert(rel, rec, InventoryContext)
		VerboseLog(1, "added %s", rel)
	}

	inv.records = records
	VerboseLog(1, "built inventory of %d files", records.Length())
	return nil
}

// Check compares the repository against the inventory. With checkHashes set
// every file whose size still matches is re-hashed; without it only presence
// and size are compared, so same-size content changes go unnoticed. Check
// never modifies the inventory.
func (inv *Inventory) Check(repository string, checkHashes bool) (*Report, error) {
	defer VerboseEnter()()

	snapshot, err := inv.snapshot(repository)
	if err != nil {
		return nil, err
	}

	var hasher *Hasher
	if checkHashes {
		hasher, err = NewHasher(inv.config.algorithms, inv.scan.ChunkSize)
		if err != nil {
			return nil, err
		}
	}

	report := NewReport()
	err = mergeWalk(inv.records, snapshot, func(status pathStatus, path string, rec *Record) error {
		switch status {
		case pathOnlyInRepository:
			VerboseLog(1, "%s: %s", MissingFromInventory, path)
			report.AddFailure(path, MissingFromInventory)
			return nil
		case pathOnlyInInventory:
			VerboseLog(1, "%s: %s", MissingFromRepository, path)
			report.AddFailure(path, MissingFromRepository)
			return nil
		}

		full := repositoryPath(repository, path)
		info, err := os.Stat(full)
		if err != nil {
			return newFileError("stat", full, err)
		}
		if uint64(info.Size()) != rec.Size {
			VerboseLog(1, "%s: %s (recorded %d, found %d)", SizeMismatch, path, rec.Size, info.Size())
			report.AddFailure(path, SizeMismatch)
			return nil
		}
		if hasher == nil {
			return nil
		}

		hashes, err := hasher.HashFile(full)
		if err != nil {
			return err
		}
		if !hashes.Equal(rec.Hashes) {
			VerboseLog(1, "%s: %s", HashMismatch, path)
			report.AddFailure(path, HashMismatch)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// Update adds a record for every file not yet tracked and, with removeMissing,
// drops records whose file is gone. Tracked files are never re-hashed, so a
// changed file keeps its old record; Check is what detects that. The first
// error aborts the update and leaves the inventory unchanged.
func (inv *Inventory) Update(repository string, removeMissing bool) error {
	defer VerboseEnter()()

	snapshot, err := inv.snapshot(repository)
	if err != nil {
		return err
	}

	var added, missing []string
	err = mergeWalk(inv.records, snapshot, func(status pathStatus, path string, _ *Record) error {
		switch status {
		case pathOnlyInRepository:
			added = append(added, path)
		case pathOnlyInInventory:
			missing = append(missing, path)
		}
		return nil
	})
	if err != nil {
		return err
	}

	newRecords := make([]*Record, len(added))
	if len(added) > 0 {
		hasher, err := NewHasher(inv.config.algorithms, inv.scan.ChunkSize)
		if err != nil {
			return err
		}
		for i, path := range added {
			full := repositoryPath(repository, path)
			info, err := os.Stat(full)
			if err != nil {
				return newFileError("stat", full, err)
			}
			rec, err := inv.hashEntry(hasher, full, uint64(info.Size()))
			if err != nil {
				return err
			}
			newRecords[i] = rec
		}
	}

	for i, path := range added {
		inv.records.Insert(path, newRecords[i], InventoryContext)
		VerboseLog(1, "added %s", path)
	}
	if removeMissing {
		for _, path := range missing {
			inv.records.Delete(path)
			VerboseLog(1, "removed %s", path)
		}
	}
	return nil
}

// snapshot records the relative path of every file currently in repository
func (inv *Inventory) snapshot(repository string) (*recordIndex, error) {
	snap := newRecordIndex()
	it := NewDirectoryIterator(repository, inv.walkOptions())
	defer it.Close()

	for {
		rel, _, err := it.NextRelative()
		if errors.Is(err, io.EOF) {
			return snap, nil
		}
		if err != nil {
			return nil, err
		}
		snap.Insert(rel, nil, ScanContext)
	}
}

func (inv *Inventory) hashEntry(hasher *Hasher, path string, size uint64) (*Record, error) {
	hashes, err := hasher.HashFile(path)
	if err != nil {
		return nil, err
	}
	return &Record{Size: size, Hashes: hashes}, nil
}

func (inv *Inventory) walkOptions() WalkOptions {
	return WalkOptions{SkipHidden: inv.config.skipHidden, Symlinks: inv.scan.Symlinks}
}

// insertRecord adds a decoded record after validating its key set
func (inv *Inventory) insertRecord(path string, rec *Record) error {
	if !slices.Equal(rec.Hashes.Algorithms(), inv.config.algorithms) {
		return fmt.Errorf("record %q has hashes %v, configuration expects %v",
			path, rec.Hashes.Algorithms(), inv.config.algorithms)
	}
	if _, _, ok := inv.records.Find(path); ok {
		return fmt.Errorf("duplicate record %q", path)
	}
	inv.records.Insert(path, rec, InventoryContext)
	return nil
}

// repositoryPath joins a slash-separated relative path onto the repository root
func repositoryPath(repository, rel string) string {
	return filepath.Join(repository, filepath.FromSlash(rel))
}

// Stats summarises an inventory
type Stats struct {
	Files      int    `json:"files" yaml:"files"`
	TotalBytes uint64 `json:"total_bytes" yaml:"total_bytes"`
}

// Stats returns the number of records and the sum of their sizes
func (inv *Inventory) Stats() Stats {
	var s Stats
	inv.records.ForEach(func(_ string, rec *Record, _ string) bool {
		s.Files++
		s.TotalBytes += rec.Size
		return true
	})
	return s
}
