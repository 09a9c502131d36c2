package inventorize

import (
	"strings"

	zcsl "github.com/mattkeenan/zerocopyskiplist"
)

// indexEntry is the item stored in a recordIndex. Scan snapshots leave Record nil.
type indexEntry struct {
	Path   string
	Record *Record
}

// recordIndex is a path-ordered map of records backed by a zero-copy skiplist.
// The context of each entry tells inventory records apart from scan results.
type recordIndex struct {
	skiplist *zcsl.ZeroCopySkiplist[indexEntry, string, string]
}

func newRecordIndex() *recordIndex {
	getKeyFromItem := func(e *indexEntry) string {
		return e.Path
	}

	getItemSize := func(e *indexEntry) int {
		return len(e.Path)
	}

	cmpKey := func(a, b string) int {
		return strings.Compare(a, b)
	}

	return &recordIndex{
		skiplist: zcsl.MakeZeroCopySkiplist[indexEntry, string, string](
			skiplistMaxLevels,
			getKeyFromItem,
			getItemSize,
			cmpKey,
		),
	}
}

// Insert stores rec under path, replacing any previous entry
func (ri *recordIndex) Insert(path string, rec *Record, context string) bool {
	if node, _ := ri.skiplist.Find(path); node != nil {
		ri.skiplist.Delete(path)
	}
	return ri.skiplist.Insert(&indexEntry{Path: path, Record: rec}, context)
}

// Find returns the record and context stored under path
func (ri *recordIndex) Find(path string) (*Record, string, bool) {
	node, context := ri.skiplist.Find(path)
	if node == nil {
		return nil, "", false
	}
	return node.Item().Record, context, true
}

// Delete removes the entry for path
func (ri *recordIndex) Delete(path string) bool {
	return ri.skiplist.Delete(path)
}

// ForEach visits entries in path order until callback returns false
func (ri *recordIndex) ForEach(callback func(path string, rec *Record, context string) bool) {
	for current := ri.skiplist.First(); current != nil; current = current.Next() {
		e := current.Item()
		if !callback(e.Path, e.Record, current.Context()) {
			break
		}
	}
}

// Paths returns every key in order
func (ri *recordIndex) Paths() []string {
	paths := make([]string, 0, ri.Length())
	ri.ForEach(func(path string, _ *Record, _ string) bool {
		paths = append(paths, path)
		return true
	})
	return paths
}

func (ri *recordIndex) Length() int {
	return ri.skiplist.Length()
}

func (ri *recordIndex) IsEmpty() bool {
	return ri.skiplist.IsEmpty()
}

// pathStatus classifies a path during a merge walk
type pathStatus int

const (
	pathInBoth pathStatus = iota
	pathOnlyInInventory
	pathOnlyInRepository
)

// mergeWalk walks an inventory index and a scan snapshot together in key
// order (Hwang-Lin merge) and reports every path once with its status.
// rec is the inventory record and is nil for repository-only paths.
func mergeWalk(inventory, scan *recordIndex, callback func(status pathStatus, path string, rec *Record) error) error {
	invCurrent := inventory.skiplist.First()
	scanCurrent := scan.skiplist.First()

	for invCurrent != nil && scanCurrent != nil {
		invEntry := invCurrent.Item()
		scanEntry := scanCurrent.Item()

		cmp := strings.Compare(invEntry.Path, scanEntry.Path)
		switch {
		case cmp == 0:
			if err := callback(pathInBoth, invEntry.Path, invEntry.Record); err != nil {
				return err
			}
			invCurrent = invCurrent.Next()
			scanCurrent = scanCurrent.Next()
		case cmp < 0:
			if err := callback(pathOnlyInInventory, invEntry.Path, invEntry.Record); err != nil {
				return err
			}
			invCurrent = invCurrent.Next()
		default:
			if err := callback(pathOnlyInRepository, scanEntry.Path, nil); err != nil {
				return err
			}
			scanCurrent = scanCurrent.Next()
		}
	}

	for ; invCurrent != nil; invCurrent = invCurrent.Next() {
		e := invCurrent.Item()
		if err := callback(pathOnlyInInventory, e.Path, e.Record); err != nil {
			return err
		}
	}

	for ; scanCurrent != nil; scanCurrent = scanCurrent.Next() {
		e := scanCurrent.Item()
		if err := callback(pathOnlyInRepository, e.Path, nil); err != nil {
			return err
		}
	}
	return nil
}
