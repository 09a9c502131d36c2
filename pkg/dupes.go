package inventorize

import (
	"strconv"
	"strings"
)

// DuplicateGroup represents a group of files with the same size and hashes
type DuplicateGroup struct {
	Hash  string   `json:"hash" yaml:"hash"`
	Size  uint64   `json:"size" yaml:"size"`
	Files []string `json:"files" yaml:"files"`
	Count int      `json:"count" yaml:"count"`
}

// FindDuplicates returns groups of recorded files whose size and every
// recorded hash are identical. Groups are ordered by their first path.
func (inv *Inventory) FindDuplicates() []DuplicateGroup {
	duplicates := make(map[string]*DuplicateGroup)
	var order []string

	inv.records.ForEach(func(path string, rec *Record, _ string) bool {
		key := duplicateKey(rec)
		group, ok := duplicates[key]
		if !ok {
			group = &DuplicateGroup{Hash: primaryHash(rec), Size: rec.Size}
			duplicates[key] = group
			order = append(order, key)
		}
		group.Files = append(group.Files, path)
		return true
	})

	var result []DuplicateGroup
	for _, key := range order {
		group := duplicates[key]
		if len(group.Files) > 1 {
			group.Count = len(group.Files)
			result = append(result, *group)
		}
	}
	return result
}

func duplicateKey(rec *Record) string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(rec.Size, 10))
	for _, alg := range rec.Hashes.Algorithms() {
		sb.WriteByte(':')
		sb.WriteString(rec.Hashes[alg].String())
	}
	return sb.String()
}

// primaryHash returns the hex digest of the strongest recorded algorithm
func primaryHash(rec *Record) string {
	algs := rec.Hashes.Algorithms()
	if len(algs) == 0 {
		return ""
	}
	return rec.Hashes[algs[len(algs)-1]].String()
}
