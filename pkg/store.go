package inventorize

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	json "github.com/goccy/go-json"
)

// configurationDocument is the persisted form of a Configuration
type configurationDocument struct {
	Version        string   `json:"version"`
	SkipHidden     bool     `json:"skip_hidden"`
	HashAlgorithms []string `json:"hash_algorithms"`
}

// recordDocument is the persisted form of a Record
type recordDocument struct {
	Hashes map[string]string `json:"hashes"`
	Size   uint64            `json:"size"`
}

// inventoryDocument is the whole persisted inventory
type inventoryDocument struct {
	Configuration configurationDocument     `json:"configuration"`
	Records       map[string]recordDocument `json:"records"`
}

func newConfigurationDocument(c Configuration) configurationDocument {
	names := make([]string, len(c.algorithms))
	for i, alg := range c.algorithms {
		names[i] = alg.String()
	}
	return configurationDocument{
		Version:        c.version,
		SkipHidden:     c.skipHidden,
		HashAlgorithms: names,
	}
}

func newRecordDocument(rec *Record) recordDocument {
	hashes := make(map[string]string, len(rec.Hashes))
	for alg, v := range rec.Hashes {
		hashes[alg.String()] = v.String()
	}
	return recordDocument{Hashes: hashes, Size: rec.Size}
}

// MarshalInventory encodes inv as a sequence of document segments: the
// header with the configuration, one segment per record in path order, and
// the closing trailer. Concatenated they form one JSON object.
func MarshalInventory(inv *Inventory) ([][]byte, error) {
	conf, err := json.Marshal(newConfigurationDocument(inv.config))
	if err != nil {
		return nil, fmt.Errorf("failed to encode configuration: %w", err)
	}

	segments := make([][]byte, 0, inv.records.Length()+2)
	header := make([]byte, 0, len(conf)+32)
	header = append(header, `{"configuration":`...)
	header = append(header, conf...)
	header = append(header, `,"records":{`...)
	segments = append(segments, header)

	var encErr error
	first := true
	inv.records.ForEach(func(path string, rec *Record, _ string) bool {
		key, err := json.Marshal(path)
		if err != nil {
			encErr = fmt.Errorf("failed to encode path %q: %w", path, err)
			return false
		}
		body, err := json.Marshal(newRecordDocument(rec))
		if err != nil {
			encErr = fmt.Errorf("failed to encode record %q: %w", path, err)
			return false
		}

		seg := make([]byte, 0, len(key)+len(body)+2)
		if !first {
			seg = append(seg, ',')
		}
		first = false
		seg = append(seg, key...)
		seg = append(seg, ':')
		seg = append(seg, body...)
		segments = append(segments, seg)
		return true
	})
	if encErr != nil {
		return nil, encErr
	}

	segments = append(segments, []byte("}}\n"))
	return segments, nil
}

// UnmarshalInventory decodes a persisted inventory and validates it: known
// algorithm names, well-formed hex of the right length, and every record
// carrying exactly the configured algorithms.
func UnmarshalInventory(data []byte) (*Inventory, error) {
	var doc inventoryDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode inventory: %w", err)
	}

	algs, err := ParseHashAlgorithms(doc.Configuration.HashAlgorithms)
	if err != nil {
		return nil, err
	}
	config := Configuration{
		version:    doc.Configuration.Version,
		skipHidden: doc.Configuration.SkipHidden,
		algorithms: algs,
	}

	inv := NewInventory(config)
	for path, rd := range doc.Records {
		rec, err := decodeRecord(rd)
		if err != nil {
			return nil, fmt.Errorf("record %q: %w", path, err)
		}
		if err := inv.insertRecord(path, rec); err != nil {
			return nil, err
		}
	}
	return inv, nil
}

func decodeRecord(rd recordDocument) (*Record, error) {
	rec := &Record{Size: rd.Size, Hashes: make(Hashes, len(rd.Hashes))}
	for name, text := range rd.Hashes {
		alg, err := ParseHashAlgorithm(name)
		if err != nil {
			return nil, err
		}
		v, err := ParseHashValue(text)
		if err != nil {
			return nil, err
		}
		if v.Len() != alg.Size() {
			return nil, &ParseHashValueError{
				Value:  text,
				Reason: fmt.Sprintf("%s digest must be %d hex characters", alg, alg.Size()*2),
			}
		}
		rec.Hashes[alg] = v
	}
	return rec, nil
}

// LoadInventory reads and validates the inventory stored at path
func LoadInventory(path string) (*Inventory, error) {
	defer VerboseEnter()()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newFileError("open", path, err)
	}
	inv, err := UnmarshalInventory(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	VerboseLog(1, "loaded inventory %s with %d records", path, inv.Len())
	return inv, nil
}

// SaveInventory writes inv to path through a temporary file in the same
// directory. With overwrite the temp file is renamed over path; without it
// the temp file is hard-linked into place so an existing inventory is never
// replaced and ErrInventoryExists is returned instead.
func SaveInventory(path string, inv *Inventory, overwrite bool) (err error) {
	defer VerboseEnter()()

	if !overwrite {
		if _, err := os.Lstat(path); err == nil {
			return ErrInventoryExists
		}
	}

	segments, err := MarshalInventory(inv)
	if err != nil {
		return err
	}

	tempPath := generateTempFileName(path)
	file, err := os.OpenFile(tempPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return newFileError("create", tempPath, err)
	}
	defer func() {
		if file != nil {
			file.Close()
		}
		if err != nil {
			os.Remove(tempPath)
		}
	}()

	if err = writeSegments(file, segments); err != nil {
		return newFileError("write", tempPath, err)
	}
	if err = file.Sync(); err != nil {
		return newFileError("sync", tempPath, err)
	}
	if err = file.Close(); err != nil {
		file = nil
		return newFileError("close", tempPath, err)
	}
	file = nil

	if overwrite {
		if err = os.Rename(tempPath, path); err != nil {
			return newFileError("rename", path, err)
		}
		VerboseLog(1, "wrote inventory %s", path)
		return nil
	}

	if err = os.Link(tempPath, path); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return ErrInventoryExists
		}
		return newFileError("link", path, err)
	}
	os.Remove(tempPath)
	VerboseLog(1, "wrote inventory %s", path)
	return nil
}

// generateTempFileName generates a temporary filename next to target with PID and timestamp
func generateTempFileName(target string) string {
	pid := os.Getpid()
	timestamp := time.Now().UnixNano()
	return filepath.Join(filepath.Dir(target),
		fmt.Sprintf(TempInventoryFmt, "."+filepath.Base(target), pid, timestamp))
}
