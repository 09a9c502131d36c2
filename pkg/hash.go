package inventorize

import (
	"crypto/md5"
	"crypto/sha1"
	"hash"
	"slices"
)

// HashAlgorithm identifies a digest scheme. The numeric order is the
// canonical order used for iteration and serialization.
type HashAlgorithm uint8

const (
	MD5 HashAlgorithm = iota + 1
	SHA1
)

// hashAlgorithmInfo describes a registered digest scheme
type hashAlgorithmInfo struct {
	Name    string
	Size    int
	NewFunc func() hash.Hash
}

var hashAlgorithms = map[HashAlgorithm]hashAlgorithmInfo{
	MD5:  {Name: "md5", Size: HashSizeMD5, NewFunc: md5.New},
	SHA1: {Name: "sha1", Size: HashSizeSHA1, NewFunc: sha1.New},
}

// AllHashAlgorithms returns every registered algorithm in canonical order
func AllHashAlgorithms() []HashAlgorithm {
	return []HashAlgorithm{MD5, SHA1}
}

// ParseHashAlgorithm returns the algorithm for an exact lowercase name
func ParseHashAlgorithm(name string) (HashAlgorithm, error) {
	switch name {
	case "md5":
		return MD5, nil
	case "sha1":
		return SHA1, nil
	default:
		return 0, &ParseHashAlgorithmError{Name: name}
	}
}

// ParseHashAlgorithms parses a list of names into a sorted, duplicate-free set
func ParseHashAlgorithms(names []string) ([]HashAlgorithm, error) {
	algs := make([]HashAlgorithm, 0, len(names))
	for _, name := range names {
		alg, err := ParseHashAlgorithm(name)
		if err != nil {
			return nil, err
		}
		algs = append(algs, alg)
	}
	return normalizeAlgorithms(algs), nil
}

func normalizeAlgorithms(algs []HashAlgorithm) []HashAlgorithm {
	out := slices.Clone(algs)
	slices.Sort(out)
	return slices.Compact(out)
}

func (a HashAlgorithm) String() string {
	if info, ok := hashAlgorithms[a]; ok {
		return info.Name
	}
	return "unknown"
}

// Size returns the digest length in bytes, or 0 for an unknown algorithm
func (a HashAlgorithm) Size() int {
	return hashAlgorithms[a].Size
}

// Valid reports whether a is a registered algorithm
func (a HashAlgorithm) Valid() bool {
	_, ok := hashAlgorithms[a]
	return ok
}

func (a HashAlgorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, &ParseHashAlgorithmError{Name: a.String()}
	}
	return []byte(a.String()), nil
}

func (a *HashAlgorithm) UnmarshalText(text []byte) error {
	alg, err := ParseHashAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = alg
	return nil
}

// HashValue is an immutable digest output
type HashValue struct {
	raw string
}

// NewHashValue copies b into a HashValue
func NewHashValue(b []byte) HashValue {
	return HashValue{raw: string(b)}
}

// ParseHashValue decodes the hexadecimal text form of a digest
func ParseHashValue(s string) (HashValue, error) {
	if len(s)%2 != 0 {
		return HashValue{}, &ParseHashValueError{Value: s, Reason: "odd length"}
	}
	b, ok := DecodeHex(s)
	if !ok {
		return HashValue{}, &ParseHashValueError{Value: s, Reason: "non-hex character"}
	}
	return NewHashValue(b), nil
}

// Bytes returns a copy of the digest bytes
func (h HashValue) Bytes() []byte {
	return []byte(h.raw)
}

// Len returns the digest length in bytes
func (h HashValue) Len() int {
	return len(h.raw)
}

func (h HashValue) Equal(other HashValue) bool {
	return h.raw == other.raw
}

func (h HashValue) String() string {
	return EncodeHex([]byte(h.raw))
}

func (h HashValue) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *HashValue) UnmarshalText(text []byte) error {
	v, err := ParseHashValue(string(text))
	if err != nil {
		return err
	}
	*h = v
	return nil
}

// Hashes maps each configured algorithm to the digest of one file
type Hashes map[HashAlgorithm]HashValue

// Equal reports whether both maps hold exactly the same algorithms and values
func (h Hashes) Equal(other Hashes) bool {
	if len(h) != len(other) {
		return false
	}
	for alg, v := range h {
		ov, ok := other[alg]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// Algorithms returns the map's keys in canonical order
func (h Hashes) Algorithms() []HashAlgorithm {
	algs := make([]HashAlgorithm, 0, len(h))
	for alg := range h {
		algs = append(algs, alg)
	}
	slices.Sort(algs)
	return algs
}
