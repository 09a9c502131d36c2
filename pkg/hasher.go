package inventorize

import (
	"errors"
	"hash"
	"io"
	"os"
)

// digestState is the capability every running digest exposes to the Hasher
type digestState interface {
	Update(p []byte)
	FinalizeReset() []byte
	Reset()
}

// stdDigest adapts a hash.Hash to digestState
type stdDigest struct {
	h hash.Hash
}

func (d *stdDigest) Update(p []byte) {
	d.h.Write(p)
}

func (d *stdDigest) FinalizeReset() []byte {
	sum := d.h.Sum(nil)
	d.h.Reset()
	return sum
}

func (d *stdDigest) Reset() {
	d.h.Reset()
}

// AlgorithmHash is one entry of a Compute result
type AlgorithmHash struct {
	Algorithm HashAlgorithm
	Value     HashValue
}

// Hasher runs several digests over a stream in a single pass. One Hasher is
// reused across files; its read buffer is allocated once.
type Hasher struct {
	algorithms []HashAlgorithm
	states     []digestState
	buffer     []byte
}

// NewHasher creates a Hasher for the given algorithms. A chunkSize <= 0 selects
// DefaultChunkSize.
func NewHasher(algorithms []HashAlgorithm, chunkSize int) (*Hasher, error) {
	algs := normalizeAlgorithms(algorithms)
	if len(algs) == 0 {
		return nil, errors.New("hasher requires at least one hash algorithm")
	}
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	h := &Hasher{
		algorithms: algs,
		states:     make([]digestState, len(algs)),
		buffer:     make([]byte, chunkSize),
	}
	for i, alg := range algs {
		info, ok := hashAlgorithms[alg]
		if !ok {
			return nil, &ParseHashAlgorithmError{Name: alg.String()}
		}
		h.states[i] = &stdDigest{h: info.NewFunc()}
	}
	return h, nil
}

// Algorithms returns the hasher's algorithms in canonical order
func (h *Hasher) Algorithms() []HashAlgorithm {
	return append([]HashAlgorithm(nil), h.algorithms...)
}

// Compute reads r to EOF and returns one digest per algorithm in canonical
// order. On a read error every digest state is reset before the error is
// returned, so the Hasher can be used again without residue from the failed
// stream.
func (h *Hasher) Compute(r io.Reader) ([]AlgorithmHash, error) {
	for {
		n, err := r.Read(h.buffer)
		if n > 0 {
			for _, s := range h.states {
				s.Update(h.buffer[:n])
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			h.reset()
			return nil, err
		}
	}

	result := make([]AlgorithmHash, len(h.states))
	for i, s := range h.states {
		result[i] = AlgorithmHash{Algorithm: h.algorithms[i], Value: NewHashValue(s.FinalizeReset())}
	}
	return result, nil
}

// ComputeMap is Compute returning a Hashes map
func (h *Hasher) ComputeMap(r io.Reader) (Hashes, error) {
	pairs, err := h.Compute(r)
	if err != nil {
		return nil, err
	}
	out := make(Hashes, len(pairs))
	for _, p := range pairs {
		out[p.Algorithm] = p.Value
	}
	return out, nil
}

// HashFile opens path, hashes its contents and closes it on every exit path.
func (h *Hasher) HashFile(path string) (Hashes, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, newFileError("open", path, err)
	}
	defer file.Close()

	adviseSequential(file)
	hashes, err := h.ComputeMap(file)
	if err != nil {
		return nil, newFileError("read", path, err)
	}
	adviseDontNeed(file)

	if IsDebugEnabled("hash") {
		VerboseLog(2, "hashed %s", path)
	}
	return hashes, nil
}

func (h *Hasher) reset() {
	for _, s := range h.states {
		s.Reset()
	}
}
