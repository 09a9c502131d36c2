package inventorize

import (
	"slices"
)

// FailureKind classifies one verification failure
type FailureKind int

const (
	MissingFromRepository FailureKind = iota
	MissingFromInventory
	SizeMismatch
	HashMismatch
)

// AllFailureKinds lists every kind in display order
func AllFailureKinds() []FailureKind {
	return []FailureKind{MissingFromRepository, MissingFromInventory, SizeMismatch, HashMismatch}
}

func (k FailureKind) String() string {
	switch k {
	case MissingFromRepository:
		return "Missing from repository"
	case MissingFromInventory:
		return "Missing from inventory"
	case SizeMismatch:
		return "Size mismatch"
	case HashMismatch:
		return "Hash mismatch"
	default:
		return "Unknown failure"
	}
}

// Key is the machine-readable name used in structured output
func (k FailureKind) Key() string {
	switch k {
	case MissingFromRepository:
		return "missing_from_repository"
	case MissingFromInventory:
		return "missing_from_inventory"
	case SizeMismatch:
		return "size_mismatch"
	case HashMismatch:
		return "hash_mismatch"
	default:
		return "unknown"
	}
}

// Report accumulates the failures found by a check
type Report struct {
	failures map[FailureKind]map[string]struct{}
}

// NewReport returns an empty report
func NewReport() *Report {
	return &Report{failures: make(map[FailureKind]map[string]struct{})}
}

// AddFailure records path under kind. Adding the same pair twice has no effect.
func (r *Report) AddFailure(path string, kind FailureKind) {
	paths, ok := r.failures[kind]
	if !ok {
		paths = make(map[string]struct{})
		r.failures[kind] = paths
	}
	paths[path] = struct{}{}
}

// IsEmpty reports whether no failure was recorded
func (r *Report) IsEmpty() bool {
	return len(r.failures) == 0
}

// Failures lists the kinds present, in display order
func (r *Report) Failures() []FailureKind {
	var kinds []FailureKind
	for _, k := range AllFailureKinds() {
		if len(r.failures[k]) > 0 {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// ByFailure lists the paths recorded under kind, sorted
func (r *Report) ByFailure(kind FailureKind) []string {
	paths := make([]string, 0, len(r.failures[kind]))
	for p := range r.failures[kind] {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}

// TotalFailures returns the number of (path, kind) pairs recorded
func (r *Report) TotalFailures() int {
	total := 0
	for _, paths := range r.failures {
		total += len(paths)
	}
	return total
}

// ReportSummary is the serializable form of a Report
type ReportSummary struct {
	Clean                 bool     `json:"clean" yaml:"clean"`
	TotalFailures         int      `json:"total_failures" yaml:"total_failures"`
	MissingFromRepository []string `json:"missing_from_repository" yaml:"missing_from_repository"`
	MissingFromInventory  []string `json:"missing_from_inventory" yaml:"missing_from_inventory"`
	SizeMismatch          []string `json:"size_mismatch" yaml:"size_mismatch"`
	HashMismatch          []string `json:"hash_mismatch" yaml:"hash_mismatch"`
}

// Summary returns the report with every path list sorted
func (r *Report) Summary() ReportSummary {
	return ReportSummary{
		Clean:                 r.IsEmpty(),
		TotalFailures:         r.TotalFailures(),
		MissingFromRepository: r.ByFailure(MissingFromRepository),
		MissingFromInventory:  r.ByFailure(MissingFromInventory),
		SizeMismatch:          r.ByFailure(SizeMismatch),
		HashMismatch:          r.ByFailure(HashMismatch),
	}
}
