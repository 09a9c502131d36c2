package inventorize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportAccumulates(t *testing.T) {
	r := NewReport()
	assert.True(t, r.IsEmpty())
	assert.Empty(t, r.Failures())

	r.AddFailure("z.txt", HashMismatch)
	r.AddFailure("b.txt", MissingFromInventory)
	r.AddFailure("a.txt", MissingFromInventory)
	r.AddFailure("a.txt", MissingFromInventory)

	assert.False(t, r.IsEmpty())
	assert.Equal(t, []FailureKind{MissingFromInventory, HashMismatch}, r.Failures())
	assert.Equal(t, []string{"a.txt", "b.txt"}, r.ByFailure(MissingFromInventory))
	assert.Empty(t, r.ByFailure(SizeMismatch))
	assert.Equal(t, 3, r.TotalFailures())
}

func TestReportSummary(t *testing.T) {
	r := NewReport()
	r.AddFailure("gone.txt", MissingFromRepository)
	r.AddFailure("short.txt", SizeMismatch)

	s := r.Summary()
	assert.False(t, s.Clean)
	assert.Equal(t, 2, s.TotalFailures)
	assert.Equal(t, []string{"gone.txt"}, s.MissingFromRepository)
	assert.Equal(t, []string{"short.txt"}, s.SizeMismatch)
	assert.Empty(t, s.MissingFromInventory)
	assert.Empty(t, s.HashMismatch)

	assert.True(t, NewReport().Summary().Clean)
}

func TestFailureKindNames(t *testing.T) {
	testCases := []struct {
		kind FailureKind
		text string
		key  string
	}{
		{MissingFromRepository, "Missing from repository", "missing_from_repository"},
		{MissingFromInventory, "Missing from inventory", "missing_from_inventory"},
		{SizeMismatch, "Size mismatch", "size_mismatch"},
		{HashMismatch, "Hash mismatch", "hash_mismatch"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.text, tc.kind.String())
		assert.Equal(t, tc.key, tc.kind.Key())
	}
}
