package main

import (
	"bytes"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inventorize "github.com/mattkeenan/inventorize/pkg"
)

func TestWriteReportHuman(t *testing.T) {
	report := inventorize.NewReport()
	report.AddFailure("z.txt", inventorize.HashMismatch)
	report.AddFailure("b.txt", inventorize.SizeMismatch)
	report.AddFailure("a.txt", inventorize.SizeMismatch)
	report.AddFailure("gone.txt", inventorize.MissingFromRepository)

	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, "human", report))
	assert.Equal(t, "Missing from repository: gone.txt\n"+
		"Size mismatch: a.txt\n"+
		"Size mismatch: b.txt\n"+
		"Hash mismatch: z.txt\n", buf.String())
}

func TestWriteReportYAML(t *testing.T) {
	report := inventorize.NewReport()
	report.AddFailure("new.txt", inventorize.MissingFromInventory)

	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, "yaml", report))

	var summary inventorize.ReportSummary
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &summary))
	assert.Equal(t, []string{"new.txt"}, summary.MissingFromInventory)
	assert.Equal(t, 1, summary.TotalFailures)
}

func TestWriteStructuredRejectsUnknownFormat(t *testing.T) {
	assert.Error(t, writeStructured(&bytes.Buffer{}, "xml", struct{}{}))
}
