package main

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"

	inventorize "github.com/mattkeenan/inventorize/pkg"
)

// writeReport prints every failure, grouped by kind with paths sorted
func writeReport(w io.Writer, format string, report *inventorize.Report) error {
	if format != "human" {
		return writeStructured(w, format, report.Summary())
	}
	for _, kind := range report.Failures() {
		for _, path := range report.ByFailure(kind) {
			if _, err := fmt.Fprintf(w, "%s: %s\n", kind, path); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeStats(w io.Writer, format string, inv *inventorize.Inventory) error {
	stats := inv.Stats()
	if format != "human" {
		return writeStructured(w, format, stats)
	}
	config := inv.Configuration()
	_, err := fmt.Fprintf(w, "files: %d\ntotal size: %s (%d bytes)\nhash algorithms: %v\nskip hidden: %t\nversion: %s\n",
		stats.Files, inventorize.FormatSize(stats.TotalBytes), stats.TotalBytes,
		config.HashAlgorithms(), config.SkipHidden(), config.Version())
	return err
}

func writeDuplicates(w io.Writer, format string, groups []inventorize.DuplicateGroup) error {
	if format != "human" {
		if groups == nil {
			groups = []inventorize.DuplicateGroup{}
		}
		return writeStructured(w, format, groups)
	}
	for i, group := range groups {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%d files, %s each)\n", group.Hash, group.Count, inventorize.FormatSize(group.Size))
		for _, file := range group.Files {
			fmt.Fprintf(w, "  %s\n", file)
		}
	}
	return nil
}

// writeStructured encodes v as indented JSON or as YAML
func writeStructured(w io.Writer, format string, v any) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case "json":
		data, err = json.MarshalIndent(v, "", "  ")
		data = append(data, '\n')
	case "yaml":
		data, err = yaml.Marshal(v)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s output: %w", format, err)
	}
	_, err = w.Write(data)
	return err
}
