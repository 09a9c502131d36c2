package inventorize

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeTree creates files under root; keys are slash-separated relative paths
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
}

// walkAll drains an iterator into relative paths
func walkAll(t *testing.T, it *DirectoryIterator) []string {
	t.Helper()
	var paths []string
	for {
		rel, _, err := it.NextRelative()
		if err != nil {
			require.ErrorIs(t, err, io.EOF)
			return paths
		}
		paths = append(paths, rel)
	}
}

func newTestInventory(t *testing.T, skipHidden bool, algs ...HashAlgorithm) *Inventory {
	t.Helper()
	config := NewConfiguration()
	config.SetSkipHidden(skipHidden)
	config.SetHashAlgorithms(algs)
	return NewInventory(config)
}
