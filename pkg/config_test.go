package inventorize

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config")

	config, err := LoadConfig(configPath)
	require.NoError(t, err)

	all := config.GetAllConfig()
	assert.Equal(t, []string{"md5"}, all.Inventory.HashAlgorithms)
	assert.False(t, all.Inventory.SkipHidden)
	assert.Equal(t, "128K", all.Scan.ChunkSize)
	assert.Equal(t, "all", all.Scan.SymlinkMode)
	assert.Equal(t, "human", all.Output.Format)
	assert.Equal(t, 0, all.Verbose.Level)

	// loading never creates the file
	_, err = os.Stat(configPath)
	assert.True(t, os.IsNotExist(err))

	opts, err := config.ScanOptions()
	require.NoError(t, err)
	assert.Equal(t, ScanOptions{ChunkSize: DefaultChunkSize, Symlinks: SymlinkAll}, opts)
}

func TestConfigLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(configPath, []byte(`
[inventory]
hash_algorithms = sha1, md5
skip_hidden = true

[scan]
chunk_size = 1M
symlink_mode = none

[output]
format = yaml

[verbose]
level = 1
debug = walk
`), 0o644))

	config, err := LoadConfig(configPath)
	require.NoError(t, err)

	all := config.GetAllConfig()
	assert.Equal(t, []string{"sha1", "md5"}, all.Inventory.HashAlgorithms)
	assert.True(t, all.Inventory.SkipHidden)
	assert.Equal(t, "yaml", all.Output.Format)
	assert.Equal(t, 1, all.Verbose.Level)
	assert.Equal(t, "walk", all.Verbose.Debug)

	opts, err := config.ScanOptions()
	require.NoError(t, err)
	assert.Equal(t, ScanOptions{ChunkSize: 1024 * 1024, Symlinks: SymlinkNone}, opts)
}

func TestConfigOverrides(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "config"))
	require.NoError(t, err)

	err = config.ApplyOverrides([]string{
		"hash_algorithms:md5, SHA1",
		"format:json",
		"level:2",
		"debug:walk,hash",
		"chunk_size:64K",
		"symlink_mode:contained",
		"skip_hidden:yes",
	})
	require.NoError(t, err)

	all := config.GetAllConfig()
	assert.Equal(t, []string{"md5", "sha1"}, all.Inventory.HashAlgorithms)
	assert.True(t, all.Inventory.SkipHidden)
	assert.Equal(t, "json", all.Output.Format)
	assert.Equal(t, 2, all.Verbose.Level)
	assert.Equal(t, "walk,hash", all.Verbose.Debug)
	assert.Equal(t, "64K", all.Scan.ChunkSize)
	assert.Equal(t, "contained", all.Scan.SymlinkMode)
}

func TestConfigOverridesRejectInvalid(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "config"))
	require.NoError(t, err)

	for _, override := range []string{
		"nocolon",
		"unknown:1",
		"hash_algorithms:sha256",
		"format:xml",
		"level:9",
		"level:two",
		"chunk_size:lots",
		"symlink_mode:some",
		"skip_hidden:maybe",
	} {
		assert.Error(t, config.ApplyOverrides([]string{override}), override)
	}
	assert.Equal(t, "human", config.GetOutputConfig().Format)
}

func TestInitConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config")

	_, err := InitConfig(configPath)
	require.NoError(t, err)
	_, err = os.Stat(configPath)
	require.NoError(t, err)

	config, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, "human", config.GetOutputConfig().Format)
	assert.Equal(t, configPath, config.Path())

	_, err = InitConfig(configPath)
	assert.Error(t, err)
}

func TestConfigValidation(t *testing.T) {
	t.Run("OutputFormat", func(t *testing.T) {
		testCases := []struct {
			format string
			valid  bool
		}{
			{"human", true},
			{"json", true},
			{"yaml", true},
			{"JSON", true},
			{"xml", false},
			{"", false},
		}

		for _, tc := range testCases {
			err := ValidateOutputFormat(tc.format)
			if tc.valid {
				assert.NoError(t, err, tc.format)
			} else {
				assert.Error(t, err, tc.format)
			}
		}
	})

	t.Run("VerboseLevel", func(t *testing.T) {
		for level, valid := range map[int]bool{-1: false, 0: true, 1: true, 2: true, 3: false} {
			err := ValidateVerboseLevel(level)
			if valid {
				assert.NoError(t, err, level)
			} else {
				assert.Error(t, err, level)
			}
		}
	})
}
