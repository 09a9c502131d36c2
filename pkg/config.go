package inventorize

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-ini/ini"
)

// Config is the tool configuration file. It supplies defaults for command
// flags and is never stored inside an inventory.
type Config struct {
	configPath string
	ini        *ini.File
}

// InventoryConfig represents defaults for newly built inventories
type InventoryConfig struct {
	HashAlgorithms []string `json:"hash_algorithms" yaml:"hash_algorithms"` // Default algorithms for build
	SkipHidden     bool     `json:"skip_hidden" yaml:"skip_hidden"`         // Default for --skip-hidden
}

// ScanConfig represents how repositories are read
type ScanConfig struct {
	ChunkSize   string `json:"chunk_size" yaml:"chunk_size"`     // Hasher read chunk, human size (default: "128K")
	SymlinkMode string `json:"symlink_mode" yaml:"symlink_mode"` // all, contained, none
}

// OutputConfig represents output format configuration
type OutputConfig struct {
	Format string `json:"format" yaml:"format"` // Default output format: human, json, yaml
}

// VerboseConfig represents verbosity configuration
type VerboseConfig struct {
	Level int    `json:"level" yaml:"level"` // Default verbose level (0=info, 1=debug, 2=trace)
	Debug string `json:"debug" yaml:"debug"` // Default debug flags (comma-separated)
}

// AllConfig represents all configuration options
type AllConfig struct {
	Inventory *InventoryConfig `json:"inventory" yaml:"inventory"`
	Scan      *ScanConfig      `json:"scan" yaml:"scan"`
	Output    *OutputConfig    `json:"output" yaml:"output"`
	Verbose   *VerboseConfig   `json:"verbose" yaml:"verbose"`
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/inventorize/config or its
// platform equivalent
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, ConfigDirName, ConfigFileName), nil
}

// LoadConfig loads configuration from configPath. A missing file yields the
// defaults without creating anything on disk.
func LoadConfig(configPath string) (*Config, error) {
	cfg := &Config{
		configPath: configPath,
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg.ini = ini.Empty()
		if err := cfg.setDefaults(); err != nil {
			return nil, fmt.Errorf("failed to set default config: %w", err)
		}
		return cfg, nil
	}

	iniFile, err := ini.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	cfg.ini = iniFile
	return cfg, nil
}

// InitConfig writes a default configuration file to configPath unless one exists
func InitConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); err == nil {
		return nil, fmt.Errorf("config file already exists: %s", configPath)
	}
	cfg := &Config{configPath: configPath, ini: ini.Empty()}
	if err := cfg.setDefaults(); err != nil {
		return nil, fmt.Errorf("failed to set default config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := cfg.Save(); err != nil {
		return nil, fmt.Errorf("failed to save default config: %w", err)
	}
	return cfg, nil
}

// Path returns the file the configuration was loaded from
func (c *Config) Path() string {
	return c.configPath
}

// setDefaults sets default configuration values
func (c *Config) setDefaults() error {
	defaults := []struct {
		section, key, value string
	}{
		{"inventory", "hash_algorithms", MD5.String()},
		{"inventory", "skip_hidden", "false"},
		{"scan", "chunk_size", "128K"},
		{"scan", "symlink_mode", string(DefaultSymlinkMode)},
		{"output", "format", "human"},
		{"verbose", "level", "0"},
		{"verbose", "debug", ""},
	}

	for _, d := range defaults {
		section, err := c.ini.NewSection(d.section)
		if err != nil {
			return fmt.Errorf("failed to create %s section: %w", d.section, err)
		}
		if _, err := section.NewKey(d.key, d.value); err != nil {
			return fmt.Errorf("failed to set default %s.%s: %w", d.section, d.key, err)
		}
	}
	return nil
}

// GetInventoryConfig returns the inventory defaults
func (c *Config) GetInventoryConfig() *InventoryConfig {
	inventoryConfig := &InventoryConfig{
		HashAlgorithms: []string{MD5.String()}, // fallback default
	}

	if c.ini.HasSection("inventory") {
		section := c.ini.Section("inventory")
		if section.HasKey("hash_algorithms") {
			if names := section.Key("hash_algorithms").Strings(","); len(names) > 0 {
				inventoryConfig.HashAlgorithms = foldAlgorithmNames(names)
			}
		}
		if section.HasKey("skip_hidden") {
			if skip, err := section.Key("skip_hidden").Bool(); err == nil {
				inventoryConfig.SkipHidden = skip
			}
		}
	}

	return inventoryConfig
}

// GetScanConfig returns the scan configuration
func (c *Config) GetScanConfig() *ScanConfig {
	scanConfig := &ScanConfig{
		ChunkSize:   "128K",
		SymlinkMode: string(DefaultSymlinkMode),
	}

	if c.ini.HasSection("scan") {
		section := c.ini.Section("scan")
		if section.HasKey("chunk_size") {
			if size := section.Key("chunk_size").String(); size != "" {
				scanConfig.ChunkSize = size
			}
		}
		if section.HasKey("symlink_mode") {
			if mode := section.Key("symlink_mode").String(); mode != "" {
				scanConfig.SymlinkMode = mode
			}
		}
	}

	return scanConfig
}

// GetOutputConfig returns the output configuration
func (c *Config) GetOutputConfig() *OutputConfig {
	outputConfig := &OutputConfig{
		Format: "human", // fallback default
	}

	if c.ini.HasSection("output") {
		section := c.ini.Section("output")
		if section.HasKey("format") {
			outputConfig.Format = section.Key("format").String()
		}
	}

	return outputConfig
}

// GetVerboseConfig returns the verbose configuration
func (c *Config) GetVerboseConfig() *VerboseConfig {
	verboseConfig := &VerboseConfig{}

	if c.ini.HasSection("verbose") {
		section := c.ini.Section("verbose")
		if section.HasKey("level") {
			if level, err := section.Key("level").Int(); err == nil {
				verboseConfig.Level = level
			}
		}
		if section.HasKey("debug") {
			verboseConfig.Debug = section.Key("debug").String()
		}
	}

	return verboseConfig
}

// GetAllConfig returns all configuration sections
func (c *Config) GetAllConfig() *AllConfig {
	return &AllConfig{
		Inventory: c.GetInventoryConfig(),
		Scan:      c.GetScanConfig(),
		Output:    c.GetOutputConfig(),
		Verbose:   c.GetVerboseConfig(),
	}
}

// foldAlgorithmNames lowercases and trims user-typed algorithm names. Stored
// inventories are parsed strictly; only the tool config is this lenient.
func foldAlgorithmNames(names []string) []string {
	folded := make([]string, len(names))
	for i, name := range names {
		folded[i] = strings.ToLower(strings.TrimSpace(name))
	}
	return folded
}

// ScanOptions converts the scan section into validated ScanOptions
func (c *Config) ScanOptions() (ScanOptions, error) {
	scanConfig := c.GetScanConfig()
	chunkSize, err := ParseChunkSize(scanConfig.ChunkSize)
	if err != nil {
		return ScanOptions{}, fmt.Errorf("invalid scan.chunk_size: %w", err)
	}
	mode, err := ParseSymlinkMode(scanConfig.SymlinkMode)
	if err != nil {
		return ScanOptions{}, fmt.Errorf("invalid scan.symlink_mode: %w", err)
	}
	return ScanOptions{ChunkSize: chunkSize, Symlinks: mode}, nil
}

// Save saves the configuration to disk
func (c *Config) Save() error {
	return c.ini.SaveTo(c.configPath)
}

// WriteTo writes the configuration in ini form to w
func (c *Config) WriteTo(w io.Writer) (int64, error) {
	return c.ini.WriteTo(w)
}

// ApplyOverrides applies command-line overrides to the configuration.
// Accepts strings like "hash_algorithms:md5,sha1", "format:json", "level:2", "chunk_size:1M".
func (c *Config) ApplyOverrides(overrides []string) error {
	for _, override := range overrides {
		parts := strings.SplitN(override, ":", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid override format '%s', expected 'key:value'", override)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		var section string
		var validateErr error
		switch key {
		case "hash_algorithms":
			section = "inventory"
			_, validateErr = ParseHashAlgorithms(foldAlgorithmNames(strings.Split(value, ",")))
		case "skip_hidden":
			section = "inventory"
			validateErr = ValidateBool(value)
		case "chunk_size":
			section = "scan"
			_, validateErr = ParseChunkSize(value)
		case "symlink_mode":
			section = "scan"
			validateErr = ValidateSymlinkMode(value)
		case "format":
			section = "output"
			validateErr = ValidateOutputFormat(value)
		case "level":
			section = "verbose"
			validateErr = ValidateVerboseLevelString(value)
		case "debug":
			section = "verbose"
		default:
			return fmt.Errorf("unsupported override key '%s' (supported: hash_algorithms, skip_hidden, chunk_size, symlink_mode, format, level, debug)", key)
		}
		if validateErr != nil {
			return fmt.Errorf("invalid override '%s': %w", override, validateErr)
		}
		c.ini.Section(section).Key(key).SetValue(value)
	}

	return nil
}

// ValidateOutputFormat validates that an output format is supported
func ValidateOutputFormat(format string) error {
	switch strings.ToLower(format) {
	case "human", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s (supported: human, json, yaml)", format)
	}
}

// ValidateVerboseLevel validates that a verbose level is valid
func ValidateVerboseLevel(level int) error {
	if level < 0 || level > 2 {
		return fmt.Errorf("invalid verbose level: %d (supported: 0-2)", level)
	}
	return nil
}

// ValidateVerboseLevelString validates a verbose level given as text
func ValidateVerboseLevelString(level string) error {
	n, err := strconv.Atoi(strings.TrimSpace(level))
	if err != nil {
		return fmt.Errorf("invalid verbose level: %q", level)
	}
	return ValidateVerboseLevel(n)
}

// ValidateSymlinkMode validates that a symlink mode is supported
func ValidateSymlinkMode(mode string) error {
	_, err := ParseSymlinkMode(mode)
	return err
}

// ValidateBool validates an ini boolean value
func ValidateBool(value string) error {
	switch strings.ToLower(value) {
	case "1", "t", "true", "y", "yes", "on", "0", "f", "false", "n", "no", "off":
		return nil
	default:
		return fmt.Errorf("invalid boolean: %q", value)
	}
}
