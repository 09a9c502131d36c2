package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	inventorize "github.com/mattkeenan/inventorize/pkg"
)

// globalOptions carries the persistent flags and the settings resolved from
// flags, environment and the tool config file, in that order of precedence.
type globalOptions struct {
	inventory  string
	repository string
	configPath string
	envFile    string
	format     string
	verbose    int
	overrides  []string

	env    *envConfig
	config *inventorize.Config
	scan   inventorize.ScanOptions
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "inventorize",
		Short: "Build and verify file inventories of a directory tree",
		Long: `inventorize records the size and content hashes of every file under a
repository directory in an inventory file, and later re-scans the repository to
report files that went missing, appeared, changed size or changed content.`,
		Version:       inventorize.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.inventory, "inventory", "i", "", "Path to the inventory file (must be outside the repository)")
	pf.StringVarP(&opts.repository, "repository", "r", ".", "Repository directory")
	pf.CountVarP(&opts.verbose, "verbose", "v", "Increase log verbosity (repeatable)")
	pf.StringVar(&opts.configPath, "config", "", "Tool config file (default $XDG_CONFIG_HOME/inventorize/config)")
	pf.StringVar(&opts.envFile, "env-file", "", "Load environment variables from a dotenv file")
	pf.StringVarP(&opts.format, "format", "f", "", "Output format: human, json, yaml")
	pf.StringArrayVar(&opts.overrides, "set", nil, "Override a config value as key:value (repeatable)")

	cmd.AddCommand(
		newBuildCmd(opts),
		newVerifyCmd(opts),
		newUpdateCmd(opts),
		newStatsCmd(opts),
		newDuplicatesCmd(opts),
		newConfigCmd(opts),
	)
	return cmd
}

func (o *globalOptions) setup(cmd *cobra.Command) error {
	envCfg, err := loadEnv(o.envFile)
	if err != nil {
		return err
	}
	o.env = envCfg

	configPath := firstNonEmpty(o.configPath, envCfg.ConfigPath)
	if configPath == "" {
		if configPath, err = inventorize.DefaultConfigPath(); err != nil {
			return err
		}
	}
	if o.config, err = inventorize.LoadConfig(configPath); err != nil {
		return err
	}
	if err := o.config.ApplyOverrides(o.overrides); err != nil {
		return err
	}

	verboseConfig := o.config.GetVerboseConfig()
	level := verboseConfig.Level
	if envCfg.Verbose > 0 {
		level = envCfg.Verbose
	}
	if cmd.Flag("verbose").Changed {
		level = o.verbose
	}
	inventorize.SetVerboseLevel(level)
	inventorize.SetDebugFlags(firstNonEmpty(envCfg.Debug, verboseConfig.Debug))

	o.format = strings.ToLower(firstNonEmpty(o.format, envCfg.Format, o.config.GetOutputConfig().Format))
	if err := inventorize.ValidateOutputFormat(o.format); err != nil {
		return err
	}

	if o.scan, err = o.config.ScanOptions(); err != nil {
		return fmt.Errorf("%s: %w", o.config.Path(), err)
	}

	o.inventory = firstNonEmpty(o.inventory, envCfg.Inventory)
	if !cmd.Flag("repository").Changed && envCfg.Repository != "" {
		o.repository = envCfg.Repository
	}
	return nil
}

// inventoryPath resolves only the inventory location
func (o *globalOptions) inventoryPath() (string, error) {
	return resolveInventoryPath(o.inventory)
}

// paths resolves both locations and enforces that the inventory lies outside the repository
func (o *globalOptions) paths() (inventory, repository string, err error) {
	if inventory, err = resolveInventoryPath(o.inventory); err != nil {
		return "", "", err
	}
	if repository, err = resolveRepositoryPath(o.repository); err != nil {
		return "", "", err
	}
	if err = checkInventoryOutside(inventory, repository); err != nil {
		return "", "", err
	}
	return inventory, repository, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
