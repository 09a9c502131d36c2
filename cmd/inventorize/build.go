package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	inventorize "github.com/mattkeenan/inventorize/pkg"
)

func newBuildCmd(opts *globalOptions) *cobra.Command {
	var (
		overwrite  bool
		skipHidden bool
		algorithms []string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a new inventory of the repository",
		Long: `
Traverse the repository, hash every file with the selected algorithms and
write a new inventory. An existing inventory is only replaced with --overwrite.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inventoryPath, repository, err := opts.paths()
			if err != nil {
				return err
			}
			if !overwrite {
				if _, err := os.Lstat(inventoryPath); err == nil {
					return inventorize.ErrInventoryExists
				}
			}

			defaults := opts.config.GetInventoryConfig()
			if !cmd.Flags().Changed("hash-algorithm") {
				algorithms = defaults.HashAlgorithms
			}
			for i, name := range algorithms {
				algorithms[i] = strings.ToLower(strings.TrimSpace(name))
			}
			algs, err := inventorize.ParseHashAlgorithms(algorithms)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("skip-hidden") {
				skipHidden = defaults.SkipHidden
			}

			config := inventorize.NewConfiguration()
			config.SetSkipHidden(skipHidden)
			config.SetHashAlgorithms(algs)

			inv := inventorize.NewInventory(config)
			inv.SetScanOptions(opts.scan)
			inventorize.VerboseLog(1, "building inventory of %s with %v", repository, algs)
			if err := inv.Build(repository); err != nil {
				return err
			}
			if err := inventorize.SaveInventory(inventoryPath, inv, overwrite); err != nil {
				return err
			}

			stats := inv.Stats()
			inventorize.Logger().Info("Inventory built successfully.",
				"inventory", inventoryPath, "files", stats.Files, "size", inventorize.FormatSize(stats.TotalBytes))
			return nil
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing inventory")
	cmd.Flags().BoolVar(&skipHidden, "skip-hidden", false, "Skip dot files and do not descend into dot directories")
	cmd.Flags().StringSliceVarP(&algorithms, "hash-algorithm", "a", []string{"md5"}, "Hash algorithm to record: md5, sha1 (repeatable)")
	return cmd
}
