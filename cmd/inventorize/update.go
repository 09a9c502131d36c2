package main

import (
	"github.com/spf13/cobra"

	inventorize "github.com/mattkeenan/inventorize/pkg"
)

func newUpdateCmd(opts *globalOptions) *cobra.Command {
	var removeMissing bool

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Add new files to the inventory",
		Long: `
Hash files present in the repository but not yet in the inventory and add them.
With --remove-missing, records of files no longer in the repository are dropped.
Files already in the inventory are not re-hashed; use verify to detect changes.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inventoryPath, repository, err := opts.paths()
			if err != nil {
				return err
			}

			inv, err := inventorize.LoadInventory(inventoryPath)
			if err != nil {
				return err
			}
			inv.SetScanOptions(opts.scan)

			before := inv.Len()
			if err := inv.Update(repository, removeMissing); err != nil {
				return err
			}
			if err := inventorize.SaveInventory(inventoryPath, inv, true); err != nil {
				return err
			}

			inventorize.Logger().Info("Inventory updated successfully.",
				"inventory", inventoryPath, "files_before", before, "files_after", inv.Len())
			return nil
		},
	}

	cmd.Flags().BoolVar(&removeMissing, "remove-missing", false, "Drop records of files missing from the repository")
	return cmd
}
