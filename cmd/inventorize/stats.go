package main

import (
	"github.com/spf13/cobra"

	inventorize "github.com/mattkeenan/inventorize/pkg"
)

func newStatsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the number and total size of files in the inventory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inventoryPath, err := opts.inventoryPath()
			if err != nil {
				return err
			}
			inv, err := inventorize.LoadInventory(inventoryPath)
			if err != nil {
				return err
			}
			return writeStats(cmd.OutOrStdout(), opts.format, inv)
		},
	}
}

func newDuplicatesCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "duplicates",
		Short: "List files in the inventory with identical size and hashes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inventoryPath, err := opts.inventoryPath()
			if err != nil {
				return err
			}
			inv, err := inventorize.LoadInventory(inventoryPath)
			if err != nil {
				return err
			}
			return writeDuplicates(cmd.OutOrStdout(), opts.format, inv.FindDuplicates())
		},
	}
}
