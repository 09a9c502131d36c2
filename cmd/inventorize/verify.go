package main

import (
	"errors"

	"github.com/spf13/cobra"

	inventorize "github.com/mattkeenan/inventorize/pkg"
)

var errVerificationFailed = errors.New("verification failed")

func newVerifyCmd(opts *globalOptions) *cobra.Command {
	var quick bool

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Compare the repository against the inventory",
		Long: `
Re-scan the repository and report files missing from the repository, files
missing from the inventory, size mismatches and hash mismatches. With --quick
only presence and size are compared; content changes that keep the size are
not detected. Exits with status 1 when any failure is found.
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

			report, err := inv.Check(repository, !quick)
			if err != nil {
				return err
			}
			if err := writeReport(cmd.OutOrStdout(), opts.format, report); err != nil {
				return err
			}

			if !report.IsEmpty() {
				inventorize.Logger().Error("Verification failed.", "failures", report.TotalFailures())
				return errVerificationFailed
			}
			inventorize.Logger().Info("No issues found.", "files", inv.Len())
			return nil
		},
	}

	cmd.Flags().BoolVar(&quick, "quick", false, "Compare sizes only, skip hashing")
	return cmd
}
