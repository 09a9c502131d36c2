package main

import (
	"fmt"

	"github.com/spf13/cobra"

	inventorize "github.com/mattkeenan/inventorize/pkg"
)

func newConfigCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the tool config file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if opts.format == "human" {
				fmt.Fprintf(w, "; %s\n", opts.config.Path())
				_, err := opts.config.WriteTo(w)
				return err
			}
			return writeStructured(w, opts.format, opts.config.GetAllConfig())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a config file with default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := inventorize.InitConfig(opts.config.Path())
			if err != nil {
				return err
			}
			inventorize.Logger().Info("Config file written.", "path", cfg.Path())
			return nil
		},
	})
	return cmd
}
