package main

import (
	"github.com/spf13/cobra"

	"github.com/seqsense/phonemockup/config"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config.yaml>",
		Short: "Check a configuration and print it normalized",
		Long: `Check a configuration and print it normalized.

Numeric values are clamped to the panel ranges. Unknown movement types,
backgrounds, aspect ratios, lighting presets and malformed colors are
rejected.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.LoadFile(args[0])
			if err != nil {
				return err
			}
			return c.Save(cmd.OutOrStdout())
		},
	}
}
