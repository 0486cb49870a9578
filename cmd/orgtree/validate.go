package main

import (
	"github.com/aretw0/orgtree/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the definition for consistency",
	Long:  `Reports every problem in the definition (unknown kinds, leaves owning children) without building the tree.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Validate(cmd.Context(), cmd.OutOrStdout(), opts)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
