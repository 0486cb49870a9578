package main

import (
	"github.com/aretw0/orgtree/internal/cli"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Render the tree as an outline",
	Long:  `Prints a Markdown outline of the tree, styled for the terminal when stdout is one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()
		return cli.Show(ctx, cmd.OutOrStdout(), opts)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
