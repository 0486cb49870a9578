package main

import (
	"github.com/aretw0/orgtree/internal/cli"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the display name and totals of the tree",
	Long:  `Loads the definition and prints the root's display name, aggregate value, node count and depth.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()
		return cli.Inspect(ctx, cmd.OutOrStdout(), opts, asJSON)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().Bool("json", false, "Print every node as JSON")
}
