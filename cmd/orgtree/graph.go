package main

import (
	"github.com/aretw0/orgtree/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the tree visualization",
	Long:  `Loads the definition and outputs a Mermaid diagram (graph TD) of the ownership tree.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		highlight, _ := cmd.Flags().GetStringSlice("highlight")

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()
		return cli.Graph(ctx, cmd.OutOrStdout(), opts, highlight)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().StringSlice("highlight", nil, "Labels of nodes to emphasize")
}
