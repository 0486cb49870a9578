package main

import (
	"github.com/aretw0/orgtree/internal/cli"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the normalized definition as YAML",
	Long:  `Loads the definition and writes it back with explicit kinds, to stdout or to the file given by --out.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()
		return cli.Export(ctx, cmd.OutOrStdout(), opts, out)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("out", "o", "", "Destination file (default: stdout)")
}
