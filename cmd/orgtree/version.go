package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/orgtree"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of orgtree",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "orgtree version %s\n", strings.TrimSpace(orgtree.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
