package main

import (
	"strings"

	"github.com/aretw0/orgtree"
	"github.com/aretw0/orgtree/internal/cli"
	"github.com/aretw0/orgtree/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through the basic tree scenarios",
	Long:  `Builds a small organization in memory and prints the result of each step, including a rejected attach to a section.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		withMetrics, _ := cmd.Flags().GetBool("metrics")
		quiet, _ := cmd.Flags().GetBool("quiet")

		if !quiet {
			tui.PrintBanner(cmd.OutOrStdout(), strings.TrimSpace(orgtree.Version))
		}
		return cli.Demo(cmd.Context(), cmd.OutOrStdout(), opts, withMetrics)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().Bool("metrics", false, "Print the collected Prometheus metrics at the end")
	demoCmd.Flags().BoolP("quiet", "q", false, "Skip the banner")
}
