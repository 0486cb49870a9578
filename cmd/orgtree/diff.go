package main

import (
	"errors"

	"github.com/aretw0/orgtree/internal/cli"
	"github.com/spf13/cobra"
)

var errChanged = errors.New("definitions differ")

var diffCmd = &cobra.Command{
	Use:   "diff <other>",
	Short: "Compare the definition with another one",
	Long:  `Lists value, label and kind changes plus added or removed subtrees. Exits with an error when the definitions differ.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		changed, err := cli.Diff(cmd.Context(), cmd.OutOrStdout(), opts, args[0])
		if err != nil {
			return err
		}
		if changed {
			return errChanged
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
