package main

import (
	"fmt"
	"os"

	"github.com/aretw0/orgtree/internal/cli"
	"github.com/aretw0/orgtree/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var opts cli.Options

var rootCmd = &cobra.Command{
	Use:          "orgtree",
	Short:        "orgtree inspects organization trees",
	Long:         `orgtree loads an organization tree from a YAML or JSON definition and reports its aggregate values, shape and display name.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, tui.FormatError(os.Stderr, err))
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.File, "file", "f", "", "Definition file (.yaml, .yml or .json)")
	flags.StringVar(&opts.LogLevel, "log-level", "off", "Log level written to stderr (off, debug, info, warn, error)")
	flags.StringVar(&opts.RedisURL, "redis-url", "", "Redis URL enabling distributed locking (e.g. redis://localhost:6379/0)")
	flags.StringVar(&opts.LockPrefix, "lock-prefix", "", "Redis key prefix for locks (default \"orgtree:\")")
	flags.StringVar(&opts.LockKey, "lock-key", "", "Lock name shared by processes (default: definition file name)")

	rootCmd.SilenceErrors = true
}
