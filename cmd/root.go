package cmd

import (
	"fmt"
	"os"

	"catalog-manager/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "catalog-manager",
	Short: "Catalog Manager Service",
	Long: `Catalog Manager keeps the product catalog in line with the backend feed.
It archives, updates and creates items, assigns campaign codes, and lets a
reviewer inspect every change before it is written.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with debug level gives ISO8601 timestamps for CLI output
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
