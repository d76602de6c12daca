// Package main provides the itree command-line tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "itree",
		Short: "Fast overlap queries over genomic interval sets",
		Long: `itree answers "which stored intervals overlap this region" queries using
an augmented self-balancing interval tree, partitioned per chromosome.
Intervals come from BED files or a DuckDB interval store.`,
		Version:      fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initConfig()
		},
	}

	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(newQueryCmd(&verbose))
	cmd.AddCommand(newImportCmd(&verbose))
	cmd.AddCommand(newBenchCmd(&verbose))
	cmd.AddCommand(newPrintCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// newLogger returns a development logger when verbose is set, a no-op
// logger otherwise.
func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// initConfig loads ~/.itree.yaml if present.
func initConfig() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	viper.AddConfigPath(home)
	viper.SetConfigName(".itree")
	viper.SetConfigType("yaml")
	_ = viper.ReadInConfig()
}
