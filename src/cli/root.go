// Package cli wires the benchviz commands.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/scalebench/benchviz/src/logger"
)

func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

func NewRootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:           "benchviz",
		Short:         "benchviz renders comparison charts from benchmark result CSVs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logger.SetLogLevel(logLevel)
		},
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
	cmd.AddCommand(newScaleCmd(), newReadmeCmd(), newIngestCmd())
	return cmd
}
