package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

var log = commonlog.GetLogger("calc")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose int
	rootCmd := newEvalCmd()
	rootCmd.Version = version
	rootCmd.SilenceUsage = true
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "log more details (repeatable)")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		commonlog.Configure(verbose, nil)
	}

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newTreeCmd())
	rootCmd.AddCommand(newReplCmd())
	rootCmd.AddCommand(newLSPCmd())

	return rootCmd
}
