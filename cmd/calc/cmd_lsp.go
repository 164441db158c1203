package main

import (
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calc/lsp"
)

func newLSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Info("starting language server")
			return lsp.NewServer(version).RunStdio()
		},
	}
}
