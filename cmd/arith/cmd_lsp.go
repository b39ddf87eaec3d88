package main

import (
	"github.com/dhamidi/arith/lsp"
	"github.com/spf13/cobra"
)

func newLSPCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server for .arith worksheets",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := lsp.NewServer(version, debug)
			return server.RunStdio()
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "log protocol messages")

	return cmd
}
