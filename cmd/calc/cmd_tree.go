package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calc"
)

func newTreeCmd() *cobra.Command {
	var display bool

	cmd := &cobra.Command{
		Use:   "tree <expression>",
		Short: "Print the parse tree of an expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := calc.Parse(args[0])
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}
			if display {
				fmt.Fprintln(cmd.OutOrStdout(), root.Display())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), root)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&display, "display", "d", false, "print the rendered expression instead of its structure")

	return cmd
}
