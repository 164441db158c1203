package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calc"
)

var errNotComputable = errors.New("expression is not computable")

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <expression>",
		Short: "Report whether an expression parses and evaluates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return check(cmd.OutOrStdout(), args[0])
		},
	}
}

func check(w io.Writer, src string) error {
	status := func(ok bool) string {
		if ok {
			return "ok"
		}
		return "error"
	}
	syn := calc.IsSyntacticallyValid(src)
	comp := syn && calc.IsComputable(src)
	fmt.Fprintln(w, "syntax:", status(syn))
	fmt.Fprintln(w, "computable:", status(comp))
	if !comp {
		return errNotComputable
	}
	return nil
}
