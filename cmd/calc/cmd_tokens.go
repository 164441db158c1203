package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calc"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <expression>",
		Short: "Print the tokens of an expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printTokens(cmd.OutOrStdout(), args[0])
		},
	}
}

// printTokens writes one token per line as Kind "text" line:col+width. Tokens
// before a lexical error are printed before the error is returned.
func printTokens(w io.Writer, src string) error {
	l := calc.NewLexer(src)
	for {
		tok, err := l.Next()
		if err != nil {
			return fmt.Errorf("lex: %w", err)
		}
		if tok.Kind == calc.TokenEOF {
			return nil
		}
		fmt.Fprintf(w, "%s %s %d:%d+%d\n", tok.Kind, strconv.Quote(tok.Text), tok.Line, tok.Col, tok.Width)
	}
}
