package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calc"
)

const historyFile = ".calc_history"

func newReplCmd() *cobra.Command {
	var (
		history string
		prec    uint
	)

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Evaluate expressions interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if history == "" {
				home, _ := os.UserHomeDir()
				history = filepath.Join(home, historyFile)
			}
			return repl(cmd.OutOrStdout(), history, calc.Prec(prec))
		},
	}

	cmd.Flags().StringVar(&history, "history", "", "history file (default ~/"+historyFile+")")
	cmd.Flags().UintVarP(&prec, "prec", "p", calc.DefaultPrec, "precision in bits of fractional powers")

	return cmd
}

func repl(w io.Writer, histPath string, opts ...calc.ExecOption) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(complete)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		} else {
			log.Warningf("saving history: %v", err)
		}
	}()

	for {
		line, err := ln.Prompt("> ")
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(w)
			return nil
		}
		if err != nil {
			return fmt.Errorf("read line: %w", err)
		}
		out, quit := replLine(line, opts...)
		if quit {
			return nil
		}
		if out == "" {
			continue
		}
		fmt.Fprintln(w, out)
		ln.AppendHistory(line)
	}
}

// replLine handles one line of input, either a command beginning with ':'
// or an expression. It returns the text to print and whether to exit.
func replLine(line string, opts ...calc.ExecOption) (string, bool) {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return "", false
	case line == ":quit", line == ":q":
		return "", true
	case line == ":help":
		return help(), false
	case strings.HasPrefix(line, ":"):
		return "unknown command " + line + ". Type :help for help.", false
	}
	out, err := evalOne(line, true, opts...)
	if err != nil {
		return "error: " + err.Error(), false
	}
	return out, false
}

func help() string {
	var b strings.Builder
	b.WriteString("Enter an expression to evaluate it, e.g. mean([1, 2, 3]) + 2^0.5.\n")
	b.WriteString("Commands: :help, :quit\n")
	b.WriteString("Functions:")
	for _, name := range calc.FuncNames() {
		b.WriteByte(' ')
		b.WriteString(name)
	}
	return b.String()
}

// complete completes the function name at the end of line.
func complete(line string) []string {
	i := len(line)
	for i > 0 {
		c := line[i-1]
		if !(c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9') {
			break
		}
		i--
	}
	prefix := line[i:]
	if prefix == "" {
		return nil
	}
	var r []string
	for _, name := range calc.FuncNames() {
		if strings.HasPrefix(name, prefix) {
			r = append(r, line[:i]+name+"(")
		}
	}
	return r
}
