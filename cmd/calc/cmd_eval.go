package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calc"
)

func newEvalCmd() *cobra.Command {
	var (
		inname  string
		lines   bool
		display bool
		prec    uint
		seed    int64
	)

	cmd := &cobra.Command{
		Use:   "calc [expression ...]",
		Short: "Evaluate arithmetic, set, and statistics expressions",
		Long: `Evaluate each expression given as an argument. With no arguments, the
expression is read from --in or standard input.

Arguments starting with - are read as flags. Put -- before expressions that
begin with a minus sign.`,
		Example: `  calc '2^10' '3!'
  calc -d 'sqrtn(27, 3)'
  calc -- -1+2
  calc --lines --in exprs.calc`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var srcs []string
			f, err := infile(inname, len(args) == 0)
			if err != nil {
				return err
			}
			if f != nil {
				defer f.Close()
				s, err := readInputs(f, lines)
				if err != nil {
					return fmt.Errorf("read input: %w", err)
				}
				srcs = append(srcs, s...)
			}
			srcs = append(srcs, args...)

			opts := []calc.ExecOption{calc.Prec(prec)}
			if cmd.Flags().Changed("seed") {
				opts = append(opts, calc.WithRand(rand.New(rand.NewSource(seed))))
			}
			failed := evalAll(cmd.OutOrStdout(), cmd.ErrOrStderr(), srcs, display, opts...)
			if failed > 0 {
				return fmt.Errorf("%d of %d expressions failed", failed, len(srcs))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&inname, "in", "", "input file, - for stdin (default stdin if no args given)")
	cmd.Flags().BoolVarP(&lines, "lines", "n", false, "treat each input line as a separate expression")
	cmd.Flags().BoolVarP(&display, "display", "d", false, "print the rendered expression before each result")
	cmd.Flags().UintVarP(&prec, "prec", "p", calc.DefaultPrec, "precision in bits of fractional powers")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for rand, randint, and randn")

	return cmd
}

// evalAll evaluates each expression, writing results to w and errors to ew.
// It returns the number of expressions that failed.
func evalAll(w, ew io.Writer, srcs []string, display bool, opts ...calc.ExecOption) int {
	failed := 0
	for _, src := range srcs {
		out, err := evalOne(src, display, opts...)
		if err != nil {
			log.Debugf("evaluating %q: %v", src, err)
			fmt.Fprintln(ew, err)
			failed++
			continue
		}
		fmt.Fprintln(w, out)
	}
	return failed
}

// evalOne evaluates an expression and formats its result, optionally
// preceded by the rendered expression.
func evalOne(src string, display bool, opts ...calc.ExecOption) (string, error) {
	root, err := calc.Parse(src)
	if err != nil {
		return "", err
	}
	var d string
	if display {
		d = root.Display()
	}
	v, err := calc.NewExecutor(root, opts...).Execute()
	if err != nil {
		return "", err
	}
	if display {
		return d + " = " + v.String(), nil
	}
	return v.String(), nil
}

// readInputs reads expressions from r: the entire input as one expression,
// or each non-blank line as its own if lines is set.
func readInputs(r io.Reader, lines bool) ([]string, error) {
	if !lines {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return []string{string(b)}, nil
	}
	var srcs []string
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, calc.DefaultMaxLength+1)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		srcs = append(srcs, sc.Text())
	}
	return srcs, sc.Err()
}

// infile opens the named input. An empty name means stdin only if std is
// set.
func infile(inname string, std bool) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		return f, nil
	case inname == "-", std:
		return io.NopCloser(os.Stdin), nil
	}
	return nil, nil
}
