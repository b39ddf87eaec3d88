package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dhamidi/arith/expr"
	"github.com/dhamidi/arith/sheet"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

func newEvalCmd() *cobra.Command {
	var filename string
	var trace bool

	cmd := &cobra.Command{
		Use:   "eval [expression]",
		Short: "Evaluate an expression or a worksheet",
		Long: `Evaluate a single expression given as argument.

Without an argument, evaluates a worksheet read from --file or stdin:
one expression per line, blank lines and lines starting with # are
skipped. Every line is evaluated even if some fail.

Tokens must be separated by exactly one space, e.g. "( 5 + 6 ) * 3".
An expression starting with a negative number must follow --, as in
  arith eval -- "-5 * 2"`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				if filename != "" {
					return fmt.Errorf("--file and an expression argument are mutually exclusive")
				}
				var opts []expr.Option
				if trace {
					opts = append(opts, expr.WithLogger(commonlog.GetLogger("arith.expr")))
				}
				e, err := expr.Parse(args[0], opts...)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, e.Eval())
				return nil
			}

			var source []byte
			var err error
			name := "<stdin>"
			if filename != "" {
				name = filename
				source, err = os.ReadFile(filename)
				if err != nil {
					return fmt.Errorf("read worksheet: %w", err)
				}
			} else {
				source, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			}

			return printSheet(out, cmd.ErrOrStderr(), sheet.Parse(name, source))
		},
	}

	cmd.SetFlagErrorFunc(expressionFlagError)
	cmd.Flags().StringVarP(&filename, "file", "f", "", "worksheet file to evaluate")
	cmd.Flags().BoolVar(&trace, "trace", false, "log every reduction of the parser (needs -vv)")

	return cmd
}

// expressionFlagError points at -- when a signed literal such as "-5"
// was taken for a shorthand flag.
func expressionFlagError(cmd *cobra.Command, err error) error {
	if strings.Contains(err.Error(), "unknown shorthand flag") {
		return fmt.Errorf("%w (use -- before an expression that starts with a negative number)", err)
	}
	return err
}

func printSheet(out, errOut io.Writer, f *sheet.File) error {
	for _, e := range f.Entries {
		if e.Err != nil {
			fmt.Fprintf(errOut, "%v\n", e.Err)
			continue
		}
		fmt.Fprintf(out, "%s = %d\n", e.Source, e.Value)
	}
	if n := len(f.Errors()); n > 0 {
		return fmt.Errorf("%s: %d of %d lines failed", f.Path, n, len(f.Entries))
	}
	return nil
}
