package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/dhamidi/arith/expr"
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens <expression>",
		Short: "Print the tokens of an expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := expr.Tokenize(args[0])
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, tok := range tokens {
				fmt.Fprintf(w, "%s\t%s\t%q\n", tok.Span.Start, tok, tok.Literal)
			}
			return w.Flush()
		},
	}

	cmd.SetFlagErrorFunc(expressionFlagError)

	return cmd
}
