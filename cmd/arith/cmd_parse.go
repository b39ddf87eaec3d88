package main

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/dhamidi/arith/expr"
	"github.com/dhamidi/arith/format"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var includeResult bool

	cmd := &cobra.Command{
		Use:   "parse <expression>",
		Short: "Parse an expression and print its tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := expr.Parse(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if outputFormat == "dump" {
				spew.Fdump(out, e)
				return nil
			}

			if outputFormat == "json" && includeResult {
				return format.NewJSONEncoder(out).WithResult().Encode(e)
			}

			enc, ok := format.New(outputFormat, out)
			if !ok {
				return fmt.Errorf("unknown format: %s (expected %s or dump)", outputFormat, strings.Join(format.Names, ", "))
			}
			if err := enc.Encode(e); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.SetFlagErrorFunc(expressionFlagError)
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format (tree, json, infix, dump)")
	cmd.Flags().BoolVar(&includeResult, "result", false, "include the evaluated result in json output")

	return cmd
}
