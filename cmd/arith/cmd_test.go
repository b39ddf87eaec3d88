package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func run(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestEvalCmd(t *testing.T) {
	tests := []struct {
		expression string
		want       string
	}{
		{"1", "1\n"},
		{"5 - 6 + 12 - 3", "8\n"},
		{"3 + 5 * 21 - 6 + 2", "104\n"},
		{"( 5 + 6 ) * 3", "33\n"},
	}

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			out, _, err := run(t, newEvalCmd(), "", tt.expression)
			if err != nil {
				t.Fatalf("eval error: %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestEvalCmdError(t *testing.T) {
	_, _, err := run(t, newEvalCmd(), "", "yolo swag")
	if err == nil || !strings.Contains(err.Error(), "yolo") {
		t.Errorf("error = %v, want malformed token naming yolo", err)
	}
}

func TestEvalCmdWorksheet(t *testing.T) {
	out, errOut, err := run(t, newEvalCmd(), "# sums\n1 + 1\nyolo\n2 * 3\n")
	if err == nil {
		t.Fatal("expected an error for the failing line")
	}
	if out != "1 + 1 = 2\n2 * 3 = 6\n" {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(errOut, "<stdin>:3:1") {
		t.Errorf("stderr = %q, want position of the failing line", errOut)
	}

	path := filepath.Join(t.TempDir(), "ok.arith")
	if err := os.WriteFile(path, []byte("( 1 + 1 )\n"), 0644); err != nil {
		t.Fatal(err)
	}
	out, _, err = run(t, newEvalCmd(), "", "--file", path)
	if err != nil {
		t.Fatalf("eval --file error: %v", err)
	}
	if out != "( 1 + 1 ) = 2\n" {
		t.Errorf("output = %q", out)
	}
}

func TestParseCmd(t *testing.T) {
	out, _, err := run(t, newParseCmd(), "", "1 + 1")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if out != "Operation Add\n  Value 1\n  Value 1\n" {
		t.Errorf("tree output = %q", out)
	}

	out, _, err = run(t, newParseCmd(), "", "--format", "infix", "( 1 + 2 ) * 3")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if out != "( 1 + 2 ) * 3\n" {
		t.Errorf("infix output = %q", out)
	}

	out, _, err = run(t, newParseCmd(), "", "--format", "dump", "7")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if !strings.Contains(out, "Value") || !strings.Contains(out, "7") {
		t.Errorf("dump output = %q", out)
	}

	if _, _, err := run(t, newParseCmd(), "", "--format", "xml", "7"); err == nil {
		t.Errorf("expected unknown format error")
	}
}

func TestTokensCmd(t *testing.T) {
	out, _, err := run(t, newTokensCmd(), "", "( 1 )")
	if err != nil {
		t.Fatalf("tokens error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %q", len(lines), out)
	}
	if !strings.Contains(lines[1], "Number(1)") {
		t.Errorf("line 1 = %q, want Number(1)", lines[1])
	}
}

func TestGrammarCheckCmd(t *testing.T) {
	out, _, err := run(t, newGrammarCmd(), "", "check")
	if err != nil {
		t.Fatalf("grammar check error: %v", err)
	}
	if out != "grammar.ebnf: ok\n" {
		t.Errorf("output = %q", out)
	}

	bad := filepath.Join(t.TempDir(), "bad.ebnf")
	if err := os.WriteFile(bad, []byte("Expression = Term .\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, errOut, err := run(t, newGrammarCmd(), "", "check", bad)
	if err == nil {
		t.Fatal("expected verification error")
	}
	if !strings.Contains(errOut, "Term") {
		t.Errorf("stderr = %q, want the undefined production named", errOut)
	}
}

func TestEvalCmdNegativeLiteral(t *testing.T) {
	out, _, err := run(t, newEvalCmd(), "", "--", "-5 * 2")
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}
	if out != "-10\n" {
		t.Errorf("output = %q, want %q", out, "-10\n")
	}

	_, _, err = run(t, newEvalCmd(), "", "-5 * 2")
	if err == nil {
		t.Fatal("expected a flag error without --")
	}
	if !strings.Contains(err.Error(), "use --") {
		t.Errorf("error = %v, want a hint to use --", err)
	}
}

func TestParseCmdNegativeLiteral(t *testing.T) {
	out, _, err := run(t, newParseCmd(), "", "--format", "infix", "--", "-5 * ( -2 - 1 )")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if out != "-5 * ( -2 - 1 )\n" {
		t.Errorf("output = %q", out)
	}
}
