package expr

import (
	_ "embed"
	"fmt"
	"strings"

	"golang.org/x/exp/ebnf"
)

// GrammarStart is the start production of the expression grammar.
const GrammarStart = "Expression"

//go:embed grammar.ebnf
var grammarSource string

// GrammarSource returns the EBNF text describing the accepted language.
func GrammarSource() string {
	return grammarSource
}

// Grammar parses and verifies the expression grammar.
func Grammar() (ebnf.Grammar, error) {
	return ParseGrammar("grammar.ebnf", grammarSource)
}

// ParseGrammar parses an EBNF grammar and verifies it from GrammarStart.
func ParseGrammar(filename, src string) (ebnf.Grammar, error) {
	g, err := ebnf.Parse(filename, strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	if err := ebnf.Verify(g, GrammarStart); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}
	return g, nil
}
