package expr

import (
	"errors"
	"strconv"
	"strings"
)

// Tokenize splits text on single spaces and classifies each piece.
// A piece is tried as an operator, then as an integer, then as a
// parenthesis; anything else fails the whole call with
// ErrMalformedToken.
func Tokenize(text string, opts ...Option) ([]Token, error) {
	cfg := newConfig(opts)
	if text == "" {
		return nil, nil
	}

	var tokens []Token
	offset := 0
	for _, piece := range strings.Split(text, " ") {
		tok := Token{
			Literal: piece,
			Span:    cfg.span(offset, len(piece)),
		}
		offset += len(piece) + 1

		if op, ok := ParseOperator(piece); ok {
			tok.Kind = TokenOperator
			tok.Op = op
		} else if n, err := strconv.Atoi(piece); err == nil {
			tok.Kind = TokenNumber
			tok.Value = n
		} else if errors.Is(err, strconv.ErrRange) {
			return nil, errorAt(ErrMalformedToken, tok, "integer %q out of range", piece)
		} else if piece == "(" {
			tok.Kind = TokenLParen
		} else if piece == ")" {
			tok.Kind = TokenRParen
		} else if piece == "" {
			return nil, errorAt(ErrMalformedToken, tok, "empty token, pieces must be separated by exactly one space")
		} else {
			return nil, errorAt(ErrMalformedToken, tok, "unrecognized token %q", piece)
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}
