package expr

import "fmt"

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Span struct {
	Start Position
	End   Position
}

type TokenKind int

const (
	TokenNumber TokenKind = iota
	TokenOperator
	TokenLParen
	TokenRParen
)

var tokenKindNames = map[TokenKind]string{
	TokenNumber:   "Number",
	TokenOperator: "BinOp",
	TokenLParen:   "(",
	TokenRParen:   ")",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Token is one space-delimited piece of an expression.
// Value is set for TokenNumber and Op for TokenOperator.
type Token struct {
	Kind    TokenKind
	Literal string
	Value   int
	Op      Operator
	Span    Span
}

func (t Token) String() string {
	switch t.Kind {
	case TokenNumber:
		return fmt.Sprintf("Number(%d)", t.Value)
	case TokenOperator:
		return fmt.Sprintf("BinOp(%s)", t.Op)
	case TokenLParen:
		return "LeftParen"
	case TokenRParen:
		return "RightParen"
	}
	return "Unknown(" + t.Literal + ")"
}
