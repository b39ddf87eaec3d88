package expr

import (
	"fmt"

	"github.com/tliron/commonlog"
)

type Option func(*config)

// WithFile names the input in positions and error messages.
func WithFile(path string) Option {
	return func(c *config) {
		c.file = path
	}
}

// WithStartLine sets the line number reported for the input.
func WithStartLine(line int) Option {
	return func(c *config) {
		c.startLine = line
	}
}

// WithLogger traces every stack reduction at debug level.
func WithLogger(log commonlog.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

type config struct {
	file      string
	startLine int
	log       commonlog.Logger
}

func newConfig(opts []Option) *config {
	c := &config{startLine: 1}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *config) position(offset int) Position {
	return Position{
		File:   c.file,
		Offset: offset,
		Line:   c.startLine,
		Column: offset + 1,
	}
}

func (c *config) span(offset, length int) Span {
	return Span{Start: c.position(offset), End: c.position(offset + length)}
}

// Parse tokenizes text and builds its expression tree.
func Parse(text string, opts ...Option) (Expression, error) {
	tokens, err := Tokenize(text, opts...)
	if err != nil {
		return nil, err
	}
	return ParseTokens(tokens, opts...)
}

// MustParse is like Parse but panics if text is not a well-formed
// expression.
func MustParse(text string, opts ...Option) Expression {
	e, err := Parse(text, opts...)
	if err != nil {
		panic(fmt.Sprintf("expr: Parse(%q): %v", text, err))
	}
	return e
}

// ParseTokens builds an expression tree from tokens using the
// shunting-yard algorithm.
func ParseTokens(tokens []Token, opts ...Option) (Expression, error) {
	p := &parser{cfg: newConfig(opts)}
	for _, tok := range tokens {
		if err := p.step(tok); err != nil {
			return nil, err
		}
	}
	return p.finish()
}

type parser struct {
	cfg *config

	operators []Token
	results   []Expression
	// parens holds len(operators) at each open "(". Operators below
	// that depth belong to an enclosing group.
	parens     []int
	lastToken  Token
	tokenCount int
}

func (p *parser) step(tok Token) error {
	p.lastToken = tok
	p.tokenCount++

	switch tok.Kind {
	case TokenNumber:
		p.results = append(p.results, Value{N: tok.Value})
	case TokenOperator:
		for len(p.operators) > 0 &&
			p.topOperator().Op.Precedence() >= tok.Op.Precedence() &&
			(len(p.parens) == 0 || p.parens[len(p.parens)-1] < len(p.operators)) {
			if err := p.reduce(); err != nil {
				return err
			}
		}
		p.operators = append(p.operators, tok)
	case TokenLParen:
		p.parens = append(p.parens, len(p.operators))
	case TokenRParen:
		if len(p.parens) == 0 {
			return errorAt(ErrMismatchedParens, tok, "no open group to close")
		}
		boundary := p.parens[len(p.parens)-1]
		p.parens = p.parens[:len(p.parens)-1]
		for len(p.operators) > boundary {
			if err := p.reduce(); err != nil {
				return err
			}
		}
	default:
		return errorAt(ErrMalformedToken, tok, "unexpected token kind %s", tok.Kind)
	}
	return nil
}

func (p *parser) topOperator() Token {
	return p.operators[len(p.operators)-1]
}

// reduce pops one operator and combines the two most recent results.
// The older result becomes the left operand.
func (p *parser) reduce() error {
	tok := p.topOperator()
	p.operators = p.operators[:len(p.operators)-1]

	if len(p.results) < 2 {
		return errorAt(ErrIncomplete, tok, "operator %q is missing an operand", tok.Literal)
	}
	right := p.results[len(p.results)-1]
	left := p.results[len(p.results)-2]
	node := Operation{Op: tok.Op, Left: left, Right: right}
	p.results = append(p.results[:len(p.results)-2], node)

	if p.cfg.log != nil {
		p.cfg.log.Debugf("reduce %s at %s -> %s", tok.Op, tok.Span.Start, node)
	}
	return nil
}

// finish drains the operators left after the scan. Groups that are
// still open are closed implicitly.
func (p *parser) finish() (Expression, error) {
	for len(p.operators) > 0 {
		if err := p.reduce(); err != nil {
			return nil, err
		}
	}

	switch len(p.results) {
	case 0:
		if p.tokenCount == 0 {
			return nil, &Error{Err: ErrIncomplete, Message: "empty expression", Span: p.cfg.span(0, 0)}
		}
		return nil, errorAt(ErrIncomplete, p.lastToken, "no value to evaluate")
	case 1:
		return p.results[0], nil
	}
	return nil, errorAt(ErrIncomplete, p.lastToken, "%d operands are not joined by an operator", len(p.results))
}
