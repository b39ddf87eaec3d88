package format

import (
	"io"
	"strconv"
	"strings"

	"github.com/dhamidi/arith/expr"
)

// InfixEncoder writes expressions in the space-delimited form accepted
// by expr.Parse. Parentheses appear only where the tree's shape would
// otherwise be lost, so the output parses back to an equal tree.
type InfixEncoder struct {
	w io.Writer
}

func NewInfixEncoder(w io.Writer) *InfixEncoder {
	return &InfixEncoder{w: w}
}

func (e *InfixEncoder) Encode(x expr.Expression) error {
	return write(e.w, e, x)
}

func (e *InfixEncoder) Marshal(x expr.Expression) ([]byte, error) {
	return []byte(Infix(x) + "\n"), nil
}

// Infix returns the space-delimited text for x.
func Infix(x expr.Expression) string {
	var b strings.Builder
	writeInfix(&b, x)
	return b.String()
}

const atomicPrecedence = 3

func precedence(x expr.Expression) int {
	if o, ok := x.(expr.Operation); ok {
		return o.Op.Precedence()
	}
	return atomicPrecedence
}

func writeInfix(b *strings.Builder, x expr.Expression) {
	switch n := x.(type) {
	case expr.Value:
		b.WriteString(strconv.Itoa(n.N))
	case expr.Operation:
		// Operators are left-associative, so a right operand of equal
		// precedence needs explicit grouping.
		writeOperand(b, n.Left, precedence(n.Left) < n.Op.Precedence())
		b.WriteString(" " + n.Op.Symbol() + " ")
		writeOperand(b, n.Right, precedence(n.Right) <= n.Op.Precedence())
	}
}

func writeOperand(b *strings.Builder, x expr.Expression, group bool) {
	if group {
		b.WriteString("( ")
	}
	writeInfix(b, x)
	if group {
		b.WriteString(" )")
	}
}
