package format

import (
	"io"
	"strconv"
	"strings"

	"github.com/dhamidi/arith/expr"
)

// TreeEncoder writes one node per line, children indented two spaces
// below their parent.
type TreeEncoder struct {
	w io.Writer
}

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w}
}

func (e *TreeEncoder) Encode(x expr.Expression) error {
	return write(e.w, e, x)
}

func (e *TreeEncoder) Marshal(x expr.Expression) ([]byte, error) {
	var b strings.Builder
	expr.Walk(x, func(n expr.Expression, depth int) {
		b.WriteString(strings.Repeat("  ", depth))
		switch n := n.(type) {
		case expr.Value:
			b.WriteString("Value ")
			b.WriteString(strconv.Itoa(n.N))
		case expr.Operation:
			b.WriteString("Operation ")
			b.WriteString(n.Op.String())
		}
		b.WriteByte('\n')
	})
	return []byte(b.String()), nil
}
