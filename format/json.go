package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/arith/expr"
)

type JSONEncoder struct {
	w           io.Writer
	includeEval bool
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

// WithResult adds the evaluated result to the root object.
func (e *JSONEncoder) WithResult() *JSONEncoder {
	e.includeEval = true
	return e
}

func (e *JSONEncoder) Encode(x expr.Expression) error {
	return write(e.w, e, x)
}

func (e *JSONEncoder) Marshal(x expr.Expression) ([]byte, error) {
	root := exprToJSON(x)
	if e.includeEval {
		result := x.Eval()
		root.Result = &result
	}
	text, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(text, '\n'), nil
}

type exprJSON struct {
	Kind     string    `json:"kind"`
	Operator string    `json:"operator,omitempty"`
	Value    *int      `json:"value,omitempty"`
	Left     *exprJSON `json:"left,omitempty"`
	Right    *exprJSON `json:"right,omitempty"`
	Result   *int      `json:"result,omitempty"`
}

func exprToJSON(x expr.Expression) *exprJSON {
	switch n := x.(type) {
	case expr.Value:
		v := n.N
		return &exprJSON{Kind: "Value", Value: &v}
	case expr.Operation:
		return &exprJSON{
			Kind:     "Operation",
			Operator: n.Op.String(),
			Left:     exprToJSON(n.Left),
			Right:    exprToJSON(n.Right),
		}
	}
	return &exprJSON{Kind: "Unknown"}
}
