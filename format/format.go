// Package format renders expression trees as JSON, indented trees
// and infix text.
package format

import (
	"io"

	"github.com/dhamidi/arith/expr"
)

type Encoder interface {
	Encode(e expr.Expression) error
	Marshal(e expr.Expression) ([]byte, error)
}

// Names lists the encoders known to New.
var Names = []string{"tree", "json", "infix"}

// New returns the encoder registered under name.
func New(name string, w io.Writer) (Encoder, bool) {
	switch name {
	case "json":
		return NewJSONEncoder(w), true
	case "tree":
		return NewTreeEncoder(w), true
	case "infix":
		return NewInfixEncoder(w), true
	}
	return nil, false
}

func write(w io.Writer, enc Encoder, e expr.Expression) error {
	text, err := enc.Marshal(e)
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}
