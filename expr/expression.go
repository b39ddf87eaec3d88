package expr

import "fmt"

// Expression is a node of an arithmetic expression tree. The only
// implementations are Value and Operation. Both are plain values, so
// trees are immutable and two trees compare equal with == exactly when
// they have the same shape and contents.
type Expression interface {
	Eval() int
	String() string
	isExpression()
}

// Value is a literal operand.
type Value struct {
	N int
}

func (v Value) Eval() int {
	return v.N
}

func (v Value) String() string {
	return fmt.Sprintf("Value(%d)", v.N)
}

func (Value) isExpression() {}

// Operation applies Op to the results of Left and Right.
type Operation struct {
	Op    Operator
	Left  Expression
	Right Expression
}

func (o Operation) Eval() int {
	return o.Op.Eval(o.Left.Eval(), o.Right.Eval())
}

func (o Operation) String() string {
	return fmt.Sprintf("Operation(%s, %s, %s)", o.Op, o.Left, o.Right)
}

func (Operation) isExpression() {}

// Eval reduces e to an integer.
func Eval(e Expression) int {
	return e.Eval()
}

// Equal reports whether a and b are the same tree.
func Equal(a, b Expression) bool {
	return a == b
}

// Walk calls fn for e and each of its descendants in pre-order,
// passing the depth of the node. The root has depth 0.
func Walk(e Expression, fn func(e Expression, depth int)) {
	walk(e, 0, fn)
}

func walk(e Expression, depth int, fn func(Expression, int)) {
	fn(e, depth)
	if op, ok := e.(Operation); ok {
		walk(op.Left, depth+1, fn)
		walk(op.Right, depth+1, fn)
	}
}
