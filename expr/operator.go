package expr

// Operator is a binary arithmetic operator.
type Operator int

const (
	Add Operator = iota
	Sub
	Mult
)

var operatorNames = map[Operator]string{
	Add:  "Add",
	Sub:  "Sub",
	Mult: "Mult",
}

var operatorSymbols = map[string]Operator{
	"+": Add,
	"-": Sub,
	"*": Mult,
}

func (op Operator) String() string {
	if name, ok := operatorNames[op]; ok {
		return name
	}
	return "Unknown"
}

// Symbol returns the source text of the operator.
func (op Operator) Symbol() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mult:
		return "*"
	}
	return "?"
}

// Eval applies the operator to a and b. Results wrap around on
// overflow, following Go's int arithmetic.
func (op Operator) Eval(a, b int) int {
	switch op {
	case Add:
		return a + b
	case Sub:
		return a - b
	case Mult:
		return a * b
	}
	panic("unknown operator: " + op.String())
}

// Precedence returns the binding strength of the operator.
// Mult binds tighter than Add and Sub, which are equal.
func (op Operator) Precedence() int {
	switch op {
	case Mult:
		return 2
	case Add, Sub:
		return 1
	}
	return 0
}

// ParseOperator maps "+", "-" and "*" to their operator.
// Any other input reports false.
func ParseOperator(symbol string) (Operator, bool) {
	op, ok := operatorSymbols[symbol]
	return op, ok
}
