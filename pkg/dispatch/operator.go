// pkg/dispatch/operator.go
package dispatch

import (
	"fmt"
	"strings"

	"github.com/xkilldash9x/vector2/pkg/vector"
)

// Operator names a binary vector operation.
type Operator int

const (
	Add Operator = iota
	Sub
	Mul
	Div
	Dot
)

var operatorNames = [...]string{
	Add: "add",
	Sub: "sub",
	Mul: "mul",
	Div: "div",
	Dot: "dot",
}

var operatorSymbols = map[string]Operator{
	"+": Add,
	"-": Sub,
	"*": Mul,
	"/": Div,
	"@": Dot,
}

func (o Operator) String() string {
	if o < 0 || int(o) >= len(operatorNames) {
		return fmt.Sprintf("Operator(%d)", int(o))
	}
	return operatorNames[o]
}

// ParseOperator accepts an operator name ("add") or symbol ("+").
func ParseOperator(s string) (Operator, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if op, ok := operatorSymbols[s]; ok {
		return op, nil
	}
	for i, name := range operatorNames {
		if name == s {
			return Operator(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown operator %q", vector.ErrInvalidArgument, s)
}

// reflectable reports whether the operator has a reflected form to try when
// the left operand cannot handle the right one.
func (o Operator) reflectable() bool {
	return o != Div
}
