// Package calc implements the arithmetic behind the calculator tool.
package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/theapemachine/rusty-server/pkg/tools"
)

var (
	ErrDivisionByZero   = tools.InvalidParams("Division by zero is not allowed")
	ErrUnknownOperation = tools.InvalidParams("Unknown operation. Supported operations: add, subtract, multiply, divide")
)

// Operation is one of the four arithmetic operations the calculator supports.
type Operation int

const (
	Add Operation = iota + 1
	Subtract
	Multiply
	Divide
)

var synonyms = map[string]Operation{
	"add":            Add,
	"addition":       Add,
	"+":              Add,
	"subtract":       Subtract,
	"subtraction":    Subtract,
	"-":              Subtract,
	"multiply":       Multiply,
	"multiplication": Multiply,
	"*":              Multiply,
	"divide":         Divide,
	"division":       Divide,
	"/":              Divide,
}

// ParseOperation maps any accepted spelling of an operation, in any case, to its Operation.
func ParseOperation(name string) (Operation, error) {
	if op, ok := synonyms[strings.ToLower(name)]; ok {
		return op, nil
	}

	return 0, ErrUnknownOperation
}

func (op Operation) String() string {
	switch op {
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	case Multiply:
		return "multiply"
	case Divide:
		return "divide"
	}

	return fmt.Sprintf("Operation(%d)", int(op))
}

// Apply computes a op b.
func (op Operation) Apply(a, b float64) (float64, error) {
	switch op {
	case Add:
		return a + b, nil
	case Subtract:
		return a - b, nil
	case Multiply:
		return a * b, nil
	case Divide:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	}

	return 0, ErrUnknownOperation
}

// Request is a single calculator invocation as sent by the client.
type Request struct {
	Operation string  `json:"operation" jsonschema_description:"The operation to perform: add, subtract, multiply, divide"`
	A         float64 `json:"a" jsonschema_description:"The first number"`
	B         float64 `json:"b" jsonschema_description:"The second number"`
}

// Evaluate parses the operation and applies it to the operands.
func (r Request) Evaluate() (float64, error) {
	op, err := ParseOperation(r.Operation)
	if err != nil {
		return 0, err
	}

	return op.Apply(r.A, r.B)
}

// Format renders the request and its result as "{a} {operation} {b} = {result}",
// keeping the operation exactly as the client spelled it.
func (r Request) Format(result float64) string {
	return fmt.Sprintf("%s %s %s = %s", FormatNumber(r.A), r.Operation, FormatNumber(r.B), FormatNumber(result))
}

// FormatNumber renders f in the shortest decimal form that round-trips, without an exponent.
func FormatNumber(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}
