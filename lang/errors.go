package lang

import (
	"fmt"
	"strings"
)

// EvalError reports a malformed call or operand. Phase names the evaluator
// step or operator that failed and Nodes holds the offending values.
type EvalError struct {
	Phase   string
	Message string
	Nodes   []Value
	Err     error
}

func (e *EvalError) Error() string {
	if e == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(e.Phase)
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if len(e.Nodes) > 0 {
		b.WriteString(": ")
		for i, n := range e.Nodes {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(n.String())
		}
	}
	return b.String()
}

func (e *EvalError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewEvalError constructs an EvalError.
func NewEvalError(phase, message string, nodes ...Value) error {
	return &EvalError{Phase: phase, Message: message, Nodes: nodes}
}

// WrapEvalError attaches phase and nodes to err unless it already is an
// EvalError.
func WrapEvalError(phase string, err error, nodes ...Value) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*EvalError); ok {
		return err
	}
	return &EvalError{Phase: phase, Message: err.Error(), Nodes: nodes, Err: err}
}

// TypeError reports an operand of the wrong kind.
func TypeError(name, expected string, got Value) error {
	return &EvalError{
		Phase:   name,
		Message: fmt.Sprintf("expects %s, got %s", expected, got.Type),
		Nodes:   []Value{got},
	}
}

// ArityError reports a wrong argument count.
func ArityError(name, expected string, args []Value) error {
	return &EvalError{
		Phase:   name,
		Message: fmt.Sprintf("expects %s, got %d", expected, len(args)),
		Nodes:   args,
	}
}
