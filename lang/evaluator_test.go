package lang

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRandom float64

func (f fixedRandom) Float64() float64 { return float64(f) }

func newTestEvaluator(atoms *Atoms) *Evaluator {
	builtins := map[string]Builtin{
		"+": func(ev *Evaluator, exprs []Value) (Value, error) {
			args, err := ev.EvalArgs(exprs)
			if err != nil {
				return Value{}, err
			}
			acc := Number(0)
			for _, arg := range args {
				if acc, err = Add(acc, arg); err != nil {
					return Value{}, err
				}
			}
			return acc, nil
		},
		"quote": func(_ *Evaluator, exprs []Value) (Value, error) {
			if len(exprs) != 1 {
				return Value{}, ArityError("quote", "1 argument", exprs)
			}
			return exprs[0], nil
		},
	}
	constants := map[string]Value{
		"answer": Number(42),
	}
	return NewEvaluator(NewEnv(atoms, builtins, constants), fixedRandom(0.25))
}

func mustEval(t *testing.T, ev *Evaluator, expr Value) Value {
	t.Helper()
	val, err := ev.Eval(expr)
	require.NoError(t, err)
	return val
}

func requireEvalError(t *testing.T, err error, phase, message string) *EvalError {
	t.Helper()
	var evalErr *EvalError
	require.True(t, errors.As(err, &evalErr), "expected EvalError, got %v", err)
	assert.Equal(t, phase, evalErr.Phase)
	assert.Equal(t, message, evalErr.Message)
	return evalErr
}

func TestEvaluatorSelfEvaluating(t *testing.T) {
	atoms := NewAtoms()
	ev := newTestEvaluator(atoms)
	half, _ := NewRational(1, 2)

	tests := []struct {
		name string
		val  Value
	}{
		{"number", Number(12)},
		{"rational", half},
		{"bool", False},
		{"string", StringValue("cat")},
		{"keyword", atoms.Keyword("dev-deps")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustEval(t, ev, tt.val)
			assert.True(t, Equal(tt.val, got), "expected %v, got %v", tt.val, got)
		})
	}
}

func TestEvaluatorSymbols(t *testing.T) {
	atoms := NewAtoms()
	ev := newTestEvaluator(atoms)

	assert.Equal(t, Number(42), mustEval(t, ev, atoms.Symbol("answer")))

	_, err := ev.Eval(atoms.Symbol("missing"))
	e := requireEvalError(t, err, "evaluate", "symbol not defined")
	assert.Equal(t, "evaluate: symbol not defined: missing", e.Error())

	_, err = ev.Eval(atoms.Symbol("+"))
	requireEvalError(t, err, "evaluate", "symbol not defined")
}

func TestEvaluatorCalls(t *testing.T) {
	atoms := NewAtoms()
	ev := newTestEvaluator(atoms)
	plus := atoms.Symbol("+")

	got := mustEval(t, ev, List(plus, Number(1), List(plus, Number(2), Number(3))))
	assert.Equal(t, Number(6), got)

	raw := List(plus, Number(1))
	got = mustEval(t, ev, List(atoms.Symbol("quote"), raw))
	assert.True(t, Equal(raw, got), "builtins receive unevaluated arguments")

	_, err := ev.Eval(List())
	requireEvalError(t, err, "evaluate_list", "empty list")

	_, err = ev.Eval(List(Number(1), Number(2)))
	requireEvalError(t, err, "evaluate_list", "operator is not a symbol")

	_, err = ev.Eval(List(atoms.Symbol("inc"), Number(2)))
	requireEvalError(t, err, "evaluate_list", "unknown operator")

	_, err = ev.Eval(List(atoms.Symbol("quote")))
	requireEvalError(t, err, "quote", "expects 1 argument, got 0")
}

func TestEvaluatorDoesNotMutateInput(t *testing.T) {
	atoms := NewAtoms()
	ev := newTestEvaluator(atoms)
	plus := atoms.Symbol("+")
	inner := List(plus, Number(2), Number(3))
	expr := List(plus, Number(1), inner)
	before := expr.String()

	mustEval(t, ev, expr)
	assert.Equal(t, before, expr.String())
}

func TestEvaluatorCollectionsEvaluateElements(t *testing.T) {
	atoms := NewAtoms()
	ev := newTestEvaluator(atoms)
	plus := atoms.Symbol("+")

	set := SetValue(NewSet(List(plus, Number(1), Number(1)), Number(2), Number(3)))
	got := mustEval(t, ev, set)
	require.Equal(t, TypeSet, got.Type)
	assert.Equal(t, 2, got.Set().Len(), "(+ 1 1) collapses into 2")

	m := NewMap()
	m.Put(List(plus, Number(1), Number(1)), StringValue("two"))
	got = mustEval(t, ev, MapValue(m))
	want := NewMap()
	want.Put(Number(2), StringValue("two"))
	assert.True(t, Equal(MapValue(want), got), "got %v", got)
}

func TestEvaluatorRandom(t *testing.T) {
	ev := newTestEvaluator(NewAtoms())
	f, err := ev.Random()
	require.NoError(t, err)
	assert.Equal(t, 0.25, f)

	_, err = NewEvaluator(nil, nil).Random()
	assert.Error(t, err)
}

func TestEnvNames(t *testing.T) {
	ev := newTestEvaluator(NewAtoms())
	assert.Equal(t, []string{"+", "answer", "quote"}, ev.Env().Names())
}
