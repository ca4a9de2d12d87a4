package runtime

import (
	"strings"

	"github.com/sergev/rlisp/lang"
)

func primAdd(ev *lang.Evaluator, exprs []lang.Value) (lang.Value, error) {
	args, err := ev.EvalArgs(exprs)
	if err != nil {
		return lang.Value{}, err
	}
	if len(args) == 0 {
		return lang.Number(0), nil
	}
	first := args[0]
	if first.Type == lang.TypeString {
		var b strings.Builder
		for _, arg := range args {
			if arg.Type != lang.TypeString {
				return lang.Value{}, lang.TypeError("+", "string", arg)
			}
			b.WriteString(arg.Str())
		}
		return lang.StringValue(b.String()), nil
	}
	if !first.IsNumeric() {
		return lang.Value{}, lang.TypeError("+", "number or string", first)
	}
	acc := first
	for _, arg := range args[1:] {
		if acc, err = lang.Add(acc, arg); err != nil {
			return lang.Value{}, err
		}
	}
	return acc, nil
}

func primSub(ev *lang.Evaluator, exprs []lang.Value) (lang.Value, error) {
	args, err := ev.EvalArgs(exprs)
	if err != nil {
		return lang.Value{}, err
	}
	if len(args) == 0 {
		return lang.Number(0), nil
	}
	first := args[0]
	if first.Type == lang.TypeString {
		acc := first.Str()
		for _, arg := range args[1:] {
			if arg.Type != lang.TypeString {
				return lang.Value{}, lang.TypeError("-", "string", arg)
			}
			acc = strings.Replace(acc, arg.Str(), "", 1)
		}
		return lang.StringValue(acc), nil
	}
	if len(args) == 1 {
		return lang.Neg(first)
	}
	acc := first
	for _, arg := range args[1:] {
		if acc, err = lang.Sub(acc, arg); err != nil {
			return lang.Value{}, err
		}
	}
	return acc, nil
}

func primMul(ev *lang.Evaluator, exprs []lang.Value) (lang.Value, error) {
	args, err := ev.EvalArgs(exprs)
	if err != nil {
		return lang.Value{}, err
	}
	if len(args) == 0 {
		return lang.Number(1), nil
	}
	first := args[0]
	if first.Type == lang.TypeString {
		switch len(args) {
		case 1:
			return first, nil
		case 2:
			return repeatString(first, args[1])
		}
		return lang.Value{}, lang.ArityError("*", "2 arguments for string repetition", args)
	}
	if !first.IsNumeric() {
		return lang.Value{}, lang.TypeError("*", "number or string", first)
	}
	acc := first
	for _, arg := range args[1:] {
		switch {
		case !arg.IsNumeric():
			return lang.Value{}, lang.TypeError("*", "number", arg)
		case isOne(acc):
			acc = arg
		case isOne(arg):
		default:
			if acc, err = lang.Mul(acc, arg); err != nil {
				return lang.Value{}, err
			}
		}
	}
	return acc, nil
}

func isOne(v lang.Value) bool {
	return v.Type == lang.TypeNumber && v.Num() == 1
}

func repeatString(s, count lang.Value) (lang.Value, error) {
	if count.Type != lang.TypeNumber {
		return lang.Value{}, lang.TypeError("*", "number", count)
	}
	n := count.Num()
	if n < 0 || n != float64(int(n)) {
		return lang.Value{}, lang.NewEvalError("*", "repeat count must be a non-negative integer", count)
	}
	return lang.StringValue(strings.Repeat(s.Str(), int(n))), nil
}

func primDiv(ev *lang.Evaluator, exprs []lang.Value) (lang.Value, error) {
	args, err := ev.EvalArgs(exprs)
	if err != nil {
		return lang.Value{}, err
	}
	if len(args) == 0 {
		return lang.Number(1), nil
	}
	first := args[0]
	if first.Type == lang.TypeString {
		if len(args) != 2 {
			return lang.Value{}, lang.ArityError("/", "2 arguments for string split", args)
		}
		sep := args[1]
		if sep.Type != lang.TypeString {
			return lang.Value{}, lang.TypeError("/", "string", sep)
		}
		parts := strings.Split(first.Str(), sep.Str())
		items := make([]lang.Value, len(parts))
		for i, part := range parts {
			items[i] = lang.StringValue(part)
		}
		return lang.List(items...), nil
	}
	if len(args) == 1 {
		return lang.Reciprocal(first)
	}
	acc := first
	for _, arg := range args[1:] {
		if acc, err = lang.Div(acc, arg); err != nil {
			return lang.Value{}, err
		}
	}
	return acc, nil
}
