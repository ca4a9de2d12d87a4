package runtime

import "github.com/sergev/rlisp/lang"

// primAnd returns the first falsy operand, or the last operand when all are
// truthy. Operands after the first falsy one are not evaluated.
func primAnd(ev *lang.Evaluator, exprs []lang.Value) (lang.Value, error) {
	return shortCircuit(ev, "and", exprs, false)
}

// primOr returns the first truthy operand, or the last operand when all are
// falsy.
func primOr(ev *lang.Evaluator, exprs []lang.Value) (lang.Value, error) {
	return shortCircuit(ev, "or", exprs, true)
}

func shortCircuit(ev *lang.Evaluator, name string, exprs []lang.Value, stopOn bool) (lang.Value, error) {
	if len(exprs) == 0 {
		return lang.Value{}, lang.ArityError(name, "at least 1 argument", exprs)
	}
	var val lang.Value
	for _, expr := range exprs {
		var err error
		if val, err = ev.Eval(expr); err != nil {
			return lang.Value{}, err
		}
		if lang.IsTruthy(val) == stopOn {
			return val, nil
		}
	}
	return val, nil
}

func primNot(ev *lang.Evaluator, exprs []lang.Value) (lang.Value, error) {
	arg, err := evalOne(ev, "not", exprs)
	if err != nil {
		return lang.Value{}, err
	}
	return lang.BoolValue(!lang.IsTruthy(arg)), nil
}
