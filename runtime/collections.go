package runtime

import "github.com/sergev/rlisp/lang"

func primList(ev *lang.Evaluator, exprs []lang.Value) (lang.Value, error) {
	args, err := ev.EvalArgs(exprs)
	if err != nil {
		return lang.Value{}, err
	}
	return lang.List(args...), nil
}

func primNewSet(ev *lang.Evaluator, exprs []lang.Value) (lang.Value, error) {
	args, err := ev.EvalArgs(exprs)
	if err != nil {
		return lang.Value{}, err
	}
	return lang.SetValue(lang.NewSet(args...)), nil
}

// primNewMap takes alternating keys and values; a later equal key
// overwrites an earlier one.
func primNewMap(ev *lang.Evaluator, exprs []lang.Value) (lang.Value, error) {
	if len(exprs)%2 != 0 {
		return lang.Value{}, lang.ArityError("new-map", "an even number of arguments", exprs)
	}
	m := lang.NewMap()
	for i := 0; i < len(exprs); i += 2 {
		key, err := ev.Eval(exprs[i])
		if err != nil {
			return lang.Value{}, err
		}
		val, err := ev.Eval(exprs[i+1])
		if err != nil {
			return lang.Value{}, err
		}
		m.Put(key, val)
	}
	return lang.MapValue(m), nil
}
