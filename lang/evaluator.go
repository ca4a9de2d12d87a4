package lang

// Random supplies uniformly distributed numbers in [0, 1).
type Random interface {
	Float64() float64
}

// Evaluator walks a Value tree and dispatches list heads through a
// read-only operator table. It holds no mutable state, so one Evaluator may
// serve concurrent callers as long as its Random source is safe to share.
type Evaluator struct {
	env    *Env
	random Random
}

// NewEvaluator constructs an evaluator over env using rnd for the random
// builtin.
func NewEvaluator(env *Env, rnd Random) *Evaluator {
	if env == nil {
		env = NewEnv(nil, nil, nil)
	}
	return &Evaluator{env: env, random: rnd}
}

// Env returns the operator table.
func (ev *Evaluator) Env() *Env {
	return ev.env
}

// Atoms returns the registry shared with the reader.
func (ev *Evaluator) Atoms() *Atoms {
	return ev.env.atoms
}

// Random draws the next number from the injected source.
func (ev *Evaluator) Random() (float64, error) {
	if ev.random == nil {
		return 0, NewEvalError("random", "no random source configured")
	}
	return ev.random.Float64(), nil
}

// Eval evaluates a single expression.
func (ev *Evaluator) Eval(expr Value) (Value, error) {
	switch expr.Type {
	case TypeNumber, TypeRational, TypeBool, TypeString, TypeKeyword:
		return expr, nil
	case TypeSymbol:
		if val, ok := ev.env.Constant(expr.Atom()); ok {
			return val, nil
		}
		return Value{}, NewEvalError("evaluate", "symbol not defined", expr)
	case TypeList:
		return ev.evalCall(expr)
	case TypeSet:
		items, err := ev.EvalArgs(expr.Set().items)
		if err != nil {
			return Value{}, err
		}
		return SetValue(NewSet(items...)), nil
	case TypeMap:
		out := NewMap()
		var err error
		expr.Map().Range(func(k, v Value) bool {
			var key, val Value
			if key, err = ev.Eval(k); err != nil {
				return false
			}
			if val, err = ev.Eval(v); err != nil {
				return false
			}
			out.Put(key, val)
			return true
		})
		if err != nil {
			return Value{}, err
		}
		return MapValue(out), nil
	}
	return Value{}, NewEvalError("evaluate", "unknown type", expr)
}

// EvalArgs evaluates each expression left to right into a fresh slice.
func (ev *Evaluator) EvalArgs(args []Value) ([]Value, error) {
	out := make([]Value, len(args))
	for i, arg := range args {
		val, err := ev.Eval(arg)
		if err != nil {
			return nil, err
		}
		out[i] = val
	}
	return out, nil
}

func (ev *Evaluator) evalCall(list Value) (Value, error) {
	items := list.Items()
	if len(items) == 0 {
		return Value{}, NewEvalError("evaluate_list", "empty list")
	}
	head := items[0]
	if head.Type != TypeSymbol {
		return Value{}, NewEvalError("evaluate_list", "operator is not a symbol", head)
	}
	fn, ok := ev.env.Builtin(head.Atom())
	if !ok {
		return Value{}, NewEvalError("evaluate_list", "unknown operator", head)
	}
	return fn(ev, items[1:])
}
