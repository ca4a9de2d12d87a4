package runtime

import (
	"math"

	"github.com/sergev/rlisp/lang"
)

var unaryMath = map[string]func(float64) float64{
	"acos":  math.Acos,
	"asin":  math.Asin,
	"atan":  math.Atan,
	"ceil":  math.Ceil,
	"cos":   math.Cos,
	"exp":   math.Exp,
	"floor": math.Floor,
	"log":   math.Log,
	"round": roundHalfUp,
	"sin":   math.Sin,
	"sqrt":  math.Sqrt,
	"tan":   math.Tan,
}

// roundHalfUp rounds ties toward positive infinity: 2.5 -> 3, -2.5 -> -2.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

func evalOne(ev *lang.Evaluator, name string, exprs []lang.Value) (lang.Value, error) {
	if len(exprs) != 1 {
		return lang.Value{}, lang.ArityError(name, "1 argument", exprs)
	}
	return ev.Eval(exprs[0])
}

func evalTwo(ev *lang.Evaluator, name string, exprs []lang.Value) (lang.Value, lang.Value, error) {
	if len(exprs) != 2 {
		return lang.Value{}, lang.Value{}, lang.ArityError(name, "2 arguments", exprs)
	}
	args, err := ev.EvalArgs(exprs)
	if err != nil {
		return lang.Value{}, lang.Value{}, err
	}
	return args[0], args[1], nil
}

func toFloat(name string, v lang.Value) (float64, error) {
	f, ok := v.Float()
	if !ok {
		return 0, lang.TypeError(name, "number", v)
	}
	return f, nil
}

func unaryMathPrimitive(name string, fn func(float64) float64) lang.Builtin {
	return func(ev *lang.Evaluator, exprs []lang.Value) (lang.Value, error) {
		arg, err := evalOne(ev, name, exprs)
		if err != nil {
			return lang.Value{}, err
		}
		x, err := toFloat(name, arg)
		if err != nil {
			return lang.Value{}, err
		}
		return lang.Number(fn(x)), nil
	}
}

func primAbs(ev *lang.Evaluator, exprs []lang.Value) (lang.Value, error) {
	arg, err := evalOne(ev, "abs", exprs)
	if err != nil {
		return lang.Value{}, err
	}
	switch arg.Type {
	case lang.TypeNumber:
		return lang.Number(math.Abs(arg.Num())), nil
	case lang.TypeRational:
		r := arg.Rat()
		num := r.Num
		if num < 0 {
			num = -num
		}
		return lang.NewRational(num, r.Den)
	}
	return lang.Value{}, lang.TypeError("abs", "number", arg)
}

func primAtan2(ev *lang.Evaluator, exprs []lang.Value) (lang.Value, error) {
	y, x, err := evalTwo(ev, "atan2", exprs)
	if err != nil {
		return lang.Value{}, err
	}
	return atan2(y, x)
}

func atan2(y, x lang.Value) (lang.Value, error) {
	if y.Type == lang.TypeNumber && x.Type == lang.TypeNumber {
		return lang.Number(math.Atan2(y.Num(), x.Num())), nil
	}
	fy, err := toFloat("atan2", y)
	if err != nil {
		return lang.Value{}, err
	}
	fx, err := toFloat("atan2", x)
	if err != nil {
		return lang.Value{}, err
	}
	return lang.Number(math.Atan2(fy, fx)), nil
}

// primPow raises a Number or Rational base to a Number exponent. Any other
// operand combination is answered by the atan2 computation, a long-standing
// behavior kept for compatibility.
func primPow(ev *lang.Evaluator, exprs []lang.Value) (lang.Value, error) {
	base, exp, err := evalTwo(ev, "pow", exprs)
	if err != nil {
		return lang.Value{}, err
	}
	switch {
	case base.Type == lang.TypeNumber && exp.Type == lang.TypeNumber:
		return lang.Number(math.Pow(base.Num(), exp.Num())), nil
	case base.Type == lang.TypeRational && exp.Type == lang.TypeNumber:
		r := base.Rat()
		num, den, e := float64(r.Num), float64(r.Den), exp.Num()
		if e < 0 && e == math.Trunc(e) {
			num, den, e = den, num, -e
		}
		return lang.RationalFromFloats(math.Pow(num, e), math.Pow(den, e))
	}
	return atan2(base, exp)
}

func primMax(ev *lang.Evaluator, exprs []lang.Value) (lang.Value, error) {
	return extremum(ev, "max", math.Inf(-1), exprs, func(x, best float64) bool { return x > best })
}

func primMin(ev *lang.Evaluator, exprs []lang.Value) (lang.Value, error) {
	return extremum(ev, "min", math.Inf(1), exprs, func(x, best float64) bool { return x < best })
}

// extremum returns the first argument whose floating key beats all others,
// unconverted.
func extremum(ev *lang.Evaluator, name string, empty float64, exprs []lang.Value, better func(x, best float64) bool) (lang.Value, error) {
	args, err := ev.EvalArgs(exprs)
	if err != nil {
		return lang.Value{}, err
	}
	if len(args) == 0 {
		return lang.Number(empty), nil
	}
	best := args[0]
	bestKey, err := toFloat(name, best)
	if err != nil {
		return lang.Value{}, err
	}
	for _, arg := range args[1:] {
		key, err := toFloat(name, arg)
		if err != nil {
			return lang.Value{}, err
		}
		if better(key, bestKey) {
			best, bestKey = arg, key
		}
	}
	return best, nil
}

func primRandom(ev *lang.Evaluator, exprs []lang.Value) (lang.Value, error) {
	if len(exprs) != 0 {
		return lang.Value{}, lang.ArityError("random", "0 arguments", exprs)
	}
	f, err := ev.Random()
	if err != nil {
		return lang.Value{}, err
	}
	return lang.Number(f), nil
}
