package runtime

import (
	"math"
	"strconv"
	"strings"

	"github.com/sergev/rlisp/lang"
)

type relation func(a, b lang.Value) (bool, error)

// compareChain evaluates arguments left to right and checks rel on each
// adjacent pair, stopping at the first pair that fails.
func compareChain(name string, rel relation) lang.Builtin {
	return func(ev *lang.Evaluator, exprs []lang.Value) (lang.Value, error) {
		if len(exprs) == 0 {
			return lang.Value{}, lang.ArityError(name, "at least 1 argument", exprs)
		}
		prev, err := ev.Eval(exprs[0])
		if err != nil {
			return lang.Value{}, err
		}
		for _, expr := range exprs[1:] {
			cur, err := ev.Eval(expr)
			if err != nil {
				return lang.Value{}, err
			}
			ok, err := rel(prev, cur)
			if err != nil {
				return lang.Value{}, err
			}
			if !ok {
				return lang.False, nil
			}
			prev = cur
		}
		return lang.True, nil
	}
}

// orderRelation compares numbers by floating value and strings
// lexicographically.
func orderRelation(name string, accept func(c int) bool) relation {
	return func(a, b lang.Value) (bool, error) {
		if a.IsNumeric() && b.IsNumeric() {
			x, _ := a.Float()
			y, _ := b.Float()
			if math.IsNaN(x) || math.IsNaN(y) {
				return false, nil
			}
			switch {
			case x < y:
				return accept(-1), nil
			case x > y:
				return accept(1), nil
			}
			return accept(0), nil
		}
		if a.Type == lang.TypeString && b.Type == lang.TypeString {
			return accept(strings.Compare(a.Str(), b.Str())), nil
		}
		if !a.IsNumeric() && a.Type != lang.TypeString {
			return false, lang.TypeError(name, "number or string", a)
		}
		return false, lang.NewEvalError(name, "cannot compare "+a.Type.String()+" with "+b.Type.String(), a, b)
	}
}

func equalRelation(want bool) relation {
	return func(a, b lang.Value) (bool, error) {
		return looselyEqual(a, b) == want, nil
	}
}

// looselyEqual is value equality where numbers compare by floating value
// and a string equals a number when it reads as that number.
func looselyEqual(a, b lang.Value) bool {
	if a.IsNumeric() && b.IsNumeric() {
		x, _ := a.Float()
		y, _ := b.Float()
		return x == y
	}
	if a.Type == lang.TypeString && b.IsNumeric() {
		return stringEqualsNumber(a.Str(), b)
	}
	if b.Type == lang.TypeString && a.IsNumeric() {
		return stringEqualsNumber(b.Str(), a)
	}
	return lang.Equal(a, b)
}

func stringEqualsNumber(s string, n lang.Value) bool {
	y, _ := n.Float()
	if s == lang.FormatNumber(y) || (n.Type == lang.TypeRational && s == n.String()) {
		return true
	}
	t := strings.TrimSpace(s)
	if t == "" {
		return y == 0
	}
	x, err := strconv.ParseFloat(t, 64)
	return err == nil && x == y
}
