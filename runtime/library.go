package runtime

import (
	"math"

	"github.com/sergev/rlisp/lang"
)

func constants() map[string]lang.Value {
	return map[string]lang.Value{
		"true":  lang.True,
		"false": lang.False,
		"pi":    lang.Number(math.Pi),
		"e":     lang.Number(math.E),
		"phi":   lang.Number(math.Phi),
	}
}

func builtins() map[string]lang.Builtin {
	table := map[string]lang.Builtin{
		"+": primAdd,
		"-": primSub,
		"*": primMul,
		"/": primDiv,

		"abs":   primAbs,
		"atan2": primAtan2,
		"pow":   primPow,
		"max":   primMax,
		"min":   primMin,

		"random": primRandom,

		"list":      primList,
		"new-array": primList,
		"new-set":   primNewSet,
		"new-map":   primNewMap,

		">":  compareChain(">", orderRelation(">", func(c int) bool { return c > 0 })),
		">=": compareChain(">=", orderRelation(">=", func(c int) bool { return c >= 0 })),
		"<":  compareChain("<", orderRelation("<", func(c int) bool { return c < 0 })),
		"<=": compareChain("<=", orderRelation("<=", func(c int) bool { return c <= 0 })),
		"=":  compareChain("=", equalRelation(true)),
		"<>": compareChain("<>", equalRelation(false)),

		"and": primAnd,
		"or":  primOr,
		"not": primNot,
	}
	for name, fn := range unaryMath {
		table[name] = unaryMathPrimitive(name, fn)
	}
	return table
}
