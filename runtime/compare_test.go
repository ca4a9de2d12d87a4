package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sergev/rlisp/lang"
)

func TestComparisons(t *testing.T) {
	ev := newTestEvaluator()

	tests := []struct {
		src  string
		want bool
	}{
		{"(> 3 2)", true},
		{"(> 3 3)", false},
		{"(> 3/2 2/2)", true},
		{"(> 3/2 3/2)", false},
		{`(> "b" "a")`, true},
		{`(> "b" "b")`, false},
		{"(> 3 2 1)", true},
		{"(> 3 3 1)", false},

		{"(>= 3 3)", true},
		{"(>= 2 3)", false},
		{"(>= 3/2 3/2)", true},
		{`(>= "a" "b")`, false},

		{"(< 2 3)", true},
		{"(< 2 2)", false},
		{"(< 2/2 3/2)", true},
		{`(< "a" "b")`, true},
		{"(< 1 2 3 4)", true},
		{"(< 1 3 2)", false},

		{"(<= 2 2)", true},
		{"(<= 3 2)", false},
		{"(<= 2/3 2/3)", true},
		{`(<= "b" "a")`, false},

		{"(= 2 2)", true},
		{"(= 2 3)", false},
		{"(= 2/3 2/3)", true},
		{"(= 2/3 3/3)", false},
		{"(= 1/2 0.5)", true},
		{`(= "a" "a")`, true},
		{`(= "a" "b")`, false},
		{"(= true true)", true},
		{"(= false false)", true},
		{"(= true false)", false},
		{"(= false true)", false},
		{"(= true)", true},
		{"(= true true true)", true},
		{"(= true false true)", false},
		{"(= :a :a)", true},
		{"(= :a :b)", false},
		{`(= "2" 2)`, true},
		{`(= 2 "2.0")`, true},
		{`(= "1/2" 1/2)`, true},
		{`(= "two" 2)`, false},
		{`(= "" 0)`, true},
		{"(= 1 true)", false},

		{"(<> 1 2)", true},
		{"(<> 1 1)", false},
		{"(<> 1 2 1)", true},
		{"(<> 1 2 2)", false},
		{"(<> :a :b)", true},
		{`(<> "2" 2)`, false},
		{"(<> 1)", true},
		{"(> 1)", true},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, lang.BoolValue(tt.want), evalString(t, ev, tt.src))
		})
	}
}

func TestComparisonErrors(t *testing.T) {
	ev := newTestEvaluator()
	for _, op := range []string{">", ">=", "<", "<=", "=", "<>"} {
		e := evalError(t, ev, "("+op+")")
		assert.Equal(t, op, e.Phase)
	}
	evalError(t, ev, `(> 1 "a")`)
	evalError(t, ev, `(< :a :b)`)
	evalError(t, ev, `(> true false)`)
}

func TestComparisonStopsAtFirstFailure(t *testing.T) {
	ev := newTestEvaluator()
	assert.Equal(t, lang.False, evalString(t, ev, "(> 1 2 (undefined-op))"))
	evalError(t, ev, "(> 2 1 (undefined-op))")
}
