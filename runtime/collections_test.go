package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sergev/rlisp/lang"
)

func TestLogic(t *testing.T) {
	ev := newTestEvaluator()
	str := lang.StringValue

	runEvalCases(t, ev, []evalCase{
		{"(and 1 0 2)", lang.Number(0)},
		{"(or 1 0 2)", lang.Number(1)},
		{"(and 1 2 3)", lang.Number(3)},
		{"(or 0 false)", lang.False},
		{`(or "" 0 "x")`, str("x")},
		{`(and "a" "")`, str("")},
		{"(and true true)", lang.True},
		{"(and true false)", lang.False},
		{"(or false true)", lang.True},
		{"(and :k)", ev.Atoms().Keyword("k")},
		{"(not 0)", lang.True},
		{"(not 1)", lang.False},
		{`(not "")`, lang.True},
		{"(not false)", lang.True},
		{"(not (list))", lang.False},
	})

	assert.Equal(t, lang.Number(0), evalString(t, ev, "(and 0 (undefined-op))"))
	assert.Equal(t, lang.Number(1), evalString(t, ev, "(or 1 (undefined-op))"))

	evalError(t, ev, "(and)")
	evalError(t, ev, "(or)")
	evalError(t, ev, "(not)")
	evalError(t, ev, "(not 1 2)")
}

func TestCollections(t *testing.T) {
	ev := newTestEvaluator()
	num := lang.Number
	atoms := ev.Atoms()

	runEvalCases(t, ev, []evalCase{
		{"(list 2 (+ 3 4) 5)", lang.List(num(2), num(7), num(5))},
		{"(new-array 2 (+ 3 4) 5)", lang.List(num(2), num(7), num(5))},
		{"(list)", lang.List()},
		{"(new-set 2 (+ 3 4) 5)", lang.SetValue(lang.NewSet(num(5), num(2), num(7)))},
		{"(new-set 1 1 (- 2 1) 1/2 2/4)", lang.SetValue(lang.NewSet(num(1), rat(t, 1, 2)))},
	})

	want := lang.NewMap()
	want.Put(num(2), lang.StringValue("two"))
	want.Put(atoms.Keyword("version"), num(5))
	got := evalString(t, ev, `(new-map (+ 1 1) "two" :version (+ 2 3))`)
	assert.True(t, lang.Equal(lang.MapValue(want), got), "got %v", got)
	assert.Equal(t, 2, got.Map().Len())

	got = evalString(t, ev, `(new-map :a 1 :b 2 :a 3)`)
	val, ok := got.Map().Get(atoms.Keyword("a"))
	assert.True(t, ok)
	assert.Equal(t, num(3), val)
	assert.Equal(t, "{:a 3, :b 2}", got.String())

	e := evalError(t, ev, "(new-map :a)")
	assert.Equal(t, "new-map", e.Phase)
}

func TestCollectionsAreFresh(t *testing.T) {
	ev := newTestEvaluator()
	expr := "(new-set 1 2)"
	a := evalString(t, ev, expr)
	b := evalString(t, ev, expr)
	assert.NotSame(t, a.Set(), b.Set())
	a.Set().Add(lang.Number(3))
	assert.Equal(t, 2, b.Set().Len())
}
