package lang

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAtomsInterning(t *testing.T) {
	atoms := NewAtoms()

	a := atoms.Symbol("inc")
	b := atoms.Symbol("inc")
	assert.Same(t, a.Atom(), b.Atom())
	assert.True(t, Equal(a, b))

	kw := atoms.Keyword("inc")
	assert.NotSame(t, a.Atom(), kw.Atom())
	assert.False(t, Equal(a, kw), "symbols and keywords live in separate namespaces")

	other := NewAtoms().Symbol("inc")
	assert.False(t, Equal(a, other), "handles from different registries differ")

	_, ok := atoms.Lookup(SymbolAtom, "missing")
	assert.False(t, ok)
	got, ok := atoms.Lookup(KeywordAtom, "inc")
	assert.True(t, ok)
	assert.Same(t, kw.Atom(), got)

	empty := atoms.Keyword("")
	assert.Equal(t, "", empty.Name())
	assert.Equal(t, ":", empty.String())
}

func TestAtomsConcurrentIntern(t *testing.T) {
	atoms := NewAtoms()
	var wg sync.WaitGroup
	handles := make([]*Atom, 32)
	for i := range handles {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			handles[i] = atoms.Intern(SymbolAtom, "shared")
		}(i)
	}
	wg.Wait()
	for _, h := range handles {
		assert.Same(t, handles[0], h)
	}
}

func TestValueString(t *testing.T) {
	third, _ := NewRational(-1, 3)
	set := NewSet(Number(1), StringValue("a"), Number(1))
	m := NewMap()
	m.Put(Number(2), StringValue("two"))
	m.Put(Keyword("version"), Number(5))

	tests := []struct {
		name string
		val  Value
		want string
	}{
		{"integer", Number(12), "12"},
		{"float", Number(1.23), "1.23"},
		{"negative", Number(-3.5), "-3.5"},
		{"infinity", Number(math.Inf(-1)), "-Infinity"},
		{"nan", Number(math.NaN()), "NaN"},
		{"rational", third, "-1/3"},
		{"bool", True, "true"},
		{"string", StringValue(`a"b`), `"a\"b"`},
		{"symbol", Symbol("find-last"), "find-last"},
		{"keyword", Keyword("class-name"), ":class-name"},
		{"list", List(Number(1), List(Number(2), Number(3))), "(1 (2 3))"},
		{"empty list", List(), "()"},
		{"set", SetValue(set), `#{1 "a"}`},
		{"map", MapValue(m), `{2 "two", :version 5}`},
		{"unknown", Value{Type: ValueType(99)}, "<unknown>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.val.String())
		})
	}
}

func TestIsTruthy(t *testing.T) {
	falsy := []Value{False, Number(0), Number(math.NaN()), StringValue("")}
	for _, v := range falsy {
		assert.False(t, IsTruthy(v), "%v should be falsy", v)
	}
	truthy := []Value{True, Number(-1), StringValue("0"), Keyword("false"), List(), SetValue(NewSet())}
	for _, v := range truthy {
		assert.True(t, IsTruthy(v), "%v should be truthy", v)
	}
}

func TestEqual(t *testing.T) {
	half, _ := NewRational(1, 2)
	otherHalf, _ := NewRational(2, 4)

	assert.True(t, Equal(half, otherHalf))
	assert.False(t, Equal(Number(0.5), half), "numbers and rationals are distinct variants")
	assert.True(t, Equal(List(Number(1), StringValue("x")), List(Number(1), StringValue("x"))))
	assert.False(t, Equal(List(Number(1)), List(Number(1), Number(2))))
	assert.True(t, Equal(
		SetValue(NewSet(Number(1), Number(2))),
		SetValue(NewSet(Number(2), Number(1))),
	))

	a, b := NewMap(), NewMap()
	a.Put(Keyword("x"), Number(1))
	a.Put(Keyword("y"), Number(2))
	b.Put(Keyword("y"), Number(2))
	b.Put(Keyword("x"), Number(1))
	assert.True(t, Equal(MapValue(a), MapValue(b)), "maps ignore insertion order")
	b.Put(Keyword("x"), Number(3))
	assert.False(t, Equal(MapValue(a), MapValue(b)))
}

func TestSetAndMap(t *testing.T) {
	s := NewSet(Number(2), Number(7), Number(2))
	assert.Equal(t, 2, s.Len())
	assert.False(t, s.Add(Number(7)))
	assert.True(t, s.Add(Number(5)))
	assert.True(t, s.Has(Number(5)))

	m := NewMap()
	m.Put(StringValue("k"), Number(1))
	m.Put(StringValue("k"), Number(2))
	assert.Equal(t, 1, m.Len())
	val, ok := m.Get(StringValue("k"))
	assert.True(t, ok)
	assert.Equal(t, Number(2), val)
	_, ok = m.Get(StringValue("missing"))
	assert.False(t, ok)
}
