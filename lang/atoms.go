package lang

import "sync"

// AtomKind separates the symbol and keyword namespaces.
type AtomKind int

const (
	SymbolAtom AtomKind = iota
	KeywordAtom
)

// Atom is the canonical handle of an interned name. Two symbols (or two
// keywords) from the same registry are equal iff their handles are equal.
type Atom struct {
	Name string
	Kind AtomKind
}

// Atoms is an append-only registry of interned symbols and keywords.
// It is safe for concurrent use.
type Atoms struct {
	mu       sync.RWMutex
	symbols  map[string]*Atom
	keywords map[string]*Atom
}

// DefaultAtoms is the process-wide registry used by the package-level
// helpers in reader and runtime.
var DefaultAtoms = NewAtoms()

// NewAtoms creates an empty registry.
func NewAtoms() *Atoms {
	return &Atoms{
		symbols:  make(map[string]*Atom),
		keywords: make(map[string]*Atom),
	}
}

// Intern returns the canonical handle for name in the given namespace.
func (a *Atoms) Intern(kind AtomKind, name string) *Atom {
	table := a.symbols
	if kind == KeywordAtom {
		table = a.keywords
	}

	a.mu.RLock()
	atom, ok := table[name]
	a.mu.RUnlock()
	if ok {
		return atom
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if atom, ok := table[name]; ok {
		return atom
	}
	atom = &Atom{Name: name, Kind: kind}
	table[name] = atom
	return atom
}

// Lookup returns the handle for name without interning it.
func (a *Atoms) Lookup(kind AtomKind, name string) (*Atom, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if kind == KeywordAtom {
		atom, ok := a.keywords[name]
		return atom, ok
	}
	atom, ok := a.symbols[name]
	return atom, ok
}

// Symbol returns the interned symbol Value named name.
func (a *Atoms) Symbol(name string) Value {
	return Value{Type: TypeSymbol, payload: a.Intern(SymbolAtom, name)}
}

// Keyword returns the interned keyword Value named name.
func (a *Atoms) Keyword(name string) Value {
	return Value{Type: TypeKeyword, payload: a.Intern(KeywordAtom, name)}
}

// Symbol interns name in DefaultAtoms.
func Symbol(name string) Value {
	return DefaultAtoms.Symbol(name)
}

// Keyword interns name in DefaultAtoms.
func Keyword(name string) Value {
	return DefaultAtoms.Keyword(name)
}
