package lang

import "sort"

// Builtin implements an operator. It receives the raw, unevaluated argument
// expressions and evaluates them itself through the Evaluator.
type Builtin func(ev *Evaluator, args []Value) (Value, error)

// Env is the read-only table of operators and constants, keyed by interned
// symbol. It is never modified after NewEnv returns.
type Env struct {
	atoms     *Atoms
	builtins  map[*Atom]Builtin
	constants map[*Atom]Value
}

// NewEnv interns every name in atoms and copies the definitions.
func NewEnv(atoms *Atoms, builtins map[string]Builtin, constants map[string]Value) *Env {
	if atoms == nil {
		atoms = DefaultAtoms
	}
	env := &Env{
		atoms:     atoms,
		builtins:  make(map[*Atom]Builtin, len(builtins)),
		constants: make(map[*Atom]Value, len(constants)),
	}
	for name, fn := range builtins {
		env.builtins[atoms.Intern(SymbolAtom, name)] = fn
	}
	for name, val := range constants {
		env.constants[atoms.Intern(SymbolAtom, name)] = val
	}
	return env
}

// Atoms returns the registry the table is keyed against.
func (e *Env) Atoms() *Atoms {
	return e.atoms
}

// Builtin retrieves the operator bound to sym.
func (e *Env) Builtin(sym *Atom) (Builtin, bool) {
	fn, ok := e.builtins[sym]
	return fn, ok
}

// Constant retrieves the constant bound to sym.
func (e *Env) Constant(sym *Atom) (Value, bool) {
	val, ok := e.constants[sym]
	return val, ok
}

// Names lists every operator and constant name in sorted order.
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.builtins)+len(e.constants))
	for atom := range e.builtins {
		names = append(names, atom.Name)
	}
	for atom := range e.constants {
		names = append(names, atom.Name)
	}
	sort.Strings(names)
	return names
}
