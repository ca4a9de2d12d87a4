package runtime

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sergev/rlisp/lang"
	"github.com/sergev/rlisp/reader"
)

type options struct {
	atoms  *lang.Atoms
	random lang.Random
}

// Option configures NewEvaluator.
type Option func(*options)

// WithAtoms sets the registry shared with the reader. Defaults to
// lang.DefaultAtoms.
func WithAtoms(atoms *lang.Atoms) Option {
	return func(o *options) {
		o.atoms = atoms
	}
}

// WithRandom injects the source used by the random builtin.
func WithRandom(rnd lang.Random) Option {
	return func(o *options) {
		o.random = rnd
	}
}

// WithSeed makes the random builtin deterministic.
func WithSeed(seed int64) Option {
	return WithRandom(NewRandom(seed))
}

// NewEvaluator constructs an evaluator with the standard operator table
// installed.
func NewEvaluator(opts ...Option) *lang.Evaluator {
	o := options{atoms: lang.DefaultAtoms}
	for _, opt := range opts {
		opt(&o)
	}
	if o.random == nil {
		o.random = NewRandom(time.Now().UnixNano())
	}
	env := lang.NewEnv(o.atoms, builtins(), constants())
	return lang.NewEvaluator(env, o.random)
}

// EvaluateString parses every expression in src and evaluates them in
// order, returning the last result. Blank input yields the empty marker.
func EvaluateString(ev *lang.Evaluator, src string) (lang.Value, error) {
	forms, err := reader.New(ev.Atoms()).ParseAll(src)
	if err != nil {
		return lang.Value{}, err
	}
	result := ev.Atoms().Symbol(reader.EmptyMarker)
	for _, expr := range forms {
		result, err = ev.Eval(expr)
		if err != nil {
			return lang.Value{}, err
		}
	}
	return result, nil
}

// EvaluateReader consumes all expressions from r and evaluates them.
func EvaluateReader(ev *lang.Evaluator, r io.Reader) (lang.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return lang.Value{}, err
	}
	return EvaluateString(ev, string(data))
}

// EvaluateFile loads and evaluates a source file, allowing a #! line.
func EvaluateFile(ev *lang.Evaluator, path string) (lang.Value, error) {
	data, err := readFileSkippingShebang(path)
	if err != nil {
		return lang.Value{}, err
	}
	val, err := EvaluateString(ev, string(data))
	if err != nil {
		return lang.Value{}, fmt.Errorf("%s: %w", path, err)
	}
	return val, nil
}

func readFileSkippingShebang(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if bytes.HasPrefix(data, []byte("#!")) {
		if idx := bytes.IndexByte(data, '\n'); idx >= 0 {
			return data[idx+1:], nil
		}
		return []byte{}, nil
	}
	return data, nil
}
