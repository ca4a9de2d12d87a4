package reader

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sergev/rlisp/lang"
)

// EmptyMarker is the symbol name Parse returns for blank input.
const EmptyMarker = "empty"

// Reader turns source text into Values, interning symbols and keywords in
// its registry.
type Reader struct {
	atoms *lang.Atoms
}

// New constructs a Reader over atoms. A nil registry means lang.DefaultAtoms.
func New(atoms *lang.Atoms) *Reader {
	if atoms == nil {
		atoms = lang.DefaultAtoms
	}
	return &Reader{atoms: atoms}
}

var defaultReader = New(nil)

// Parse parses exactly one expression using lang.DefaultAtoms.
func Parse(src string) (lang.Value, error) {
	return defaultReader.Parse(src)
}

// ParseAll parses every top-level expression using lang.DefaultAtoms.
func ParseAll(src string) ([]lang.Value, error) {
	return defaultReader.ParseAll(src)
}

// Parse parses src, which must hold exactly one expression. Blank input
// yields the symbol EmptyMarker.
func (rd *Reader) Parse(src string) (lang.Value, error) {
	sc := &scanner{src: strings.TrimSpace(src), atoms: rd.atoms}
	if sc.atEnd() {
		return rd.atoms.Symbol(EmptyMarker), nil
	}
	val, err := sc.readExpr()
	if err != nil {
		return lang.Value{}, err
	}
	sc.skipWhitespace()
	if !sc.atEnd() {
		return lang.Value{}, newError("parse", "extra tokens", sc.rest())
	}
	return val, nil
}

// ParseAll parses a sequence of whitespace-separated expressions.
func (rd *Reader) ParseAll(src string) ([]lang.Value, error) {
	sc := &scanner{src: src, atoms: rd.atoms}
	var values []lang.Value
	for {
		sc.skipWhitespace()
		if sc.atEnd() {
			return values, nil
		}
		val, err := sc.readExpr()
		if err != nil {
			return nil, err
		}
		values = append(values, val)
	}
}

type charClass int

const (
	classEnd charClass = iota
	classDigit
	classQuote
	classOpen
	classClose
	classKeyword
	classWhitespace
	classOther
)

func classify(r rune) charClass {
	switch {
	case r == '(':
		return classOpen
	case r == ')':
		return classClose
	case r >= '0' && r <= '9':
		return classDigit
	case r == '"':
		return classQuote
	case r == ':':
		return classKeyword
	case unicode.IsSpace(r):
		return classWhitespace
	default:
		return classOther
	}
}

type scanner struct {
	src   string
	pos   int
	atoms *lang.Atoms
}

func (sc *scanner) atEnd() bool {
	return sc.pos >= len(sc.src)
}

func (sc *scanner) rest() string {
	return sc.src[sc.pos:]
}

func (sc *scanner) peek() (rune, int) {
	if sc.atEnd() {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(sc.src[sc.pos:])
}

func (sc *scanner) class() charClass {
	if sc.atEnd() {
		return classEnd
	}
	r, _ := sc.peek()
	return classify(r)
}

func (sc *scanner) skipWhitespace() {
	for sc.class() == classWhitespace {
		_, w := sc.peek()
		sc.pos += w
	}
}

func (sc *scanner) readExpr() (lang.Value, error) {
	switch sc.class() {
	case classDigit:
		return sc.readNumber()
	case classQuote:
		return sc.readString()
	case classOpen:
		return sc.readList()
	case classKeyword:
		sc.pos++
		return sc.atoms.Keyword(sc.readName()), nil
	case classOther:
		if sc.signedNumberAhead() {
			return sc.readNumber()
		}
		return sc.atoms.Symbol(sc.readName()), nil
	case classClose:
		return lang.Value{}, newError("parse_one", "unexpected close-bracket", sc.rest())
	case classEnd:
		return lang.Value{}, newIncompleteError("parse_one", "unexpected end of input", "")
	}
	return lang.Value{}, newError("parse_one", "unexpected char_type", sc.rest())
}

// signedNumberAhead reports a sign immediately followed by a digit, as in -3.5.
func (sc *scanner) signedNumberAhead() bool {
	if sc.pos+1 >= len(sc.src) {
		return false
	}
	c := sc.src[sc.pos]
	return (c == '-' || c == '+') && classify(rune(sc.src[sc.pos+1])) == classDigit
}

func (sc *scanner) readNumber() (lang.Value, error) {
	phase := "parse_number(up)"
	up, ok := sc.readFloat()
	if !ok {
		return lang.Value{}, newError(phase, "malformed number", sc.rest())
	}
	value := lang.Number(up)

	if !sc.atEnd() && sc.src[sc.pos] == '/' {
		sc.pos++
		phase = "parse_number(down)"
		down, ok := sc.readFloat()
		if !ok {
			return lang.Value{}, newError(phase, "malformed denominator", sc.rest())
		}
		v, err := lang.RationalFromFloats(up, down)
		if err != nil {
			return lang.Value{}, &ParseError{Phase: phase, Message: err.Error(), Rest: sc.rest(), Err: err}
		}
		value = v
	}

	switch sc.class() {
	case classWhitespace, classEnd, classClose:
		return value, nil
	}
	return lang.Value{}, newError(phase, "unexpected character after number", sc.rest())
}

// readFloat consumes the longest floating-point literal prefix: an optional
// sign, digits, an optional fraction and an optional exponent.
func (sc *scanner) readFloat() (float64, bool) {
	src := sc.src
	i := sc.pos
	if i < len(src) && (src[i] == '-' || src[i] == '+') {
		i++
	}
	start := i
	for i < len(src) && isDigit(src[i]) {
		i++
	}
	if i == start {
		return 0, false
	}
	if i+1 < len(src) && src[i] == '.' && isDigit(src[i+1]) {
		i++
		for i < len(src) && isDigit(src[i]) {
			i++
		}
	}
	if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
		j := i + 1
		if j < len(src) && (src[j] == '-' || src[j] == '+') {
			j++
		}
		if j < len(src) && isDigit(src[j]) {
			for j < len(src) && isDigit(src[j]) {
				j++
			}
			i = j
		}
	}
	f, err := strconv.ParseFloat(src[sc.pos:i], 64)
	if err != nil {
		// Out-of-range literals still carry the rounded value (±Inf).
		if ne, ok := err.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
			return 0, false
		}
	}
	sc.pos = i
	return f, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func (sc *scanner) readString() (lang.Value, error) {
	start := sc.pos
	sc.pos++
	var builder strings.Builder
	for {
		if sc.atEnd() {
			return lang.Value{}, newIncompleteError("parse_string", "missing terminating string quote", sc.src[start:])
		}
		r, w := sc.peek()
		sc.pos += w
		switch r {
		case '"':
			return lang.StringValue(builder.String()), nil
		case '\\':
			if sc.atEnd() {
				return lang.Value{}, newIncompleteError("parse_string", "missing char after escape sequence", sc.src[start:])
			}
			r, w = sc.peek()
			sc.pos += w
		}
		builder.WriteRune(r)
	}
}

func (sc *scanner) readList() (lang.Value, error) {
	start := sc.pos
	sc.pos++
	var elems []lang.Value
	for {
		sc.skipWhitespace()
		switch sc.class() {
		case classEnd:
			return lang.Value{}, newIncompleteError("parse_bracket", "missing close-bracket", sc.src[start:])
		case classClose:
			sc.pos++
			return lang.List(elems...), nil
		}
		elem, err := sc.readExpr()
		if err != nil {
			return lang.Value{}, err
		}
		elems = append(elems, elem)
	}
}

// readName consumes characters up to whitespace, a close-bracket or the end.
func (sc *scanner) readName() string {
	start := sc.pos
	for {
		switch sc.class() {
		case classEnd, classWhitespace, classClose:
			return sc.src[start:sc.pos]
		}
		_, w := sc.peek()
		sc.pos += w
	}
}
