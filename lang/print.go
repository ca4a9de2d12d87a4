package lang

import (
	"math"
	"strconv"
	"strings"
)

func (v Value) String() string {
	var b strings.Builder
	writeValue(&b, v)
	return b.String()
}

// FormatNumber renders f in its shortest decimal form.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == math.Trunc(f) && math.Abs(f) < 1e21:
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func writeValue(b *strings.Builder, v Value) {
	switch v.Type {
	case TypeNumber:
		b.WriteString(FormatNumber(v.Num()))
	case TypeRational:
		r := v.Rat()
		b.WriteString(strconv.FormatInt(r.Num, 10))
		b.WriteByte('/')
		b.WriteString(strconv.FormatInt(r.Den, 10))
	case TypeBool:
		b.WriteString(strconv.FormatBool(v.Bool()))
	case TypeString:
		b.WriteString(strconv.Quote(v.Str()))
	case TypeSymbol:
		b.WriteString(v.Name())
	case TypeKeyword:
		b.WriteByte(':')
		b.WriteString(v.Name())
	case TypeList:
		b.WriteByte('(')
		writeItems(b, v.Items())
		b.WriteByte(')')
	case TypeSet:
		b.WriteString("#{")
		writeItems(b, v.Set().items)
		b.WriteByte('}')
	case TypeMap:
		b.WriteByte('{')
		first := true
		v.Map().Range(func(k, val Value) bool {
			if !first {
				b.WriteString(", ")
			}
			first = false
			writeValue(b, k)
			b.WriteByte(' ')
			writeValue(b, val)
			return true
		})
		b.WriteByte('}')
	default:
		b.WriteString("<unknown>")
	}
}

func writeItems(b *strings.Builder, items []Value) {
	for i, item := range items {
		if i > 0 {
			b.WriteByte(' ')
		}
		writeValue(b, item)
	}
}
