package lang

// Equal reports structural value equality. Numbers compare by value,
// symbols and keywords by handle, lists element-wise, sets and maps
// without regard to insertion order.
func Equal(a, b Value) bool {
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case TypeNumber:
		return a.Num() == b.Num()
	case TypeRational:
		ra, rb := a.Rat(), b.Rat()
		return ra.Num == rb.Num && ra.Den == rb.Den
	case TypeBool:
		return a.Bool() == b.Bool()
	case TypeString:
		return a.Str() == b.Str()
	case TypeSymbol, TypeKeyword:
		return a.Atom() == b.Atom()
	case TypeList:
		ai, bi := a.Items(), b.Items()
		if len(ai) != len(bi) {
			return false
		}
		for i := range ai {
			if !Equal(ai[i], bi[i]) {
				return false
			}
		}
		return true
	case TypeSet:
		sa, sb := a.Set(), b.Set()
		if sa.Len() != sb.Len() {
			return false
		}
		for _, item := range sa.items {
			if !sb.Has(item) {
				return false
			}
		}
		return true
	case TypeMap:
		ma, mb := a.Map(), b.Map()
		if ma.Len() != mb.Len() {
			return false
		}
		equal := true
		ma.Range(func(k, v Value) bool {
			other, ok := mb.Get(k)
			equal = ok && Equal(v, other)
			return equal
		})
		return equal
	}
	return false
}
