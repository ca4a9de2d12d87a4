package lang

// Set is an unordered collection without duplicates under Equal.
// Insertion order is kept only for printing.
type Set struct {
	items []Value
}

// NewSet builds a set from items, dropping duplicates.
func NewSet(items ...Value) *Set {
	s := &Set{}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add inserts v and reports whether it was not already present.
func (s *Set) Add(v Value) bool {
	if s.Has(v) {
		return false
	}
	s.items = append(s.items, v)
	return true
}

// Has reports whether an element equal to v is present.
func (s *Set) Has(v Value) bool {
	for _, item := range s.items {
		if Equal(item, v) {
			return true
		}
	}
	return false
}

// Len returns the number of elements.
func (s *Set) Len() int {
	return len(s.items)
}

// Items returns a copy of the elements.
func (s *Set) Items() []Value {
	out := make([]Value, len(s.items))
	copy(out, s.items)
	return out
}

// Map associates keys with values; keys are compared with Equal.
type Map struct {
	keys []Value
	vals []Value
}

// NewMap returns an empty map.
func NewMap() *Map {
	return &Map{}
}

func (m *Map) index(key Value) int {
	for i, k := range m.keys {
		if Equal(k, key) {
			return i
		}
	}
	return -1
}

// Put binds key to val, overwriting any equal key.
func (m *Map) Put(key, val Value) {
	if i := m.index(key); i >= 0 {
		m.vals[i] = val
		return
	}
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, val)
}

// Get returns the value bound to a key equal to key.
func (m *Map) Get(key Value) (Value, bool) {
	if i := m.index(key); i >= 0 {
		return m.vals[i], true
	}
	return Value{}, false
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.keys)
}

// Range calls fn for each entry in insertion order until fn returns false.
func (m *Map) Range(fn func(key, val Value) bool) {
	for i := range m.keys {
		if !fn(m.keys[i], m.vals[i]) {
			return
		}
	}
}
