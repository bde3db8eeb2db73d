package tagattrs

import (
	"iter"
	"sort"
)

// Attribute is a single name/value pair as it appears on an element.
type Attribute struct {
	Name  string
	Value string
}

// Attributes is an ordered attribute mapping. Names are unique and keep the
// order in which they were first set. The zero value is ready to use and a
// nil *Attributes reads as empty.
type Attributes struct {
	list  []Attribute
	index map[string]int
}

// NewAttributes builds a mapping from pairs, in order. A repeated name
// replaces the earlier value without moving it.
func NewAttributes(pairs ...Attribute) *Attributes {
	a := &Attributes{}
	for _, p := range pairs {
		a.Set(p.Name, p.Value)
	}
	return a
}

// AttributesFromMap copies m using sorted key order.
func AttributesFromMap(m map[string]string) *Attributes {
	a := &Attributes{}
	for _, k := range sortedKeys(m) {
		a.Set(k, m[k])
	}
	return a
}

// Set adds name or replaces its value in place.
func (a *Attributes) Set(name, value string) {
	if a.index == nil {
		a.index = make(map[string]int)
	}
	if i, ok := a.index[name]; ok {
		a.list[i].Value = value
		return
	}
	a.index[name] = len(a.list)
	a.list = append(a.list, Attribute{Name: name, Value: value})
}

func (a *Attributes) Get(name string) (string, bool) {
	if a == nil {
		return "", false
	}
	i, ok := a.index[name]
	if !ok {
		return "", false
	}
	return a.list[i].Value, true
}

func (a *Attributes) Has(name string) bool {
	_, ok := a.Get(name)
	return ok
}

// Delete removes name, keeping the order of the remaining entries.
func (a *Attributes) Delete(name string) {
	if a == nil {
		return
	}
	i, ok := a.index[name]
	if !ok {
		return
	}
	a.list = append(a.list[:i], a.list[i+1:]...)
	delete(a.index, name)
	for j := i; j < len(a.list); j++ {
		a.index[a.list[j].Name] = j
	}
}

func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return len(a.list)
}

// Names returns the attribute names in order.
func (a *Attributes) Names() []string {
	names := make([]string, 0, a.Len())
	for name := range a.All() {
		names = append(names, name)
	}
	return names
}

// List returns a copy of the pairs in order.
func (a *Attributes) List() []Attribute {
	if a == nil {
		return nil
	}
	out := make([]Attribute, len(a.list))
	copy(out, a.list)
	return out
}

// All iterates name/value pairs in order.
func (a *Attributes) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if a == nil {
			return
		}
		for _, p := range a.list {
			if !yield(p.Name, p.Value) {
				return
			}
		}
	}
}

// Map returns an unordered copy.
func (a *Attributes) Map() map[string]string {
	m := make(map[string]string, a.Len())
	for k, v := range a.All() {
		m[k] = v
	}
	return m
}

// Equal reports whether both mappings hold the same pairs in the same order.
func (a *Attributes) Equal(b *Attributes) bool {
	if a.Len() != b.Len() {
		return false
	}
	al, bl := a.List(), b.List()
	for i := range al {
		if al[i] != bl[i] {
			return false
		}
	}
	return true
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
