// Package tag is an in-memory NBT tree: compounds of named, typed fields and
// lists of compounds. Compounds remember the order fields were first set in,
// so encoding the same tree twice produces the same bytes.
package tag

import "github.com/Tnze/go-mc/nbt"

type Value interface {
	tagType() byte
}

type Byte int8
type Int int32
type Float float32
type Double float64
type String string

func (Byte) tagType() byte      { return nbt.TagByte }
func (Int) tagType() byte       { return nbt.TagInt }
func (Float) tagType() byte     { return nbt.TagFloat }
func (Double) tagType() byte    { return nbt.TagDouble }
func (String) tagType() byte    { return nbt.TagString }
func (*Compound) tagType() byte { return nbt.TagCompound }
func (*List) tagType() byte     { return nbt.TagList }

type field struct {
	name  string
	value Value
}

// Compound is a set of named fields. The zero value is an empty compound
// ready to use.
type Compound struct {
	fields []field
	index  map[string]int
}

func NewCompound() *Compound {
	return new(Compound)
}

// Set stores v under name. An existing field keeps its position.
func (c *Compound) Set(name string, v Value) {
	if i, ok := c.index[name]; ok {
		c.fields[i].value = v
		return
	}
	if c.index == nil {
		c.index = make(map[string]int)
	}
	c.index[name] = len(c.fields)
	c.fields = append(c.fields, field{name, v})
}

func (c *Compound) SetString(name, s string) {
	c.Set(name, String(s))
}

func (c *Compound) SetFloat(name string, f float32) {
	c.Set(name, Float(f))
}

func (c *Compound) SetDouble(name string, d float64) {
	c.Set(name, Double(d))
}

func (c *Compound) SetInt(name string, i int32) {
	c.Set(name, Int(i))
}

func (c *Compound) SetByte(name string, b int8) {
	c.Set(name, Byte(b))
}

func (c *Compound) SetBool(name string, b bool) {
	if b {
		c.Set(name, Byte(1))
	} else {
		c.Set(name, Byte(0))
	}
}

func (c *Compound) Get(name string) (Value, bool) {
	i, ok := c.index[name]
	if !ok {
		return nil, false
	}
	return c.fields[i].value, true
}

func (c *Compound) GetString(name string) (string, bool) {
	v, _ := c.Get(name)
	s, ok := v.(String)
	return string(s), ok
}

func (c *Compound) GetInt(name string) (int32, bool) {
	v, _ := c.Get(name)
	i, ok := v.(Int)
	return int32(i), ok
}

func (c *Compound) GetCompound(name string) (*Compound, bool) {
	v, _ := c.Get(name)
	sub, ok := v.(*Compound)
	return sub, ok
}

func (c *Compound) GetList(name string) (*List, bool) {
	v, _ := c.Get(name)
	l, ok := v.(*List)
	return l, ok
}

func (c *Compound) Has(name string) bool {
	_, ok := c.index[name]
	return ok
}

// Remove deletes a field. Removing a missing field does nothing.
func (c *Compound) Remove(name string) {
	i, ok := c.index[name]
	if !ok {
		return
	}
	c.fields = append(c.fields[:i], c.fields[i+1:]...)
	delete(c.index, name)
	for j := i; j < len(c.fields); j++ {
		c.index[c.fields[j].name] = j
	}
}

func (c *Compound) Len() int {
	return len(c.fields)
}

// Names lists the field names in order.
func (c *Compound) Names() []string {
	names := make([]string, len(c.fields))
	for i, f := range c.fields {
		names[i] = f.name
	}
	return names
}

// Clone returns a deep copy.
func (c *Compound) Clone() *Compound {
	out := &Compound{
		fields: make([]field, len(c.fields)),
		index:  make(map[string]int, len(c.fields)),
	}
	for i, f := range c.fields {
		out.fields[i] = field{f.name, clone(f.value)}
		out.index[f.name] = i
	}
	return out
}

func clone(v Value) Value {
	switch t := v.(type) {
	case *Compound:
		return t.Clone()
	case *List:
		return t.Clone()
	}
	return v
}

// List is a list of compounds.
type List struct {
	items []*Compound
}

func NewList(items ...*Compound) *List {
	return &List{items: items}
}

func (l *List) Append(c *Compound) {
	l.items = append(l.items, c)
}

func (l *List) Len() int {
	return len(l.items)
}

func (l *List) At(i int) *Compound {
	return l.items[i]
}

func (l *List) Clone() *List {
	out := &List{items: make([]*Compound, len(l.items))}
	for i, c := range l.items {
		out.items[i] = c.Clone()
	}
	return out
}

// Equal compares two values structurally. Field order inside compounds is
// ignored; element order inside lists is not.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case *Compound:
		y, ok := b.(*Compound)
		if !ok || x.Len() != y.Len() {
			return false
		}
		for _, f := range x.fields {
			other, ok := y.Get(f.name)
			if !ok || !Equal(f.value, other) {
				return false
			}
		}
		return true
	case *List:
		y, ok := b.(*List)
		if !ok || x.Len() != y.Len() {
			return false
		}
		for i := range x.items {
			if !Equal(x.items[i], y.items[i]) {
				return false
			}
		}
		return true
	}
	return a == b
}
