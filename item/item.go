package item

import (
	"github.com/Nightgunner5/worldmeta/namespace"
	"github.com/Nightgunner5/worldmeta/tag"
)

type Stack struct {
	Material namespace.ID
	Amount   int8
	Meta     Meta
}

func NewStack(material namespace.ID, amount int8) Stack {
	return Stack{Material: material, Amount: amount}
}

func (s Stack) WithMeta(meta Meta) Stack {
	s.Meta = meta
	return s
}

// Meta is the item's tag data.
type Meta struct {
	Damage          int32
	Unbreakable     bool
	CustomModelData int32
	DisplayName     string

	// Extra holds custom fields that are copied into the item's tag as-is.
	Extra *tag.Compound
}

// ToNBT builds the item's tag compound. Every call returns a new compound.
func (m Meta) ToNBT() *tag.Compound {
	c := tag.NewCompound()
	if m.Damage != 0 {
		c.SetInt("Damage", m.Damage)
	}
	if m.Unbreakable {
		c.SetBool("Unbreakable", true)
	}
	if m.CustomModelData != 0 {
		c.SetInt("CustomModelData", m.CustomModelData)
	}
	if m.DisplayName != "" {
		display := tag.NewCompound()
		display.SetString("Name", m.DisplayName)
		c.Set("display", display)
	}
	if m.Extra != nil {
		extra := m.Extra.Clone()
		for _, name := range extra.Names() {
			v, _ := extra.Get(name)
			c.Set(name, v)
		}
	}
	return c
}
