package biome

import (
	"fmt"

	"github.com/Nightgunner5/worldmeta/block"
	"github.com/Nightgunner5/worldmeta/item"
	"github.com/Nightgunner5/worldmeta/namespace"
	"github.com/Nightgunner5/worldmeta/tag"
)

// Particles is an ambient particle effect. Probability is the chance the
// client spawns one per tick. A nil Options encodes no options compound.
type Particles struct {
	Probability float32
	Options     ParticleOptions
}

func (p Particles) ToNBT() *tag.Compound {
	c := tag.NewCompound()
	c.SetFloat("probability", p.Probability)
	if p.Options != nil {
		c.Set("options", OptionsNBT(p.Options))
	}
	return c
}

// Blocks copy their properties on write; only an item's extra tag data is
// shared by a plain copy.
func (p Particles) clone() Particles {
	if o, ok := p.Options.(ItemParticle); ok && o.Item.Meta.Extra != nil {
		o.Item.Meta.Extra = o.Item.Meta.Extra.Clone()
		p.Options = o
	}
	return p
}

// ParticleOptions is one of BlockParticle, DustParticle, ItemParticle or
// NormalParticle. The set is closed.
type ParticleOptions interface {
	particleOptions()
}

// BlockParticle shows a block's breaking texture.
type BlockParticle struct {
	Block block.Block
}

// DustParticle is a coloured redstone-dust style particle.
type DustParticle struct {
	Red, Green, Blue float32
	Scale            float32
}

// ItemParticle shows an item's texture.
type ItemParticle struct {
	Item item.Stack
}

// NormalParticle is any particle that takes no options.
type NormalParticle struct {
	Type namespace.ID
}

func (BlockParticle) particleOptions()  {}
func (DustParticle) particleOptions()   {}
func (ItemParticle) particleOptions()   {}
func (NormalParticle) particleOptions() {}

// OptionsNBT builds the options compound. Every result carries a "type"
// field naming the variant. options must not be nil.
func OptionsNBT(options ParticleOptions) *tag.Compound {
	switch o := options.(type) {
	case BlockParticle:
		c := tag.NewCompound()
		c.SetString("type", "block")
		c.SetString("Name", o.Block.Name().String())
		if o.Block.HasProperties() {
			props := tag.NewCompound()
			for _, k := range o.Block.PropertyNames() {
				v, _ := o.Block.Property(k)
				props.SetString(k, v)
			}
			c.Set("Properties", props)
		}
		return c

	case DustParticle:
		c := tag.NewCompound()
		c.SetString("type", "dust")
		c.SetFloat("r", o.Red)
		c.SetFloat("g", o.Green)
		c.SetFloat("b", o.Blue)
		c.SetFloat("scale", o.Scale)
		return c

	case ItemParticle:
		// The meta compound is annotated rather than wrapped, so a "type"
		// field in the item's own tag is replaced.
		c := o.Item.Meta.ToNBT()
		c.SetString("type", "item")
		return c

	case NormalParticle:
		c := tag.NewCompound()
		c.SetString("type", o.Type.String())
		return c
	}

	panic(fmt.Sprintf("Unknown particle options: %T!", options))
}
