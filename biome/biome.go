// Package biome holds the biome definitions a world sends to its clients and
// the registry they are kept in.
package biome

import (
	"github.com/Nightgunner5/worldmeta/namespace"
	"github.com/Nightgunner5/worldmeta/tag"
)

type Precipitation string

const (
	PrecipitationNone Precipitation = "none"
	PrecipitationRain Precipitation = "rain"
	PrecipitationSnow Precipitation = "snow"
)

type Category string

const (
	CategoryNone         Category = "none"
	CategoryTaiga        Category = "taiga"
	CategoryExtremeHills Category = "extreme_hills"
	CategoryJungle       Category = "jungle"
	CategoryMesa         Category = "mesa"
	CategoryPlains       Category = "plains"
	CategorySavanna      Category = "savanna"
	CategoryIcy          Category = "icy"
	CategoryTheEnd       Category = "the_end"
	CategoryBeach        Category = "beach"
	CategoryForest       Category = "forest"
	CategoryOcean        Category = "ocean"
	CategoryDesert       Category = "desert"
	CategoryRiver        Category = "river"
	CategorySwamp        Category = "swamp"
	CategoryMushroom     Category = "mushroom"
	CategoryNether       Category = "nether"
	CategoryUnderground  Category = "underground"
)

type TemperatureModifier string

const (
	TemperatureModifierNone   TemperatureModifier = "none"
	TemperatureModifierFrozen TemperatureModifier = "frozen"
)

// Biome is a numbered, named set of environment attributes. Biomes are
// values; the registry stores copies and never modifies them.
type Biome struct {
	ID   int32
	Name namespace.ID

	Precipitation       Precipitation
	Category            Category
	TemperatureModifier TemperatureModifier
	Depth               float32
	Temperature         float32
	Scale               float32
	Downfall            float32
	Effects             Effects
}

const PlainsID int32 = 0

// Plains is the biome every Manager starts with.
var Plains = Biome{
	ID:                  PlainsID,
	Name:                namespace.Minecraft("plains"),
	Precipitation:       PrecipitationRain,
	Category:            CategoryNone,
	TemperatureModifier: TemperatureModifierNone,
	Depth:               0.125,
	Temperature:         0.8,
	Scale:               0.05,
	Downfall:            0.4,
	Effects:             DefaultEffects(),
}

// clone copies b deeply enough that nothing reachable from the result is
// shared with b.
func (b Biome) clone() Biome {
	b.Effects = b.Effects.clone()
	return b
}

func (b Biome) ToNBT() *tag.Compound {
	element := tag.NewCompound()
	element.SetString("precipitation", string(b.Precipitation))
	element.SetFloat("depth", b.Depth)
	element.SetFloat("temperature", b.Temperature)
	element.SetFloat("scale", b.Scale)
	element.SetFloat("downfall", b.Downfall)
	element.SetString("category", string(b.Category))
	if b.TemperatureModifier != "" && b.TemperatureModifier != TemperatureModifierNone {
		element.SetString("temperature_modifier", string(b.TemperatureModifier))
	}
	element.Set("effects", b.Effects.ToNBT())

	c := tag.NewCompound()
	c.SetString("name", b.Name.String())
	c.SetInt("id", b.ID)
	c.Set("element", element)
	return c
}
