package biome

import (
	"github.com/Nightgunner5/worldmeta/namespace"
	"github.com/Nightgunner5/worldmeta/tag"
)

type GrassColorModifier string

const (
	GrassColorModifierNone       GrassColorModifier = "none"
	GrassColorModifierDarkForest GrassColorModifier = "dark_forest"
	GrassColorModifierSwamp      GrassColorModifier = "swamp"
)

// Effects are the client-side visuals and sounds of a biome. FoliageColor and
// GrassColor are left out of the encoding when -1; the pointer and zero
// fields are optional.
type Effects struct {
	FogColor      int32
	SkyColor      int32
	WaterColor    int32
	WaterFogColor int32
	FoliageColor  int32
	GrassColor    int32

	GrassColorModifier GrassColorModifier
	Particles          *Particles
	AmbientSound       namespace.ID
	MoodSound          *MoodSound
	AdditionsSound     *AdditionsSound
	Music              *Music
}

// DefaultEffects returns the plains colours with no particles or sounds.
func DefaultEffects() Effects {
	return Effects{
		FogColor:      0xC0D8FF,
		SkyColor:      0x78A7FF,
		WaterColor:    0x3F76E4,
		WaterFogColor: 0x050533,
		FoliageColor:  -1,
		GrassColor:    -1,
	}
}

type MoodSound struct {
	Sound             namespace.ID
	TickDelay         int32
	BlockSearchExtent int32
	Offset            float64
}

type AdditionsSound struct {
	Sound      namespace.ID
	TickChance float64
}

type Music struct {
	Sound               namespace.ID
	MinDelay            int32
	MaxDelay            int32
	ReplaceCurrentMusic bool
}

func (e Effects) clone() Effects {
	if e.Particles != nil {
		p := e.Particles.clone()
		e.Particles = &p
	}
	if e.MoodSound != nil {
		mood := *e.MoodSound
		e.MoodSound = &mood
	}
	if e.AdditionsSound != nil {
		additions := *e.AdditionsSound
		e.AdditionsSound = &additions
	}
	if e.Music != nil {
		music := *e.Music
		e.Music = &music
	}
	return e
}

func (e Effects) ToNBT() *tag.Compound {
	c := tag.NewCompound()
	c.SetInt("fog_color", e.FogColor)
	c.SetInt("sky_color", e.SkyColor)
	c.SetInt("water_color", e.WaterColor)
	c.SetInt("water_fog_color", e.WaterFogColor)
	if e.FoliageColor != -1 {
		c.SetInt("foliage_color", e.FoliageColor)
	}
	if e.GrassColor != -1 {
		c.SetInt("grass_color", e.GrassColor)
	}
	if e.GrassColorModifier != "" {
		c.SetString("grass_color_modifier", string(e.GrassColorModifier))
	}
	if e.Particles != nil {
		c.Set("particle", e.Particles.ToNBT())
	}
	if !e.AmbientSound.IsZero() {
		c.SetString("ambient_sound", e.AmbientSound.String())
	}
	if e.MoodSound != nil {
		mood := tag.NewCompound()
		mood.SetString("sound", e.MoodSound.Sound.String())
		mood.SetInt("tick_delay", e.MoodSound.TickDelay)
		mood.SetInt("block_search_extent", e.MoodSound.BlockSearchExtent)
		mood.SetDouble("offset", e.MoodSound.Offset)
		c.Set("mood_sound", mood)
	}
	if e.AdditionsSound != nil {
		additions := tag.NewCompound()
		additions.SetString("sound", e.AdditionsSound.Sound.String())
		additions.SetDouble("tick_chance", e.AdditionsSound.TickChance)
		c.Set("additions_sound", additions)
	}
	if e.Music != nil {
		music := tag.NewCompound()
		music.SetString("sound", e.Music.Sound.String())
		music.SetInt("min_delay", e.Music.MinDelay)
		music.SetInt("max_delay", e.Music.MaxDelay)
		music.SetBool("replace_current_music", e.Music.ReplaceCurrentMusic)
		c.Set("music", music)
	}
	return c
}
