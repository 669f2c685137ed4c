package storage

import "github.com/Tnze/go-mc/nbt"

// RegistryFile is the decoded form of a biome registry document.
type RegistryFile struct {
	Type  string       `nbt:"type"`
	Value []BiomeEntry `nbt:"value"`
}

type BiomeEntry struct {
	Name    string       `nbt:"name"`
	ID      int32        `nbt:"id"`
	Element BiomeElement `nbt:"element"`
}

type BiomeElement struct {
	Precipitation       string       `nbt:"precipitation"`
	Depth               float32      `nbt:"depth"`
	Temperature         float32      `nbt:"temperature"`
	Scale               float32      `nbt:"scale"`
	Downfall            float32      `nbt:"downfall"`
	Category            string       `nbt:"category"`
	TemperatureModifier string       `nbt:"temperature_modifier"`
	Effects             BiomeEffects `nbt:"effects"`
}

type BiomeEffects struct {
	FogColor      int32  `nbt:"fog_color"`
	SkyColor      int32  `nbt:"sky_color"`
	WaterColor    int32  `nbt:"water_color"`
	WaterFogColor int32  `nbt:"water_fog_color"`
	AmbientSound  string `nbt:"ambient_sound"`

	// Particle is left raw so a missing particle can be told apart from an
	// empty one.
	Particle nbt.RawMessage `nbt:"particle"`
}

// HasParticle reports whether the effects carry a particle compound.
func (e BiomeEffects) HasParticle() bool {
	return e.Particle.Type == nbt.TagCompound
}

// DecodeParticle decodes the particle compound.
func (e BiomeEffects) DecodeParticle() (ParticleEntry, error) {
	var p ParticleEntry
	err := e.Particle.Unmarshal(&p)
	return p, err
}

type ParticleEntry struct {
	Probability float32         `nbt:"probability"`
	Options     ParticleOptions `nbt:"options"`
}

type ParticleOptions struct {
	Type  string  `nbt:"type"`
	Name  string  `nbt:"Name"`
	Red   float32 `nbt:"r"`
	Green float32 `nbt:"g"`
	Blue  float32 `nbt:"b"`
	Scale float32 `nbt:"scale"`

	Properties nbt.RawMessage `nbt:"Properties"`
}

// HasProperties reports whether a Properties compound is present, even an
// empty one.
func (o ParticleOptions) HasProperties() bool {
	return o.Properties.Type == nbt.TagCompound
}

// PropertyMap decodes the Properties compound. It is nil when absent.
func (o ParticleOptions) PropertyMap() (map[string]string, error) {
	if !o.HasProperties() {
		return nil, nil
	}
	props := make(map[string]string)
	err := o.Properties.Unmarshal(&props)
	return props, err
}
