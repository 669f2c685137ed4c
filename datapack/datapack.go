// Package datapack reads biome definitions from datapack JSON files
// (data/<namespace>/worldgen/biome/<path>.json).
package datapack

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/Nightgunner5/worldmeta/biome"
	"github.com/Nightgunner5/worldmeta/block"
	"github.com/Nightgunner5/worldmeta/item"
	"github.com/Nightgunner5/worldmeta/namespace"
	"github.com/Nightgunner5/worldmeta/tag"
)

// Parse builds a biome from one biome JSON document. Attributes the document
// leaves out take the plains values.
func Parse(name namespace.ID, id int32, data []byte) (biome.Biome, error) {
	if !gjson.ValidBytes(data) {
		return biome.Biome{}, fmt.Errorf("biome %s: invalid JSON", name)
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return biome.Biome{}, fmt.Errorf("biome %s: document is not an object", name)
	}

	b := biome.Plains
	b.ID = id
	b.Name = name

	if v := doc.Get("precipitation"); v.Exists() {
		b.Precipitation = biome.Precipitation(v.String())
	}
	if v := doc.Get("category"); v.Exists() {
		b.Category = biome.Category(v.String())
	}
	if v := doc.Get("temperature_modifier"); v.Exists() {
		b.TemperatureModifier = biome.TemperatureModifier(v.String())
	}
	setFloat(&b.Depth, doc.Get("depth"))
	setFloat(&b.Temperature, doc.Get("temperature"))
	setFloat(&b.Scale, doc.Get("scale"))
	setFloat(&b.Downfall, doc.Get("downfall"))

	if effects := doc.Get("effects"); effects.Exists() {
		e, err := parseEffects(effects)
		if err != nil {
			return biome.Biome{}, fmt.Errorf("biome %s: %w", name, err)
		}
		b.Effects = e
	}
	return b, nil
}

func setFloat(dst *float32, v gjson.Result) {
	if v.Exists() {
		*dst = float32(v.Float())
	}
}

func setInt(dst *int32, v gjson.Result) {
	if v.Exists() {
		*dst = int32(v.Int())
	}
}

func parseEffects(doc gjson.Result) (biome.Effects, error) {
	e := biome.DefaultEffects()
	setInt(&e.FogColor, doc.Get("fog_color"))
	setInt(&e.SkyColor, doc.Get("sky_color"))
	setInt(&e.WaterColor, doc.Get("water_color"))
	setInt(&e.WaterFogColor, doc.Get("water_fog_color"))
	setInt(&e.FoliageColor, doc.Get("foliage_color"))
	setInt(&e.GrassColor, doc.Get("grass_color"))
	if v := doc.Get("grass_color_modifier"); v.Exists() {
		e.GrassColorModifier = biome.GrassColorModifier(v.String())
	}

	if v := doc.Get("ambient_sound"); v.Exists() {
		sound, err := namespace.Parse(v.String())
		if err != nil {
			return e, fmt.Errorf("ambient_sound: %w", err)
		}
		e.AmbientSound = sound
	}
	if v := doc.Get("mood_sound"); v.Exists() {
		sound, err := namespace.Parse(v.Get("sound").String())
		if err != nil {
			return e, fmt.Errorf("mood_sound: %w", err)
		}
		e.MoodSound = &biome.MoodSound{
			Sound:             sound,
			TickDelay:         int32(v.Get("tick_delay").Int()),
			BlockSearchExtent: int32(v.Get("block_search_extent").Int()),
			Offset:            v.Get("offset").Float(),
		}
	}
	if v := doc.Get("additions_sound"); v.Exists() {
		sound, err := namespace.Parse(v.Get("sound").String())
		if err != nil {
			return e, fmt.Errorf("additions_sound: %w", err)
		}
		e.AdditionsSound = &biome.AdditionsSound{Sound: sound, TickChance: v.Get("tick_chance").Float()}
	}
	if v := doc.Get("music"); v.Exists() {
		sound, err := namespace.Parse(v.Get("sound").String())
		if err != nil {
			return e, fmt.Errorf("music: %w", err)
		}
		e.Music = &biome.Music{
			Sound:               sound,
			MinDelay:            int32(v.Get("min_delay").Int()),
			MaxDelay:            int32(v.Get("max_delay").Int()),
			ReplaceCurrentMusic: v.Get("replace_current_music").Bool(),
		}
	}

	if v := doc.Get("particle"); v.Exists() {
		options, err := parseOptions(v.Get("options"))
		if err != nil {
			return e, fmt.Errorf("particle: %w", err)
		}
		e.Particles = &biome.Particles{
			Probability: float32(v.Get("probability").Float()),
			Options:     options,
		}
	}
	return e, nil
}

func parseOptions(doc gjson.Result) (biome.ParticleOptions, error) {
	if !doc.IsObject() {
		return nil, fmt.Errorf("options is not an object")
	}
	typ := doc.Get("type")
	if !typ.Exists() || typ.String() == "" {
		return nil, fmt.Errorf("options has no type")
	}

	// Only the bare names select structured options. A namespaced type such
	// as minecraft:dust is a particle without options.
	switch typ.String() {
	case "block":
		blockName, err := namespace.Parse(doc.Get("Name").String())
		if err != nil {
			return nil, fmt.Errorf("block options: %w", err)
		}
		props := make(map[string]string)
		doc.Get("Properties").ForEach(func(key, value gjson.Result) bool {
			props[key.String()] = value.String()
			return true
		})
		return biome.BlockParticle{Block: block.New(blockName).WithProperties(props)}, nil

	case "dust":
		return biome.DustParticle{
			Red:   float32(doc.Get("r").Float()),
			Green: float32(doc.Get("g").Float()),
			Blue:  float32(doc.Get("b").Float()),
			Scale: float32(doc.Get("scale").Float()),
		}, nil

	case "item":
		return biome.ItemParticle{Item: parseItem(doc)}, nil
	}

	particleType, err := namespace.Parse(typ.String())
	if err != nil {
		return nil, err
	}
	return biome.NormalParticle{Type: particleType}, nil
}

// parseItem accepts both a full item ({id, Count, tag}) and the flattened
// tag form an item particle is written in.
func parseItem(doc gjson.Result) item.Stack {
	stack := item.NewStack(namespace.Minecraft("air"), 0)
	if id, err := namespace.Parse(doc.Get("id").String()); err == nil {
		stack.Material = id
		stack.Amount = 1
	}
	if v := doc.Get("Count"); v.Exists() {
		stack.Amount = int8(v.Int())
	}

	meta := doc
	if v := doc.Get("tag"); v.IsObject() {
		meta = v
	}
	m := item.Meta{
		Damage:          int32(meta.Get("Damage").Int()),
		Unbreakable:     meta.Get("Unbreakable").Bool(),
		CustomModelData: int32(meta.Get("CustomModelData").Int()),
		DisplayName:     meta.Get("display.Name").String(),
	}
	extra := tag.NewCompound()
	meta.ForEach(func(key, value gjson.Result) bool {
		switch key.String() {
		case "type", "id", "Count", "tag", "Damage", "Unbreakable", "CustomModelData", "display":
			return true
		}
		if value.Type == gjson.String {
			extra.SetString(key.String(), value.String())
		}
		return true
	})
	if extra.Len() != 0 {
		m.Extra = extra
	}
	return stack.WithMeta(m)
}

// LoadDir adds every biome under <root>/data/<namespace>/worldgen/biome to m.
// A biome whose name is already registered keeps that ID; new biomes get
// dense IDs after the highest registered one, in file name order.
func LoadDir(m *biome.Manager, root string) (int, error) {
	dataDir := filepath.Join(root, "data")
	loaded := 0
	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}
		name, ok := biomeName(dataDir, path)
		if !ok {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		id := m.NextID()
		if existing, ok := m.ByName(name); ok {
			id = existing.ID
		}
		b, err := Parse(name, id, data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		m.Add(b)
		loaded++
		log.Printf("Loaded biome %s (id %d) from %s", name, id, path)
		return nil
	})
	if err != nil {
		return loaded, fmt.Errorf("load datapack %s: %w", root, err)
	}
	return loaded, nil
}

// biomeName maps data/<ns>/worldgen/biome/<path>.json to <ns>:<path>.
func biomeName(dataDir, path string) (namespace.ID, bool) {
	rel, err := filepath.Rel(dataDir, path)
	if err != nil {
		return namespace.ID{}, false
	}
	parts := strings.SplitN(filepath.ToSlash(rel), "/", 4)
	if len(parts) != 4 || parts[1] != "worldgen" || parts[2] != "biome" {
		return namespace.ID{}, false
	}
	id, err := namespace.Parse(parts[0] + ":" + strings.TrimSuffix(parts[3], ".json"))
	if err != nil {
		return namespace.ID{}, false
	}
	return id, true
}
