package storage

import (
	"fmt"

	"github.com/Nightgunner5/worldmeta/biome"
	"github.com/Nightgunner5/worldmeta/namespace"
)

// Validate lists every integrity problem in a decoded registry. An empty
// result means the registry is consistent.
func Validate(file *RegistryFile) []string {
	var problems []string
	if file.Type != biome.RegistryType {
		problems = append(problems, fmt.Sprintf("root type is %q, expected %q", file.Type, biome.RegistryType))
	}

	ids := make(map[int32]int)
	names := make(map[string]int)
	for i, entry := range file.Value {
		desc := fmt.Sprintf("entry %d (%s, id %d)", i, entry.Name, entry.ID)

		if j, ok := ids[entry.ID]; ok {
			problems = append(problems, fmt.Sprintf("%s reuses the id of entry %d", desc, j))
		} else {
			ids[entry.ID] = i
		}
		if j, ok := names[entry.Name]; ok {
			problems = append(problems, fmt.Sprintf("%s reuses the name of entry %d", desc, j))
		} else {
			names[entry.Name] = i
		}
		if _, err := namespace.Parse(entry.Name); err != nil {
			problems = append(problems, fmt.Sprintf("%s has a malformed name: %v", desc, err))
		}

		if !entry.Element.Effects.HasParticle() {
			continue
		}
		particle, err := entry.Element.Effects.DecodeParticle()
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s has an unreadable particle: %v", desc, err))
			continue
		}
		if particle.Probability < 0 || particle.Probability > 1 {
			problems = append(problems, fmt.Sprintf("%s has particle probability %v outside [0, 1]", desc, particle.Probability))
		}
		switch particle.Options.Type {
		case "":
			problems = append(problems, fmt.Sprintf("%s has particle options without a type", desc))
		case "block":
			if particle.Options.Name == "" {
				problems = append(problems, fmt.Sprintf("%s has a block particle without a Name", desc))
			}
			props, err := particle.Options.PropertyMap()
			if err != nil {
				problems = append(problems, fmt.Sprintf("%s has unreadable block Properties: %v", desc, err))
			} else if props != nil && len(props) == 0 {
				problems = append(problems, fmt.Sprintf("%s has an empty block Properties compound", desc))
			}
		}
	}
	return problems
}
