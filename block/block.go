package block

import (
	"sort"

	"github.com/Nightgunner5/worldmeta/namespace"
)

// Block is a block state: a block name and its property values. Blocks are
// values; the With* methods return modified copies.
type Block struct {
	name       namespace.ID
	properties map[string]string
}

func New(name namespace.ID) Block {
	return Block{name: name}
}

var (
	Stone = New(namespace.Minecraft("stone"))
	Sand  = New(namespace.Minecraft("sand"))
	Water = New(namespace.Minecraft("water")).WithProperty("level", "0")
	Snow  = New(namespace.Minecraft("snow")).WithProperty("layers", "1")
)

func (b Block) Name() namespace.ID {
	return b.name
}

// WithProperty returns a copy of b with one property set.
func (b Block) WithProperty(key, value string) Block {
	props := make(map[string]string, len(b.properties)+1)
	for k, v := range b.properties {
		props[k] = v
	}
	props[key] = value
	return Block{name: b.name, properties: props}
}

// WithProperties returns a copy of b with the given properties replacing all
// existing ones.
func (b Block) WithProperties(props map[string]string) Block {
	out := Block{name: b.name}
	if len(props) == 0 {
		return out
	}
	out.properties = make(map[string]string, len(props))
	for k, v := range props {
		out.properties[k] = v
	}
	return out
}

func (b Block) Property(key string) (string, bool) {
	v, ok := b.properties[key]
	return v, ok
}

// Properties returns a copy of the property map.
func (b Block) Properties() map[string]string {
	out := make(map[string]string, len(b.properties))
	for k, v := range b.properties {
		out[k] = v
	}
	return out
}

// PropertyNames returns the property keys in sorted order.
func (b Block) PropertyNames() []string {
	keys := make([]string, 0, len(b.properties))
	for k := range b.properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (b Block) HasProperties() bool {
	return len(b.properties) != 0
}
