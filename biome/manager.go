package biome

import (
	"sort"
	"sync"

	"github.com/Nightgunner5/worldmeta/namespace"
	"github.com/Nightgunner5/worldmeta/tag"
)

// RegistryType is the "type" of the document produced by Manager.ToNBT.
const RegistryType = "minecraft:worldgen/biome"

// Manager is the biome registry of a server. It starts out holding Plains,
// which may be removed. Changes are not pushed to connected players.
// A Manager is safe for concurrent use.
type Manager struct {
	lock   sync.RWMutex
	biomes map[int32]Biome
}

func NewManager() *Manager {
	m := &Manager{biomes: make(map[int32]Biome)}
	m.Add(Plains)
	return m
}

// Add registers b, replacing any biome with the same ID.
func (m *Manager) Add(b Biome) {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.biomes[b.ID] = b.clone()
}

// Remove unregisters the biome with b's ID, if there is one.
func (m *Manager) Remove(b Biome) {
	m.lock.Lock()
	defer m.lock.Unlock()

	delete(m.biomes, b.ID)
}

func (m *Manager) ByID(id int32) (Biome, bool) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	b, ok := m.biomes[id]
	return b.clone(), ok
}

// ByName returns the first biome, in ID order, with the given name. Names are
// meant to be unique; if two biomes share one the lowest ID wins until the
// registry changes.
func (m *Manager) ByName(name namespace.ID) (Biome, bool) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	for _, id := range m.sortedIDs() {
		if b := m.biomes[id]; b.Name == name {
			return b.clone(), true
		}
	}
	return Biome{}, false
}

// All returns a copy of the registered biomes in ID order. The slice and
// everything it points to belong to the caller.
func (m *Manager) All() []Biome {
	m.lock.RLock()
	defer m.lock.RUnlock()

	return m.all()
}

func (m *Manager) Len() int {
	m.lock.RLock()
	defer m.lock.RUnlock()

	return len(m.biomes)
}

// NextID returns one more than the highest registered ID, or 0 when empty.
func (m *Manager) NextID() int32 {
	m.lock.RLock()
	defer m.lock.RUnlock()

	next := int32(0)
	for id := range m.biomes {
		if id >= next {
			next = id + 1
		}
	}
	return next
}

// ToNBT builds the biome registry document sent to clients:
// {type: "minecraft:worldgen/biome", value: [biome...]} in ID order.
func (m *Manager) ToNBT() *tag.Compound {
	m.lock.RLock()
	defer m.lock.RUnlock()

	value := tag.NewList()
	for _, id := range m.sortedIDs() {
		value.Append(m.biomes[id].ToNBT())
	}

	c := tag.NewCompound()
	c.SetString("type", RegistryType)
	c.Set("value", value)
	return c
}

// The caller must hold the lock.
func (m *Manager) all() []Biome {
	out := make([]Biome, 0, len(m.biomes))
	for _, id := range m.sortedIDs() {
		out = append(out, m.biomes[id].clone())
	}
	return out
}

// The caller must hold the lock.
func (m *Manager) sortedIDs() []int32 {
	ids := make([]int32, 0, len(m.biomes))
	for id := range m.biomes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, b int) bool {
		return ids[a] < ids[b]
	})
	return ids
}
