// Hammers one biome registry from many goroutines at once.

package main

import (
	"fmt"
	"log"
	"sync"

	"github.com/Nightgunner5/worldmeta/biome"
	"github.com/Nightgunner5/worldmeta/namespace"
	"github.com/Nightgunner5/worldmeta/tag"
)

func main() {
	m := biome.NewManager()

	var wg sync.WaitGroup
	for w := int32(0); w < 100; w++ {
		wg.Add(1)
		go func(w int32) {
			defer wg.Done()
			for i := int32(0); i < 100; i++ {
				b := biome.Plains
				b.ID = 1 + w*100 + i
				b.Name = namespace.Minecraft(fmt.Sprint("stress_", w, "_", i))
				m.Add(b)
				if _, ok := m.ByName(b.Name); !ok {
					log.Fatalf("Biome %s vanished before it was removed.", b.Name)
				}
				if _, err := tag.Marshal(m.ToNBT()); err != nil {
					log.Fatal(err)
				}
				if i%3 == 0 {
					m.Remove(b)
				}
			}
		}(w)
	}
	wg.Wait()

	log.Printf("%d biomes registered after the run.", m.Len())
}
