// Checks a biome registry file written by worldmeta for integrity problems.

package main

import (
	"flag"
	"log"
	"os"

	"github.com/Nightgunner5/worldmeta/storage"
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatal("usage: validateregistry <biomes.dat>")
	}

	file, err := storage.ReadRegistry(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	problems := storage.Validate(file)
	for _, problem := range problems {
		log.Printf("In %s: %s", flag.Arg(0), problem)
	}
	if len(problems) != 0 {
		os.Exit(1)
	}
	log.Printf("%s: %d biomes, no problems found.", flag.Arg(0), len(file.Value))
}
