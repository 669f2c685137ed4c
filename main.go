package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/Nightgunner5/worldmeta/biome"
	"github.com/Nightgunner5/worldmeta/config"
	"github.com/Nightgunner5/worldmeta/datapack"
	"github.com/Nightgunner5/worldmeta/storage"
)

var flagConfig = flag.String("config", config.DefaultPath, "The config file to read. It is created with the defaults if missing.")
var flagDatapack = flag.String("datapack", "", "A datapack root to load biomes from. Overrides the config file.")
var flagOut = flag.String("out", "", "Where to write the biome registry. Overrides the config file.")
var flagPrint = flag.Bool("print", false, "Print the registry as SNBT after writing it.")

func main() {
	flag.Parse()

	conf, err := config.Load(*flagConfig)
	if err != nil {
		log.Fatal(err)
	}
	log.SetPrefix(conf.LogPrefix)
	if *flagDatapack != "" {
		conf.DatapackDir = *flagDatapack
	}
	if *flagOut != "" {
		conf.RegistryFile = *flagOut
	}

	biomes := biome.NewManager()
	if conf.DatapackDir != "" {
		n, err := datapack.LoadDir(biomes, conf.DatapackDir)
		if err != nil {
			log.Fatal(err)
		}
		log.Print("Loaded ", n, " biomes from ", conf.DatapackDir)
	}

	doc := biomes.ToNBT()
	if err := storage.SaveRegistry(conf.RegistryFile, doc); err != nil {
		log.Fatal(err)
	}
	log.Print("Wrote ", biomes.Len(), " biomes to ", conf.RegistryFile)

	if *flagPrint {
		fmt.Println(doc)
	}
}
