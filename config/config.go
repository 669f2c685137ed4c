package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/caarlos0/env/v11"
)

const DefaultPath = "worldmeta.conf"

type Configuration struct {
	// RegistryFile is where the biome registry is written.
	RegistryFile string `env:"WORLDMETA_REGISTRY_FILE"`
	// DatapackDir is a datapack root to load biomes from. Empty means only
	// the built-in plains.
	DatapackDir string `env:"WORLDMETA_DATAPACK_DIR"`
	LogPrefix   string `env:"WORLDMETA_LOG_PREFIX"`
}

func Defaults() Configuration {
	return Configuration{
		RegistryFile: "world/registry/biomes.dat",
		LogPrefix:    "[worldmeta] ",
	}
}

func (c *Configuration) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "\t")
	if err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}

// Load reads the config file at path, writing one with the defaults if it
// does not exist, then applies environment overrides.
func Load(path string) (Configuration, error) {
	c := Defaults()

	f, err := os.Open(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Print("No config file at ", path, ", writing defaults.")
		if err := c.Save(path); err != nil {
			return c, err
		}
	case err != nil:
		return c, fmt.Errorf("load config: %w", err)
	default:
		defer f.Close()
		// If the config file has errors, don't continue with possibly unwanted operation.
		if err := json.NewDecoder(f).Decode(&c); err != nil {
			return c, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	if err := env.Parse(&c); err != nil {
		return c, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}
