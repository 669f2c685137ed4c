package storage

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/Tnze/go-mc/nbt"

	"github.com/Nightgunner5/worldmeta/tag"
)

var lock sync.Mutex

// SaveRegistry writes doc to path as a gzip-compressed NBT file with an
// unnamed root, creating parent directories as needed.
func SaveRegistry(path string, doc *tag.Compound) error {
	lock.Lock()
	defer lock.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("save registry: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save registry: %w", err)
	}
	defer f.Close()

	w := gzip.NewWriter(f)
	if err := tag.Encode(w, "", doc); err != nil {
		return fmt.Errorf("save registry %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("save registry %s: %w", path, err)
	}
	return f.Close()
}

// ReadRegistry reads a file written by SaveRegistry.
func ReadRegistry(path string) (*RegistryFile, error) {
	lock.Lock()
	defer lock.Unlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read registry: %w", err)
	}
	defer f.Close()

	r, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("read registry %s: %w", path, err)
	}
	defer r.Close()

	file, err := DecodeRegistry(r)
	if err != nil {
		return nil, fmt.Errorf("read registry %s: %w", path, err)
	}
	return file, nil
}

// DecodeRegistry decodes an uncompressed registry document.
func DecodeRegistry(r io.Reader) (*RegistryFile, error) {
	file := new(RegistryFile)
	if _, err := nbt.NewDecoder(r).Decode(file); err != nil {
		return nil, err
	}
	return file, nil
}
